package mcp

import "github.com/depilcher/WWVillage/internal/report"

// SimulateInput defines the input for the village_simulate tool. Omitted
// counts fall back to the server's configured setup.
type SimulateInput struct {
	Humans     *int  `json:"humans,omitempty" jsonschema:"Starting number of humans"`
	Vampires   *int  `json:"vampires,omitempty" jsonschema:"Starting number of vampires"`
	Werewolves *int  `json:"werewolves,omitempty" jsonschema:"Starting number of werewolves"`
	Turns      *int  `json:"turns,omitempty" jsonschema:"Maximum number of turns to simulate"`
	Seed       int64 `json:"seed,omitempty" jsonschema:"Random seed; 0 or omitted draws a fresh one"`
}

// SimulateOutput defines the output for the village_simulate tool.
type SimulateOutput struct {
	Report  report.Report `json:"report" jsonschema:"End-of-run status of every citizen"`
	Message string        `json:"message" jsonschema:"One-line summary of the run"`
}
