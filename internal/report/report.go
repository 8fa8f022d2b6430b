// Package report turns a finished run into the end-of-simulation status
// report, as console text or as a JSON document.
package report

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/depilcher/WWVillage/internal/village"
)

// Schema is the JSON schema every document written by WriteJSON conforms to.
//
//go:embed schema.json
var Schema string

// SchemaURL identifies Schema when it is compiled.
const SchemaURL = "https://wwvillage.local/schema/report.json"

// Citizen is one agent's line in the report.
type Citizen struct {
	ID                 int    `json:"id"`
	Kind               string `json:"kind"`
	Hunger             int    `json:"hunger"`
	Health             int    `json:"health"`
	Alive              bool   `json:"alive"`
	KilledBy           string `json:"killed_by,omitempty"`
	ConvertedFromHuman bool   `json:"converted_from_human"`
}

// Counts tallies survivors by kind plus the dead.
type Counts struct {
	Humans     int `json:"humans"`
	Vampires   int `json:"vampires"`
	Werewolves int `json:"werewolves"`
	Dead       int `json:"dead"`
}

// Report is the status of every citizen at the end of a run, grouped by
// true kind.
type Report struct {
	Seed     int64     `json:"seed"`
	Turns    int       `json:"turns"`
	Reason   string    `json:"reason"`
	Counts   Counts    `json:"counts"`
	Citizens []Citizen `json:"citizens"`
}

// Build groups res by kind (humans, vampires, werewolves, then anything
// unclassified), keeping ID order within each group.
func Build(res village.Result, seed int64) Report {
	r := Report{
		Seed:     seed,
		Turns:    res.Turns,
		Reason:   string(res.Reason),
		Citizens: make([]Citizen, 0, len(res.Agents)),
	}

	groups := append(append([]village.Kind{}, village.Kinds...), village.KindUnknown)
	for _, k := range groups {
		for _, a := range res.Agents {
			if a.Kind == k {
				r.Citizens = append(r.Citizens, citizen(a))
			}
		}
	}

	for _, a := range res.Agents {
		if a.KilledBy != village.KilledByNone {
			r.Counts.Dead++
			continue
		}
		switch a.Kind {
		case village.KindHuman:
			r.Counts.Humans++
		case village.KindVampire:
			r.Counts.Vampires++
		case village.KindWerewolf:
			r.Counts.Werewolves++
		}
	}

	return r
}

func citizen(a village.AgentStatus) Citizen {
	c := Citizen{
		ID:                 a.ID,
		Kind:               a.Kind.String(),
		Hunger:             a.Hunger,
		Health:             a.Health,
		Alive:              a.KilledBy == village.KilledByNone,
		ConvertedFromHuman: a.ConvertedFromHuman,
	}
	if !c.Alive {
		c.KilledBy = a.KilledBy.String()
	}
	return c
}

// WriteText writes the console report: the turn count, then one line per
// citizen.
func (r Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total turns run: %d\n", r.Turns)
	for _, c := range r.Citizens {
		sb.WriteString(c.line())
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (c Citizen) line() string {
	parts := []string{
		fmt.Sprintf("%-8s", label(c.Kind)),
		fmt.Sprintf("Hunger: %d", c.Hunger),
		fmt.Sprintf("Health: %d", c.Health),
	}
	if !c.Alive {
		parts = append(parts, fmt.Sprintf("Killed by: %-8s", causeLabel(c.KilledBy)))
	}
	if c.ConvertedFromHuman {
		parts = append(parts, "(converted from human)")
	}
	return strings.TrimRight(strings.Join(parts, "   "), " ")
}

func label(kind string) string {
	if kind == "" {
		return "Unknown"
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}

func causeLabel(cause string) string {
	if cause == village.KilledByStarvation.String() {
		return "Hunger"
	}
	return label(cause)
}

// WriteJSON writes the report as one indented JSON document.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
