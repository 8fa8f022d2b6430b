// Package simulation is a test harness for checking the village engine's
// invariants over whole runs.
//
// A Scenario describes a starting population and either a seed or a
// scripted roll sequence. The Runner drives the real village.Runner one
// Step at a time and records a snapshot of every agent plus the events of
// each turn, so assertions can look at the whole history rather than only
// the final report.
//
// Usage:
//
//	func TestMoonlitFeeding(t *testing.T) {
//	    r := simulation.NewRunner(t)
//	    result := r.Run(simulation.Scenario{
//	        Name:  "moonlit-feeding",
//	        Setup: village.Setup{Humans: 20, Werewolves: 2, Turns: 30},
//	        Seed:  7,
//	    })
//	    simulation.AssertWerewolvesFeedOnlyUnderFullMoon(t, result)
//	}
package simulation
