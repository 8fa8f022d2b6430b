// Package village implements the turn engine of the village simulation.
//
// A village holds a fixed population of agents. Each agent is bound to one
// Behavior (Human, Vampire or Werewolf) that decides what the agent does on
// its turn and how it looks to everyone else. Converting an agent means
// binding it to a different Behavior; dead agents stay in the population as
// inert records so the final report can list them.
//
// A run is a deterministic function of its rng.Generator: the turn shuffle,
// victim selection and every outcome roll draw from the single generator held
// by the run's Env. Nothing in this package is safe for concurrent use, and
// nothing needs to be.
//
// Usage:
//
//	env := village.NewEnv(rng.NewSource(seed), village.DefaultRules())
//	r := village.New(village.Setup{Humans: 10, Vampires: 2, Werewolves: 2, Turns: 50}, env)
//	r.Run()
//	res, err := r.Result()
package village
