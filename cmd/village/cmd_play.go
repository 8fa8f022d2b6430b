package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/depilcher/WWVillage/internal/village"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Interactively set up and run simulations",
		Long: `Prompt for the starting population and turn count, run the simulation,
print the report and offer another run. Invalid or negative answers are
asked again. Rules, seed and logging come from the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			p := &prompter{in: bufio.NewScanner(cmd.InOrStdin()), out: cmd.OutOrStdout()}
			p.in.Split(bufio.ScanWords)

			fmt.Fprintln(p.out, "Welcome to the village simulator!")
			fmt.Fprintln(p.out, "(Where there's nothing to eat and your neighbors are monsters.)")
			fmt.Fprintln(p.out)

			for {
				setup, err := p.setup()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				setup.MaxPopulation = cfg.Simulation.MaxPopulation
				if err := setup.Validate(); err != nil {
					fmt.Fprintln(p.out, err)
					continue
				}

				rep, err := simulate(cmd.Context(), cfg, setup, cfg.Simulation.Seed, logger)
				if err != nil {
					return err
				}
				fmt.Fprintf(p.out, "Seed: %d\n", rep.Seed)
				if err := rep.WriteText(p.out); err != nil {
					return err
				}

				fmt.Fprintln(p.out)
				fmt.Fprintln(p.out)
				fmt.Fprintln(p.out, "Would you like to run another simulation? (Y/N)")
				answer, err := p.word()
				if err != nil || !strings.HasPrefix(strings.ToLower(answer), "y") {
					return nil
				}
			}
		},
	}
}

// prompter reads whitespace-separated answers.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) word() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// count asks question until it gets a non-negative integer.
func (p *prompter) count(question string) (int, error) {
	for {
		fmt.Fprintln(p.out, question)
		w, err := p.word()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(w)
		if err == nil && n >= 0 {
			return n, nil
		}
	}
}

func (p *prompter) setup() (village.Setup, error) {
	var s village.Setup
	questions := []struct {
		text string
		dst  *int
	}{
		{"Please enter starting number of humans", &s.Humans},
		{"Please enter starting number of vampires", &s.Vampires},
		{"Please enter starting number of werewolves", &s.Werewolves},
		{"Please enter number of game turns to simulate", &s.Turns},
	}
	for _, q := range questions {
		n, err := p.count(q.text)
		if err != nil {
			return village.Setup{}, err
		}
		*q.dst = n
	}
	return s, nil
}
