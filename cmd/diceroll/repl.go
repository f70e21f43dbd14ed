package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/travis-g/dicecore"
)

const replPrompt = ">>> "

// replCommand enters an interactive roll loop, one expression per line,
// until "quit" or EOF.
func replCommand(c *cli.Context) error {
	cfg, err := loadedConfig(c)
	if err != nil {
		return err
	}
	configureLogging(cfg.Debug)

	ev := dicecore.NewEvaluator(dicecore.NewRNGRoller())
	scanner := bufio.NewScanner(os.Stdin)

	in, _ := os.Stdin.Stat()
	interactive := (in.Mode() & os.ModeCharDevice) != 0

	for {
		if interactive {
			fmt.Fprint(os.Stderr, replPrompt)
		}
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()
		if line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}

		summary, err := ev.Roll(context.Background(), line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		out, err := formatSummary(cfg.Format, summary)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(out)
	}
}
