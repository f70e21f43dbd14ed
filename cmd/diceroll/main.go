/*
Command diceroll is a CLI front end for the dicecore engine: roll a single
expression, run a statistics pass over many repeated rolls, or enter a REPL.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"

	"github.com/travis-g/dicecore"
	"github.com/travis-g/dicecore/stats"
)

func main() {
	cmd := cli.NewApp()
	cmd.Name = "diceroll"
	cmd.Usage = "roll and analyze dice notation expressions"
	cmd.Version = "0.1.0"

	globalFlags := []cli.Flag{
		cli.StringFlag{
			Name:   "format",
			Value:  "text",
			Usage:  "output format: text, tree, table, json, yaml",
			EnvVar: "DICEROLL_FORMAT",
		},
		cli.StringFlag{
			Name:   "config",
			Value:  "",
			Usage:  "path to a YAML config file",
			EnvVar: "DICEROLL_CONFIG",
		},
		cli.BoolFlag{
			Name:   "debug",
			Usage:  "enable debug logging",
			EnvVar: "DICEROLL_DEBUG",
		},
	}

	cmd.Flags = globalFlags
	cmd.Commands = []cli.Command{
		{
			Name:    "roll",
			Aliases: []string{"r"},
			Usage:   "roll a dice notation expression",
			Action:  rollCommand,
		},
		{
			Name:  "stats",
			Usage: "run repeated trials of an expression and report the distribution",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "trials", Value: 0, Usage: "number of trials (0 uses the config default)"},
			},
			Action: statsCommand,
		},
		{
			Name:   "repl",
			Usage:  "enter an interactive roll REPL",
			Action: replCommand,
		},
	}

	sort.Sort(cli.CommandsByName(cmd.Commands))

	if err := cmd.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadedConfig(c *cli.Context) (*Config, error) {
	cfg, err := loadConfig(c.GlobalString("config"))
	if err != nil {
		return nil, err
	}
	if c.GlobalIsSet("format") {
		cfg.Format = c.GlobalString("format")
	}
	if c.GlobalBool("debug") {
		cfg.Debug = true
	}
	return cfg, nil
}

func rollCommand(c *cli.Context) error {
	cfg, err := loadedConfig(c)
	if err != nil {
		return err
	}
	configureLogging(cfg.Debug)

	expr := c.Args().Get(0)
	if expr == "" {
		return fmt.Errorf("roll requires an expression argument")
	}

	ctx := context.Background()
	if cfg.MaxRolls > 0 {
		ctx = dicecore.WithRollBudget(ctx, cfg.MaxRolls)
	}

	ev := dicecore.NewEvaluator(dicecore.NewRNGRoller())
	ev.OnRoll = func(r *dicecore.RollResult) {
		log.Debug().Str("expr", r.Expression).Str("op", string(r.OpType)).Int("total", r.Total()).Msg("node evaluated")
	}

	summary, err := ev.Roll(ctx, expr)
	if err != nil {
		return err
	}
	out, err := formatSummary(cfg.Format, summary)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func statsCommand(c *cli.Context) error {
	cfg, err := loadedConfig(c)
	if err != nil {
		return err
	}
	configureLogging(cfg.Debug)

	expr := c.Args().Get(0)
	if expr == "" {
		return fmt.Errorf("stats requires an expression argument")
	}
	trials := c.Int("trials")
	if trials <= 0 {
		trials = cfg.StatsTrials
	}

	report, err := stats.Run(context.Background(), expr, dicecore.NewRNGRoller(), trials)
	if err != nil {
		return err
	}
	data := map[string]interface{}{
		"expression": report.Expression,
		"trials":     report.Trials,
		"mean":       report.Mean,
		"stddev":     report.StdDev,
		"min":        report.Min,
		"max":        report.Max,
	}
	out, err := formatStatsReport(cfg.Format, data)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
