package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/T-TRz879/progressw"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

const funnyImage = `
                                                           __
                              .__                         / |
                             /  /                         |  \
                            /   |                     _-------'_
                       ____/     \_________      __--"      _/  \_
         _______------"                    "----"          _-\___/
     _--"                                               _-"
 ___<___                                          ___--"
(-------0                                   __---"
 ` + "`" + `--___                                    /
       "--___\                _______-----"
             \\    (____-----"
              \\    \_
               ` + "`.`" + `..__\
`

// glyph renders s with attrs even when stdout is not a terminal, the bar
// decides itself what to do with escape sequences.
func glyph(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func runSingle(ctx *cli.Context, cfg progressw.Config) error {
	if cfg.Title == "" {
		cfg.Title = "downloading:"
	}
	return tickSingle(ctx, progressw.NewProgressBar(os.Stdout, cfg), cfg.Total, nil)
}

func runPrecise(ctx *cli.Context, cfg progressw.Config) error {
	for _, g := range []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉"} {
		cfg.PreciseBar = append(cfg.PreciseBar, glyph(g, color.BgWhite, color.FgGreen))
	}
	return tickSingle(ctx, progressw.NewProgressBar(os.Stdout, cfg), cfg.Total, nil)
}

func runConsole(ctx *cli.Context, cfg progressw.Config) error {
	if cfg.Title == "" {
		cfg.Title = "interval:"
	}
	bar := progressw.NewProgressBar(os.Stdout, cfg)
	return tickSingle(ctx, bar, cfg.Total, func(completed int) error {
		if completed%20 != 0 {
			return nil
		}
		return bar.Console(fmt.Sprint(completed))
	})
}

func tickSingle(ctx *cli.Context, bar *progressw.ProgressBar, total int, after func(completed int) error) error {
	stop := progressw.OnInterrupt(bar, nil)
	defer stop()

	tick := ctx.Duration("tick")
	for completed := 0; completed <= total; completed++ {
		if err := bar.Render(completed); err != nil {
			return err
		}
		if after != nil {
			if err := after(completed); err != nil {
				return err
			}
		}
		if err := sleep(ctx.Context, tick); err != nil {
			return bar.End()
		}
	}
	return nil
}

func runMulti(ctx *cli.Context, cfg progressw.Config) error {
	if cfg.Title == "" {
		cfg.Title = "download files"
	}
	bars := progressw.NewMultiProgressBar(os.Stdout, cfg)
	stop := progressw.OnInterrupt(bars, nil)
	defer stop()

	states := []progressw.BarState{
		{Total: cfg.Total, Text: "file1", Complete: glyph("*", color.FgGreen), Incomplete: "."},
		{Total: cfg.Total, Text: "file2"},
		{Total: cfg.Total, Text: "file3", Complete: "=", Incomplete: "-"},
	}
	tick := ctx.Duration("tick")
	for !bars.Ended() {
		for i := range states {
			states[i].Completed = progressw.MinInt(states[i].Completed+i+1, states[i].Total)
		}
		if err := bars.Render(states); err != nil {
			return err
		}
		if err := sleep(ctx.Context, tick); err != nil {
			return bars.End()
		}
	}
	return nil
}

func runFunny(ctx *cli.Context, cfg progressw.Config) error {
	bar := progressw.NewFunnyProgressBar(os.Stdout, cfg)
	stop := progressw.OnInterrupt(bar, nil)
	defer stop()

	tick := ctx.Duration("tick")
	for completed := 0; completed <= cfg.Total; completed++ {
		if err := bar.Render(completed, funnyImage); err != nil {
			return err
		}
		if err := sleep(ctx.Context, tick); err != nil {
			return bar.End()
		}
	}
	return nil
}
