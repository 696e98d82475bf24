package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/T-TRz879/progressw"
	"github.com/google/gops/agent"
	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	cliName        = "progressw"
	cliDescription = "Render progress bars in the terminal"
)

type demo struct {
	Name        string
	Description string
	Run         func(ctx *cli.Context, cfg progressw.Config) error
}

var demos = []demo{
	{Name: "single", Description: "one bar with title, percent and elapsed time", Run: runSingle},
	{Name: "precise", Description: "one bar with sub-character fill", Run: runPrecise},
	{Name: "console", Description: "one bar interleaved with log lines", Run: runConsole},
	{Name: "multi", Description: "three bars finishing at different speeds", Run: runMulti},
	{Name: "funny", Description: "ascii art filling up from the bottom", Run: runFunny},
}

func main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print version only",
	}
	app := &cli.App{
		Name:                 cliName,
		Usage:                cliDescription,
		Flags:                flags(),
		Before:               setup,
		Action:               Run,
		Commands:             commands(),
		HideHelpCommand:      true,
		EnableBashCompletion: true,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "yaml config file, default ~/.progressw.yml"},
		&cli.StringFlag{Name: "title", Usage: "bar title"},
		&cli.IntFlag{Name: "total", Usage: "ticks to complete", Value: 100},
		&cli.IntFlag{Name: "width", Usage: "maximum bar width"},
		&cli.DurationFlag{Name: "interval", Usage: "minimum time between redraws"},
		&cli.DurationFlag{Name: "tick", Usage: "time between two updates", Value: progressw.DefaultInterval * 3},
		&cli.BoolFlag{Name: "clear", Usage: "clear the bar on completion"},
		&cli.BoolFlag{Name: "pretty-time", Usage: "pretty print time and eta"},
		&cli.StringFlag{Name: "display", Usage: "display template, e.g. ':title :percent :bar :eta'"},
		&cli.BoolFlag{Name: "horizontal", Usage: "funny demo draws a horizontal bar"},
		&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn or error", Value: "info"},
		&cli.StringFlag{Name: "log-file", Usage: "write logs to this file instead of stderr"},
		&cli.BoolFlag{Name: "gops", Usage: "start the gops diagnostics agent"},
	}
}

func commands() []*cli.Command {
	cmds := make([]*cli.Command, 0, len(demos))
	for i := range demos {
		d := demos[i]
		cmds = append(cmds, &cli.Command{
			Name:  d.Name,
			Usage: d.Description,
			Action: func(ctx *cli.Context) error {
				return runDemo(ctx, d)
			},
		})
	}
	return cmds
}

func setup(ctx *cli.Context) error {
	lvl, err := logrus.ParseLevel(ctx.String("log-level"))
	if err != nil {
		return err
	}
	progressw.SetLogLevel(lvl)
	if name := ctx.String("log-file"); name != "" {
		if err := progressw.SetOutFile(name); err != nil {
			return err
		}
	}
	if ctx.Bool("gops") {
		if err := agent.Listen(agent.Options{}); err != nil {
			return err
		}
	}
	return nil
}

// Run lets the user pick a demo when no subcommand is given.
func Run(ctx *cli.Context) error {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ .Name | cyan }} ({{ .Description | green }})",
		Inactive: "  {{ .Name | cyan }}",
		Selected: " {{ .Name | red | cyan }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(demos[index].Name)
		return strings.Contains(name, strings.ToLower(strings.TrimSpace(input)))
	}

	prompt := promptui.Select{
		Label:     "Select demo",
		Items:     demos,
		Templates: templates,
		Size:      len(demos),
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return err
	}
	return runDemo(ctx, demos[i])
}

func runDemo(ctx *cli.Context, d demo) error {
	defer agent.Close()
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	return d.Run(ctx, cfg)
}

// loadConfig reads the config file, then applies the flags set on the command line.
func loadConfig(ctx *cli.Context) (progressw.Config, error) {
	var (
		cfg progressw.Config
		err error
	)
	if path := ctx.String("config"); path != "" {
		cfg, err = progressw.LoadConfigFile(path)
	} else {
		cfg, err = progressw.LoadConfig()
		if errors.Is(err, os.ErrNotExist) {
			err = nil
		}
	}
	if err != nil {
		return cfg, err
	}

	if ctx.IsSet("title") {
		cfg.Title = ctx.String("title")
	}
	if ctx.IsSet("total") || cfg.Total <= 0 {
		cfg.Total = ctx.Int("total")
	}
	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("interval") {
		cfg.Interval = ctx.Duration("interval")
	}
	if ctx.IsSet("clear") {
		cfg.Clear = ctx.Bool("clear")
	}
	if ctx.IsSet("pretty-time") {
		cfg.PrettyTime = ctx.Bool("pretty-time")
	}
	if ctx.IsSet("display") {
		cfg.Display = ctx.String("display")
	}
	if ctx.IsSet("horizontal") {
		cfg.Horizontal = ctx.Bool("horizontal")
	}
	if cfg.Total <= 0 {
		return cfg, fmt.Errorf("total must be positive, got %d", cfg.Total)
	}
	return cfg, nil
}
