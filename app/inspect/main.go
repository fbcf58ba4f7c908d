package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/RacoonMediaServer/rms-memories/internal/config"
	"github.com/RacoonMediaServer/rms-memories/internal/layout"
	"github.com/RacoonMediaServer/rms-memories/internal/model"
	"github.com/RacoonMediaServer/rms-memories/internal/service/memories"
	"github.com/RacoonMediaServer/rms-memories/internal/storage"
	"github.com/urfave/cli/v2"
	"go-micro.dev/v4/logger"
)

func main() {
	app := &cli.App{
		Name:  "rms-memories.inspect",
		Usage: "show what sync would generate without touching output",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to JSON configuration file",
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "directory with memory folders",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"debug"},
				Usage:   "debug log level",
			},
		},
		Action: inspect,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("Inspect failed: %s", err)
	}
}

func inspect(c *cli.Context) error {
	if c.Bool("verbose") {
		_ = logger.Init(logger.WithLevel(logger.DebugLevel))
	}
	if c.IsSet("config") {
		if err := config.Load(c.String("config")); err != nil {
			return err
		}
	}
	cfg := config.Config()
	if c.IsSet("source") {
		cfg.Source = c.String("source")
	}

	svc := memories.NewService(memories.Settings{
		SourceRoot:       cfg.Source,
		DirectoryManager: storage.NewManager(cfg.Output, cfg.Retry),
	})

	report, err := svc.Plan()
	if err != nil {
		return err
	}
	if !report.SourceFound {
		fmt.Printf("No source folder found at %s\n", cfg.Source)
		return nil
	}

	for _, f := range report.Manifest {
		fmt.Printf("%s [%s] %d items\n", f.Title, f.ID, f.Count)
		for i, item := range f.Items {
			fmt.Printf("  #%d. %s (%s) %s\n", i+1, item.Title, item.Type, item.Src)
			if labels := layout.ContextLabels(item); len(labels) != 0 {
				fmt.Printf("      %s\n", strings.Join(labels, " | "))
			}
		}
	}

	printLayout(report.Manifest)
	return nil
}

func printLayout(manifest model.Manifest) {
	hearts, chapters := layout.Partition(manifest)

	fmt.Printf("\nHearts (up to %d items): %d\n", layout.SmallFolderLimit, len(hearts))
	for _, f := range hearts {
		fmt.Printf("  %s\n", f.Title)
	}

	fmt.Printf("\nChapters: %d\n", len(chapters))
	for i, f := range chapters {
		s := layout.Summarize(f)
		fmt.Printf("  %s, variant %d", f.Title, layout.Variant(i))
		if s.DateLabel != "" {
			fmt.Printf(", %s", s.DateLabel)
		}
		if len(s.Locations) != 0 {
			fmt.Printf(", %s", strings.Join(s.Locations, " · "))
		}
		fmt.Println()
	}
}
