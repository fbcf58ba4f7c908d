package main

import (
	"os"

	"github.com/RacoonMediaServer/rms-memories/internal/config"
	"github.com/RacoonMediaServer/rms-memories/internal/metadata"
	"github.com/RacoonMediaServer/rms-memories/internal/service/memories"
	"github.com/RacoonMediaServer/rms-memories/internal/storage"
	"github.com/urfave/cli/v2"
	"go-micro.dev/v4/logger"
)

var Version = "v0.0.0"

const serviceName = "rms-memories"

func main() {
	logger.Infof("%s %s", serviceName, Version)
	defer logger.Info("DONE.")

	app := &cli.App{
		Name:    serviceName,
		Version: Version,
		Usage:   "sync user memories into the public tree and generate the manifest module",
		Flags:   configFlags(),
		Action:  run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("Sync memories failed: %s", err)
	}
}

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to JSON configuration file",
		},
		&cli.StringFlag{
			Name:  "source",
			Usage: "directory with memory folders",
		},
		&cli.StringFlag{
			Name:  "public",
			Usage: "public directory the media is copied to",
		},
		&cli.StringFlag{
			Name:  "public-prefix",
			Usage: "URL path the public directory is served under",
		},
		&cli.StringFlag{
			Name:  "manifest",
			Usage: "path of generated manifest module",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug"},
			Usage:   "debug log level",
		},
	}
}

// loadConfig reads configuration file if given and applies command line overrides
func loadConfig(c *cli.Context) (config.Configuration, error) {
	if c.Bool("verbose") {
		_ = logger.Init(logger.WithLevel(logger.DebugLevel))
	}

	if c.IsSet("config") {
		if err := config.Load(c.String("config")); err != nil {
			return config.Configuration{}, err
		}
	}

	cfg := config.Config()
	if c.IsSet("source") {
		cfg.Source = c.String("source")
	}
	if c.IsSet("public") {
		cfg.Output.Public = c.String("public")
	}
	if c.IsSet("public-prefix") {
		cfg.Output.PublicPrefix = c.String("public-prefix")
	}
	if c.IsSet("manifest") {
		cfg.Output.Manifest = c.String("manifest")
	}
	config.Set(cfg)

	return cfg, nil
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	svc := memories.NewService(memories.Settings{
		SourceRoot:       cfg.Source,
		Metadata:         metadata.NewReader(),
		DirectoryManager: storage.NewManager(cfg.Output, cfg.Retry),
	})

	report, err := svc.Sync()
	if err != nil {
		return err
	}

	if !report.SourceFound {
		logger.Infof("No source folder found at %s. Generated an empty manifest.", cfg.Source)
		return nil
	}

	logger.Infof("Synced %d folders (%d items) into %s", len(report.Manifest), report.Manifest.ItemsCount(), cfg.Output.Public)
	return nil
}
