package config

import "github.com/RacoonMediaServer/rms-packages/pkg/configuration"

// Output is settings of generated artifacts
type Output struct {
	// Public is a directory with copied media, fully replaced every run
	Public string

	// PublicPrefix is a URL path under which Public is served
	PublicPrefix string `json:"public-prefix"`

	// Manifest is a path of generated data module
	Manifest string

	// ExportName is a name of exported manifest constant
	ExportName string `json:"export-name"`

	// TypeName and TypeImport describe manifest element type for the generated module
	TypeName   string `json:"type-name"`
	TypeImport string `json:"type-import"`
}

// Retry is settings of output directory removal
type Retry struct {
	// Attempts is a maximum number of removal attempts
	Attempts int

	// Delay is a base delay between attempts in milliseconds, it grows linearly
	Delay int `json:"delay-ms"`
}

// Configuration represents entire tool configuration
type Configuration struct {
	// Source is a directory with user media: one level of folders with flat media files
	Source string

	Output Output

	Retry Retry
}

// Default returns configuration which is used when no file is given
func Default() Configuration {
	return Configuration{
		Source: "Memories",
		Output: Output{
			Public:       "public/memories/user",
			PublicPrefix: "/memories/user",
			Manifest:     "src/data/generatedMemories.ts",
			ExportName:   "generatedMemories",
			TypeName:     "MemoryFolder",
			TypeImport:   "./media",
		},
		Retry: Retry{
			Attempts: 3,
			Delay:    50,
		},
	}
}

var config = Default()

// Load open and parses configuration file over defaults
func Load(configFilePath string) error {
	return configuration.Load(configFilePath, &config)
}

// Config returns loaded configuration
func Config() Configuration {
	return config
}

// Set replaces loaded configuration, command line overrides go through it
func Set(cfg Configuration) {
	config = cfg
}
