package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/simonhull/id3meta"
)

type fileConfig struct {
	KnownFrames  []string `toml:"known_frames"`
	LogLevel     string   `toml:"log_level"`
	ShowSkipped  bool     `toml:"show_skipped"`
	PictureBytes bool     `toml:"picture_bytes"`
}

// dumpConfig is the effective tool configuration after merging the config
// file over the defaults.
type dumpConfig struct {
	ExtraKnownFrames []id3meta.FrameID
	LogLevel         string
	PictureBytes     bool
}

func defaultConfig() dumpConfig {
	return dumpConfig{
		LogLevel: "info",
	}
}

func loadConfig(path string) (dumpConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return dumpConfig{}, fmt.Errorf("load id3dump config: %w", err)
	}

	if meta.IsDefined("known_frames") {
		for _, id := range raw.KnownFrames {
			id = strings.TrimSpace(id)
			if len(id) != 4 {
				return dumpConfig{}, fmt.Errorf("known_frames entry %q: frame IDs are 4 characters", id)
			}
			cfg.ExtraKnownFrames = append(cfg.ExtraKnownFrames, id3meta.FrameID(id))
		}
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("picture_bytes") {
		cfg.PictureBytes = raw.PictureBytes
	}

	return cfg, nil
}

// decodeOptions converts the configuration into library options.
func (c dumpConfig) decodeOptions() []id3meta.Option {
	var opts []id3meta.Option
	if len(c.ExtraKnownFrames) > 0 {
		opts = append(opts, id3meta.WithKnownFrames(c.ExtraKnownFrames...))
	}
	return opts
}
