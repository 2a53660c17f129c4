// id3dump prints the ID3v2 frames of one or more audio files.
//
// Useful for confirming what the decoder actually extracts from a file:
//
//	id3dump song.mp3
//	id3dump -config id3dump.toml *.mp3
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/simonhull/id3meta"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	logger := newLogger()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("config")
		}
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	} else {
		logger.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: id3dump [-config file.toml] <file.mp3> [...]")
		os.Exit(1)
	}

	opts := cfg.decodeOptions()
	failed := false
	for _, path := range flag.Args() {
		if err := dumpFile(path, opts, cfg, logger); err != nil {
			logger.Error().Err(err).Str("file", path).Msg("dump failed")
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "id3dump").Logger()
}

func dumpFile(path string, opts []id3meta.Option, cfg dumpConfig, logger zerolog.Logger) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tag, rest, err := id3meta.Decode(buf, opts...)
	if err != nil {
		return err
	}

	consumed := len(buf) - len(rest)
	logger.Debug().
		Str("file", path).
		Int("tag_bytes", consumed).
		Int("frames", tag.Len()).
		Uint8("version", tag.Version).
		Msg("decoded")

	fmt.Printf("%s:\n", path)
	if tag.Len() == 0 {
		fmt.Println("  (no ID3v2 tag)")
		return nil
	}
	fmt.Printf("  ID3v2.%d, %d tag bytes\n", tag.Version, consumed)

	for _, id := range tag.IDs() {
		printFrame(id, tag.Frames[id], cfg)
	}
	return nil
}

func printFrame(id id3meta.FrameID, value id3meta.FrameValue, cfg dumpConfig) {
	switch v := value.(type) {
	case id3meta.TextList:
		if len(v) == 1 {
			fmt.Printf("  %s: %s\n", id, v[0])
		} else {
			fmt.Printf("  %s: %v\n", id, []string(v))
		}
	case id3meta.UserText:
		fmt.Printf("  %s: %s = %s\n", id, v.Description, v.Value)
	case id3meta.Comment:
		fmt.Printf("  %s [%s] %s: %s\n", id, v.Language, v.ShortDescription, v.Value)
	case id3meta.Picture:
		fmt.Printf("  %s: %s, type %d, %q, %d bytes\n", id, v.MIMEType, v.PictureType, v.Description, len(v.Data))
		if cfg.PictureBytes {
			fmt.Printf("    % x\n", v.Data)
		}
	default:
		fmt.Printf("  %s: %v\n", id, v)
	}
}
