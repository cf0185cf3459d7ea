package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"

	trie "github.com/sarthakjha889/go-lexicon-trie"
	"github.com/sarthakjha889/go-lexicon-trie/internal/config"
)

const configKey = "config"

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "lexicon"
	app.Usage = "Load word lists into a lexicon and query it"
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Value:  "",
			Usage:  "Path to a configuration file",
			EnvVar: "LEXICON_CONFIG",
		},
		cli.BoolFlag{
			Name:  "case-sensitive",
			Usage: "Store and compare words without folding case",
		},
		cli.BoolFlag{
			Name:  "normalise",
			Usage: "Strip diacritics from every word",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
		},
	}
	app.Before = setup
	app.Commands = []cli.Command{listCommand, queryCommand}
	return app
}

// setup loads the configuration, applies flag overrides and configures the
// logger before any command runs.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("case-sensitive") {
		cfg.CaseSensitive = c.Bool("case-sensitive")
	}
	if c.IsSet("normalise") {
		cfg.Normalise = c.Bool("normalise")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var out io.Writer = os.Stderr
	if c.App.ErrWriter != nil {
		out = c.App.ErrWriter
	}
	level, _ := cfg.Level()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
		Level(level).With().Timestamp().Logger()

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

func configFrom(c *cli.Context) *config.Config {
	cfg, _ := c.App.Metadata[configKey].(*config.Config)
	if cfg == nil {
		cfg = &config.Config{LogLevel: "info"}
	}
	return cfg
}

// loadLexicon builds a Trie from cfg and fills it from the configured word
// lists followed by files.
func loadLexicon(cfg *config.Config, files []string) (*trie.Trie, error) {
	t := trie.New()
	if cfg.CaseSensitive {
		t.CaseSensitive()
	}
	if cfg.Normalise {
		t.WithNormalisation()
	}

	paths := append(append([]string{}, cfg.WordLists...), files...)
	for _, path := range paths {
		added, err := t.AddWordsFromFile(path)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", path).Int("added", added).Int("total", t.NumWords()).Msg("Loaded word list")
	}
	return t, nil
}
