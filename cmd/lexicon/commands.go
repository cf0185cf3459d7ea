package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"
)

const listDescription = `Usage:

    lexicon list [options...] [file...]

Description:

Loads every word list given in the configuration and on the command line,
one word per line, and prints the stored words in alphabetical order.

Example:

    # Print every word except "help"
    $ lexicon list --remove help words/small.txt

    # Print only the words starting with "ca"
    $ lexicon list --prefix ca words/small.txt`

var listCommand = cli.Command{
	Name:        "list",
	Usage:       "Print the words of one or more word lists in order",
	Description: listDescription,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "prefix",
			Usage: "Only print words starting with this prefix",
		},
		cli.StringSliceFlag{
			Name:  "remove",
			Usage: "Remove this word before printing (may be repeated)",
		},
	},
	Action: func(c *cli.Context) error {
		t, err := loadLexicon(configFrom(c), c.Args())
		if err != nil {
			return fmt.Errorf("failed to load word lists: %w", err)
		}

		for _, word := range c.StringSlice("remove") {
			if !t.RemoveWord(word) {
				log.Warn().Str("word", word).Msg("Word to remove is not in the lexicon")
				continue
			}
			log.Debug().Str("word", word).Msg("Removed word")
		}

		for word := range t.WordsWithPrefix(c.String("prefix")) {
			fmt.Fprintln(c.App.Writer, word)
		}
		return nil
	},
}

const queryDescription = `Usage:

    lexicon query --file <file> [options...] <query...>

Description:

Loads the given word lists and reports, for each query, whether it is a stored
word and whether it begins any stored word.

Example:

    $ lexicon query --file words/small.txt cat ca xyz`

var queryCommand = cli.Command{
	Name:        "query",
	Usage:       "Check words and prefixes against one or more word lists",
	Description: queryDescription,
	Flags: []cli.Flag{
		cli.StringSliceFlag{
			Name:  "file",
			Usage: "Word list to load (may be repeated)",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("no queries given, see 'lexicon query --help'")
		}
		t, err := loadLexicon(configFrom(c), c.StringSlice("file"))
		if err != nil {
			return fmt.Errorf("failed to load word lists: %w", err)
		}

		for _, q := range c.Args() {
			fmt.Fprintf(c.App.Writer, "%s\tword=%t\tprefix=%t\n", q, t.ContainsWord(q), t.ContainsPrefix(q))
		}
		return nil
	},
}
