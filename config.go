package main

import (
	"fmt"
	"strings"

	"github.com/namsral/flag"
)

// Config is the merged result of flags and environment variables.
// Every flag can also be set through its upper-case name, e.g. -words_file
// and WORDS_FILE; a flag on the command line wins.
type Config struct {
	WordsFile    string
	Strict       bool
	Secret       string
	Mode         string
	Seed         int64
	FirstGuess   string
	MaxRounds    int
	DailySalt    string
	DBPath       string
	Port         string
	JWTSecret    string
	ClientOrigin string
	LogLevel     string
	Color        bool
}

var commands = []string{"play", "bench", "serve"}

// parseArgs splits off the optional command (default "play") and parses flags.
func parseArgs(args []string) (string, Config, error) {
	cmd := "play"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}
	if !isCommand(cmd) {
		return "", Config{}, fmt.Errorf("unknown command %q (want one of %s)", cmd, strings.Join(commands, ", "))
	}

	var cfg Config
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.StringVar(&cfg.WordsFile, "words_file", "", "Whitespace-separated list of 5-letter words; empty uses the embedded list.")
	fs.BoolVar(&cfg.Strict, "strict", false, "Reject the word list on the first malformed token instead of skipping it.")
	fs.StringVar(&cfg.Secret, "secret", "", "Fixed secret word; must be in the dictionary.")
	fs.StringVar(&cfg.Mode, "mode", "random", "How to pick the secret when -secret is empty: random or daily.")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Seed for random secrets; 0 seeds from the clock.")
	fs.StringVar(&cfg.FirstGuess, "first_guess", "", "Forced opening guess.")
	fs.IntVar(&cfg.MaxRounds, "max_rounds", 0, "Give up after this many rounds; 0 means the dictionary size.")
	fs.StringVar(&cfg.DailySalt, "daily_salt", "local_dev_salt", "Salt for daily secrets.")
	fs.StringVar(&cfg.DBPath, "db_path", "", "SQLite file for run history; empty disables history.")
	fs.StringVar(&cfg.Port, "port", "5175", "Port for the serve command.")
	fs.StringVar(&cfg.JWTSecret, "jwt_secret", "dev_secret_change_me", "Key for assist session tokens.")
	fs.StringVar(&cfg.ClientOrigin, "client_origin", "http://localhost:5173", "Allowed CORS origin.")
	fs.StringVar(&cfg.LogLevel, "log_level", "info", "zerolog level.")
	fs.BoolVar(&cfg.Color, "color", false, "Colour the feedback code with ANSI escapes.")
	if err := fs.Parse(args); err != nil {
		return "", Config{}, err
	}

	cfg.Mode = strings.ToLower(cfg.Mode)
	if cfg.Mode != "random" && cfg.Mode != "daily" {
		return "", Config{}, fmt.Errorf("invalid -mode %q (want random or daily)", cfg.Mode)
	}
	return cmd, cfg, nil
}

func isCommand(s string) bool {
	for _, c := range commands {
		if c == s {
			return true
		}
	}
	return false
}
