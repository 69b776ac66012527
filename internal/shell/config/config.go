package config

import (
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/sqlitekit/sqlitekit"
	"github.com/sqlitekit/sqlitekit/internal/version"
)

// Config represents the configuration for litesh.
type Config struct {
	Path     string `arg:"positional" help:"Path of the SQLite database to open (defaults to a private in-memory database)" default:":memory:"`
	Encoding string `arg:"--encoding" help:"Text width used to open the database, utf8 or utf16" default:"utf8"`
	Profile  bool   `arg:"--profile" help:"Log the SQL and wall time of every statement"`

	ParsedEncoding sqlitekit.Encoding `arg:"-"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ShellVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	enc := sqlitekit.Encodings.Parse(cfg.Encoding)
	if enc == nil {
		log.Fatalf("unknown encoding %q, expected utf8 or utf16", cfg.Encoding)
	}
	cfg.ParsedEncoding = *enc

	return cfg
}
