// Package config loads AddrScope settings from the command line and an
// optional ini file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/Amr-9/AddrScope/pkg/classifier"
)

const (
	defaultLogLevel = "info"
)

// ErrInvalidLength is returned when a configured address length is not
// positive.
var ErrInvalidLength = errors.New("address length must be positive")

// ShapeOptions overrides the Base58 length heuristics of the shape table.
// Bech32 lengths are fixed by the witness program size and are not
// configurable.
type ShapeOptions struct {
	P2PKHLengths []int `long:"p2pkh-len" description:"Accepted P2PKH (legacy) address length; repeat for several (default: 33, 34)"`
	P2SHLengths  []int `long:"p2sh-len" description:"Accepted P2SH (nested segwit) address length; repeat for several (default: 34, 35)"`
}

// Config holds all settings of the addrscope command.
type Config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to an ini configuration file"`
	LogLevel   string `long:"loglevel" description:"Logging level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	JSON       bool   `long:"json" description:"Print one JSON object per address"`
	NoColor    bool   `long:"nocolor" description:"Disable colored output"`
	Stdin      bool   `long:"stdin" description:"Read addresses from standard input, one per line"`
	Regtest    bool   `long:"regtest" description:"Also recognize regtest (bcrt1) segwit addresses"`

	Shape *ShapeOptions `group:"Address shapes" namespace:"shape"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		LogLevel: defaultLogLevel,
		Shape:    &ShapeOptions{},
	}
}

// Load parses args on top of the defaults. When a config file is named, it
// is applied first so that command line flags take precedence over it.
// The remaining positional arguments are returned.
func Load(args []string) (*Config, []string, error) {
	// Pre-parse the command line to find the config file.
	preCfg := Default()
	preParser := flags.NewParser(preCfg, flags.HelpFlag|flags.PassDoubleDash|flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, nil, err
		}
		return nil, nil, err
	}

	cfg := Default()
	parser := flags.NewParser(cfg, flags.PassDoubleDash)
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to parse config file %s: %w",
				preCfg.ConfigFile, err)
		}
	}

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, rest, nil
}

func (c *Config) validate() error {
	for _, n := range c.Shape.P2PKHLengths {
		if n <= 0 {
			return fmt.Errorf("--shape.p2pkh-len=%d: %w", n, ErrInvalidLength)
		}
	}
	for _, n := range c.Shape.P2SHLengths {
		if n <= 0 {
			return fmt.Errorf("--shape.p2sh-len=%d: %w", n, ErrInvalidLength)
		}
	}
	return nil
}

// Table builds the classifier shape table described by the config.
func (c *Config) Table() classifier.Table {
	table := classifier.DefaultTable()
	if c.Regtest {
		table = append(table, classifier.RegtestRules()...)
	}
	if len(c.Shape.P2PKHLengths) > 0 {
		table = table.WithLengths(classifier.P2PKH, c.Shape.P2PKHLengths...)
	}
	if len(c.Shape.P2SHLengths) > 0 {
		table = table.WithLengths(classifier.P2SH, c.Shape.P2SHLengths...)
	}
	return table
}
