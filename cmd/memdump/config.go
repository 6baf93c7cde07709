package main

import (
	"flag"

	"github.com/pkg/errors"
	"github.com/ss-continuum/memdbg/pkg/memdbg"
)

type Config struct {
	Align  int
	Offset int
	Mode   memdbg.Mode
	Record int
	Prefix string
	Debug  bool

	fs *flag.FlagSet
}

func newConfig() *Config {
	c := &Config{Mode: memdbg.FullDump}

	c.fs = flag.NewFlagSet("memdump", flag.ContinueOnError)

	c.fs.IntVar(&c.Align, "align", memdbg.WordSize, "word size in bytes")
	c.fs.IntVar(&c.Offset, "offset", 0, "bytes before the first word boundary")
	c.fs.Var(&c.Mode, "mode", "output mode: full | name | disabled")
	c.fs.IntVar(&c.Record, "record", 0, "dump input as records of this many bytes (0 = whole input)")
	c.fs.StringVar(&c.Prefix, "prefix", "", "prefix for every output line")
	c.fs.BoolVar(&c.Debug, "debug", false, "log progress")
	c.fs.String("config", "", "config file (optional)")

	return c
}

func (c Config) Hook() memdbg.Hook {
	return memdbg.Hook{
		Mode:   c.Mode,
		Config: memdbg.Config{Align: c.Align, Offset: c.Offset},
	}
}

func (c Config) Validate() error {
	if c.Record < 0 {
		return errors.Wrapf(memdbg.ErrInvalidConfig, "record size must not be negative, got %d", c.Record)
	}
	if c.Mode == memdbg.FullDump {
		if err := c.Hook().Config.Validate(); err != nil {
			return err
		}
	}

	return nil
}
