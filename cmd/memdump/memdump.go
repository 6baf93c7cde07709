package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"
	"github.com/ss-continuum/memdbg/pkg/logbytes"
	"github.com/ss-continuum/memdbg/pkg/memdbg"
)

type record struct {
	name string
	data []byte
}

func parseOptions() []ff.Option {
	return []ff.Option{
		ff.WithEnvVarPrefix("MEMDUMP"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	}
}

func readInputs(args []string, stdin io.Reader) ([]record, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var inputs []record
	for _, name := range args {
		var data []byte
		var err error
		if name == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}

		inputs = append(inputs, record{name: name, data: data})
	}

	return inputs, nil
}

// split cuts in into records of size bytes; the last one may be shorter.
func split(in record, size int) []record {
	if size <= 0 || len(in.data) <= size {
		return []record{in}
	}

	var out []record
	for i := 0; i*size < len(in.data); i++ {
		end := min((i+1)*size, len(in.data))
		out = append(out, record{
			name: fmt.Sprintf("%s[%d]", in.name, i),
			data: in.data[i*size : end],
		})
	}

	return out
}

func run(conf Config, args []string, stdin io.Reader, stdout io.Writer) error {
	if err := conf.Validate(); err != nil {
		return err
	}

	inputs, err := readInputs(args, stdin)
	if err != nil {
		return err
	}

	var records []record
	for _, in := range inputs {
		records = append(records, split(in, conf.Record)...)
	}

	hook := conf.Hook()
	for _, rec := range records {
		if conf.Debug {
			log.Printf("dumping %s (%d bytes, mode %s)\n", rec.name, len(rec.data), hook.Mode)
		}

		if hook.Mode != memdbg.FullDump {
			s, err := hook.Render(rec.name, nil)
			if err != nil {
				return errors.Wrap(err, "hook.Render")
			}
			if s != "" {
				if _, err := fmt.Fprintf(stdout, "%s%s\n", conf.Prefix, s); err != nil {
					return errors.Wrap(err, "fmt.Fprintf")
				}
			}
			continue
		}

		if len(records) > 1 {
			if _, err := fmt.Fprintf(stdout, "%s%s:\n", conf.Prefix, rec.name); err != nil {
				return errors.Wrap(err, "fmt.Fprintf")
			}
		}
		if err := logbytes.Fprint(stdout, rec.data, conf.Prefix, hook.Config); err != nil {
			return errors.Wrapf(err, "dump %s", rec.name)
		}
	}

	return nil
}

func main() {
	conf := newConfig()

	root := &ffcli.Command{
		Name:       "memdump",
		ShortUsage: fmt.Sprintf("%s [-align <n>] [-offset <n>] [-mode full|name|disabled] [-record <n>] [file ...]", os.Args[0]),
		FlagSet:    conf.fs,
		Options:    parseOptions(),
		Exec: func(ctx context.Context, args []string) error {
			return run(*conf, args, os.Stdin, os.Stdout)
		},
	}

	if err := root.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}
