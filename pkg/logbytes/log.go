package logbytes

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/ss-continuum/memdbg/pkg/memdbg"
)

// Lines returns the dump of b split into lines. The empty line the dump
// starts with when there is no prefix run is dropped.
func Lines(b []byte, conf memdbg.Config) ([]string, error) {
	s, err := conf.Dump(b)
	if err != nil {
		return nil, errors.Wrap(err, "conf.Dump")
	}
	if s == "" {
		return nil, nil
	}

	lines := strings.Split(s, "\n")
	if lines[0] == "" {
		lines = lines[1:]
	}

	return lines, nil
}

func Fprint(w io.Writer, b []byte, prefix string, conf memdbg.Config) error {
	data, err := Lines(b, conf)
	if err != nil {
		return err
	}

	for _, datum := range data {
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, datum); err != nil {
			return errors.Wrap(err, "fmt.Fprintf")
		}
	}

	return nil
}

func Log(b []byte) {
	LogPrefix(b, "")
}

func LogPrefix(b []byte, prefix string) {
	if err := Fprint(os.Stdout, b, prefix, memdbg.DefaultConfig()); err != nil {
		log.Println("logbytes:", err)
	}
}
