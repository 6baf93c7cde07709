package memdbg

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Mode selects what a Hook renders for a value.
type Mode int

const (
	// FullDump renders the value's raw bytes.
	FullDump Mode = iota
	// NameOnly renders the value's type name without inspecting it.
	NameOnly
	// Disabled renders nothing.
	Disabled
)

var modeNames = map[Mode]string{
	FullDump: "full",
	NameOnly: "name",
	Disabled: "disabled",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidConfig, "unknown mode %q", s)
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
