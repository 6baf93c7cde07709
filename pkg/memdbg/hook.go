package memdbg

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// RawByter is implemented by types that opt in to being dumped. RawBytes
// returns the value's fixed-size byte representation; the bytestream
// package helps build one.
type RawByter interface {
	RawBytes() []byte
}

// Hook renders values for diagnostic output according to Mode.
type Hook struct {
	Mode   Mode
	Config Config
}

var Default = Hook{Mode: FullDump, Config: DefaultConfig()}

func (h Hook) Render(name string, raw []byte) (string, error) {
	switch h.Mode {
	case FullDump:
		return h.Config.Dump(raw)
	case NameOnly:
		return name, nil
	case Disabled:
		return "", nil
	}

	return "", errors.Wrapf(ErrInvalidConfig, "unknown mode %v", h.Mode)
}

// Describe renders v under its declared type name. RawBytes is only called
// in FullDump mode. A nil pointer dumps as "<nil>".
func (h Hook) Describe(v RawByter) string {
	var raw []byte
	if h.Mode == FullDump && v != nil {
		if isNilPtr(v) {
			return "<nil>"
		}
		raw = v.RawBytes()
	}

	s, err := h.Render(typeName(v), raw)
	if err != nil {
		return badDump(err)
	}

	return s
}

// Value binds v to h so it can be passed to the fmt package.
func (h Hook) Value(v RawByter) fmt.Stringer {
	return value{hook: h, v: v}
}

type value struct {
	hook Hook
	v    RawByter
}

func (v value) String() string {
	return v.hook.Describe(v.v)
}

func (v value) GoString() string {
	return v.String()
}

func isNilPtr(v interface{}) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func typeName(v interface{}) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	if name := t.Name(); name != "" {
		return name
	}

	return t.String()
}
