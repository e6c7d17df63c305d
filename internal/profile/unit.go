package profile

import (
	"fmt"
	"strings"

	"github.com/xtxerr/parquet-flamegraph/internal/errors"
)

// Unit is the display unit compressed sizes are scaled to.
type Unit int

const (
	Bytes Unit = iota
	KiloBytes
	MegaBytes
	GigaBytes
)

// Units lists every unit in ascending magnitude.
var Units = []Unit{Bytes, KiloBytes, MegaBytes, GigaBytes}

// Divisor returns the number of bytes in one unit.
func (u Unit) Divisor() uint64 {
	switch u {
	case KiloBytes:
		return 1024
	case MegaBytes:
		return 1024 * 1024
	case GigaBytes:
		return 1024 * 1024 * 1024
	default:
		return 1
	}
}

// String returns the flag name of the unit (b, kb, mb, gb).
func (u Unit) String() string {
	switch u {
	case Bytes:
		return "b"
	case KiloBytes:
		return "kb"
	case MegaBytes:
		return "mb"
	case GigaBytes:
		return "gb"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Label returns the count label shown by the renderer.
func (u Unit) Label() string {
	switch u {
	case KiloBytes:
		return "KB"
	case MegaBytes:
		return "MB"
	case GigaBytes:
		return "GB"
	default:
		return "Bytes"
	}
}

// ParseUnit parses a unit flag name. Matching is case-insensitive.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Bytes, nil
	}
	for _, u := range Units {
		if u.String() == name {
			return u, nil
		}
	}
	return Bytes, errors.Wrapf(errors.ErrInvalidUnit, "%q (want one of b, kb, mb, gb)", s)
}

// Set implements pflag.Value.
func (u *Unit) Set(s string) error {
	parsed, err := ParseUnit(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Type implements pflag.Value.
func (u *Unit) Type() string {
	return "unit"
}

// UnmarshalText lets units be decoded from config files.
func (u *Unit) UnmarshalText(text []byte) error {
	return u.Set(string(text))
}

// MarshalText encodes the unit by its flag name.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}
