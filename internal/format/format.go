package format

import (
	"path/filepath"
	"strings"
)

// Encoding identifies how raw samples are stored.
type Encoding int

const (
	SignedInteger Encoding = iota
	UnsignedInteger
	Float
)

// String returns the sox spelling of the encoding.
func (e Encoding) String() string {
	switch e {
	case SignedInteger:
		return "signed-integer"
	case UnsignedInteger:
		return "unsigned-integer"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Spec describes how to decode one capture file type.
type Spec struct {
	Extension      string
	BitDepth       int
	Channels       int
	Encoding       Encoding
	DynamicRangeDB int
}

// GfilePrefix is the base name prefix required for .data captures.
const GfilePrefix = "gfile"

const dataExtension = ".data"

var specs = []Spec{
	{Extension: ".cfile", BitDepth: 32, Channels: 2, Encoding: SignedInteger, DynamicRangeDB: 120},
	{Extension: dataExtension, BitDepth: 8, Channels: 2, Encoding: UnsignedInteger, DynamicRangeDB: 50},
	{Extension: ".cu8", BitDepth: 8, Channels: 2, Encoding: UnsignedInteger, DynamicRangeDB: 50},
	{Extension: ".cs8", BitDepth: 8, Channels: 2, Encoding: SignedInteger, DynamicRangeDB: 50},
	{Extension: ".cs16", BitDepth: 16, Channels: 2, Encoding: SignedInteger, DynamicRangeDB: 100},
	{Extension: ".s16", BitDepth: 16, Channels: 1, Encoding: SignedInteger, DynamicRangeDB: 100},
	{Extension: ".cs32", BitDepth: 32, Channels: 2, Encoding: SignedInteger, DynamicRangeDB: 120},
	{Extension: ".s32", BitDepth: 32, Channels: 1, Encoding: SignedInteger, DynamicRangeDB: 120},
	{Extension: ".cf32", BitDepth: 32, Channels: 2, Encoding: Float, DynamicRangeDB: 120},
	{Extension: ".f32", BitDepth: 32, Channels: 1, Encoding: Float, DynamicRangeDB: 120},
}

var byExtension = func() map[string]Spec {
	m := make(map[string]Spec, len(specs))
	for _, spec := range specs {
		m[spec.Extension] = spec
	}
	return m
}()

// Lookup returns the spec registered for ext. The match is exact, so ext
// must include the leading dot and be lowercase.
func Lookup(ext string) (Spec, bool) {
	spec, ok := byExtension[ext]
	return spec, ok
}

// Resolve returns the decode spec for the file at path, or false when the
// file should be skipped. A .data file is only eligible when its base name
// starts with GfilePrefix.
func Resolve(path string) (Spec, bool) {
	base := filepath.Base(path)
	ext := extension(base)
	spec, ok := Lookup(ext)
	if !ok {
		return Spec{}, false
	}
	if ext == dataExtension && !strings.HasPrefix(base, GfilePrefix) {
		return Spec{}, false
	}
	return spec, true
}

// extension returns the suffix from the last dot of base. Leading dots
// belong to the name, so ".cu8" and "..cu8" have no extension.
func extension(base string) string {
	name := strings.TrimLeft(base, ".")
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i:]
}

// All returns the supported specs in table order.
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}
