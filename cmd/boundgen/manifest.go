package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"

	"github.com/BurntSushi/toml"

	maxlen "github.com/logicossoftware/go-maxlen"
)

// Manifest describes a set of bounded literal declarations. Each entry
// is checked against its bound at generation time; the emitted source
// uses the unchecked constructors because the check has already been
// discharged here.
type Manifest struct {
	Package string       `toml:"package"`
	Output  string       `toml:"output"`
	Strings []StringDecl `toml:"str"`
	Bytes   []BytesDecl  `toml:"bytes"`
}

// StringDecl declares a bounded string literal. Encoding selects the
// length measurement: "utf8" (default), "cesu8", or "mcesu8".
type StringDecl struct {
	Name     string `toml:"name"`
	Max      int    `toml:"max"`
	Encoding string `toml:"encoding"`
	Value    string `toml:"value"`
}

// BytesDecl declares a bounded byte-slice literal. Its logical length
// is the byte count of Value.
type BytesDecl struct {
	Name  string `toml:"name"`
	Max   int    `toml:"max"`
	Value string `toml:"value"`
}

const defaultOutput = "bounds_gen.go"

func loadManifest(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, err
	}
	if m.Output == "" {
		m.Output = defaultOutput
	}
	return m, nil
}

// validate checks the manifest shape and every declaration's length
// against its bound. A length failure carries the declaration name and
// wraps maxlen.LengthExceeded.
func (m Manifest) validate() error {
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("package %q is not a valid Go package name", m.Package)
	}
	if len(m.Strings) == 0 && len(m.Bytes) == 0 {
		return fmt.Errorf("manifest declares nothing")
	}
	seen := make(map[string]struct{}, len(m.Strings)+len(m.Bytes))
	checkName := func(name string) error {
		if !token.IsIdentifier(name) {
			return fmt.Errorf("%q is not a valid Go identifier", name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("duplicate declaration %q", name)
		}
		seen[name] = struct{}{}
		return nil
	}
	for _, d := range m.Strings {
		if err := checkName(d.Name); err != nil {
			return err
		}
		if d.Max < 0 {
			return fmt.Errorf("%s: negative bound %d", d.Name, d.Max)
		}
		n, err := encodedLength(d.Encoding, d.Value)
		if err != nil {
			return fmt.Errorf("%s: %v", d.Name, err)
		}
		if n > d.Max {
			return fmt.Errorf("%s: %w", d.Name, &maxlen.LengthExceeded{Length: n, Maximum: d.Max})
		}
	}
	for _, d := range m.Bytes {
		if err := checkName(d.Name); err != nil {
			return err
		}
		if d.Max < 0 {
			return fmt.Errorf("%s: negative bound %d", d.Name, d.Max)
		}
		if len(d.Value) > d.Max {
			return fmt.Errorf("%s: %w", d.Name, &maxlen.LengthExceeded{Length: len(d.Value), Maximum: d.Max})
		}
	}
	return nil
}

// encodedLength measures value under the named encoding.
func encodedLength(encoding, value string) (int, error) {
	switch encoding {
	case "", "utf8":
		return maxlen.UTF8{}.Length(value), nil
	case "cesu8":
		return maxlen.CESU8{}.Length(value), nil
	case "mcesu8":
		return maxlen.ModifiedCESU8{}.Length(value), nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", encoding)
	}
}

// encodingType maps a manifest encoding name to the maxlen type used in
// the emitted source.
func encodingType(encoding string) string {
	switch encoding {
	case "cesu8":
		return "maxlen.CESU8"
	case "mcesu8":
		return "maxlen.ModifiedCESU8"
	default:
		return "maxlen.UTF8"
	}
}

// generate renders the manifest as formatted Go source. The manifest
// must already be validated.
func generate(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by boundgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", m.Package)
	fmt.Fprintf(&buf, "import (\n\tmaxlen \"github.com/logicossoftware/go-maxlen\"\n)\n\n")
	for _, d := range m.Strings {
		enc := d.Encoding
		if enc == "" {
			enc = "utf8"
		}
		fmt.Fprintf(&buf, "// %s holds %q under a bound of %d (%s).\n", d.Name, d.Value, d.Max, enc)
		fmt.Fprintf(&buf, "var %s = maxlen.StrUnchecked[%s](%q, %d)\n\n", d.Name, encodingType(d.Encoding), d.Value, d.Max)
	}
	for _, d := range m.Bytes {
		fmt.Fprintf(&buf, "// %s holds %d bytes under a bound of %d.\n", d.Name, len(d.Value), d.Max)
		fmt.Fprintf(&buf, "var %s = maxlen.SliceUnchecked([]byte(%q), %d)\n\n", d.Name, d.Value, d.Max)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %v", err)
	}
	return src, nil
}
