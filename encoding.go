package maxlen

// Encoding computes the logical length of a string under a named
// serialization scheme. The bound of a [BStr] or [BString] applies to
// this length, not to the in-memory byte count.
//
// An encoding is only sound for bounded containers if removing a
// character or taking a subslice never makes the encoded representation
// longer, and converting an ASCII character between cases never changes
// it. Those two properties are what let sub-views and ASCII case
// conversion skip re-validation.
type Encoding interface {
	Length(s string) int
}

// UTF8 measures the native byte length. It is the default encoding.
type UTF8 struct{}

func (UTF8) Length(s string) int { return len(s) }

func (UTF8) String() string { return "utf8" }

// CESU8 measures the CESU-8 serialized length. Code points above U+FFFF
// occupy four bytes in UTF-8 but six in CESU-8 (two three-byte surrogate
// halves), so each contributes two extra bytes. U+FFFF itself does not.
type CESU8 struct{}

func (CESU8) Length(s string) int {
	extra := 0
	for _, r := range s {
		if r > 0xFFFF {
			extra += 2
		}
	}
	return len(s) + extra
}

func (CESU8) String() string { return "cesu8" }

// ModifiedCESU8 measures the Modified CESU-8 serialized length: CESU-8,
// plus one extra byte per NUL, which is re-encoded as the two-byte
// sequence C0 80.
type ModifiedCESU8 struct{}

func (ModifiedCESU8) Length(s string) int {
	extra := 0
	for _, r := range s {
		if r == 0 {
			extra++
		}
		if r > 0xFFFF {
			extra += 2
		}
	}
	return len(s) + extra
}

func (ModifiedCESU8) String() string { return "mcesu8" }

// EncodedLength measures s under the encoding E.
func EncodedLength[E Encoding](s string) int {
	var e E
	return e.Length(s)
}

// EncodingName returns the canonical name of a provided encoding:
// "utf8", "cesu8", or "mcesu8". It returns "" for encodings defined
// outside this package.
func EncodingName[E Encoding]() string {
	var e E
	switch any(e).(type) {
	case UTF8:
		return "utf8"
	case CESU8:
		return "cesu8"
	case ModifiedCESU8:
		return "mcesu8"
	default:
		return ""
	}
}
