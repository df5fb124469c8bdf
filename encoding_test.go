package maxlen

import "testing"

func TestEncodingLengths(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		utf8   int
		cesu8  int
		mcesu8 int
	}{
		{"empty", "", 0, 0, 0},
		{"ascii", "hello", 5, 5, 5},
		{"two byte", "é", 2, 2, 2},
		{"bmp boundary", "￿", 3, 3, 3},
		{"astral", "\U00010000", 4, 6, 6},
		{"astral mixed", "a\U0001F600b", 6, 8, 8},
		{"nul", "a\x00b", 3, 3, 4},
		{"nul and astral", "\x00\U00010000", 5, 7, 8},
		{"double nul", "\x00\x00", 2, 2, 4},
	}
	for _, tc := range cases {
		if got := (UTF8{}).Length(tc.in); got != tc.utf8 {
			t.Fatalf("%s: UTF8 length = %d, want %d", tc.name, got, tc.utf8)
		}
		if got := (CESU8{}).Length(tc.in); got != tc.cesu8 {
			t.Fatalf("%s: CESU8 length = %d, want %d", tc.name, got, tc.cesu8)
		}
		if got := (ModifiedCESU8{}).Length(tc.in); got != tc.mcesu8 {
			t.Fatalf("%s: ModifiedCESU8 length = %d, want %d", tc.name, got, tc.mcesu8)
		}
	}
}

func TestEncodedLengthHelper(t *testing.T) {
	if got := EncodedLength[CESU8]("\U00010000"); got != 6 {
		t.Fatalf("EncodedLength[CESU8] = %d, want 6", got)
	}
	if got := EncodedLength[UTF8]("hello"); got != 5 {
		t.Fatalf("EncodedLength[UTF8] = %d, want 5", got)
	}
}

func TestEncodingName(t *testing.T) {
	if got := EncodingName[UTF8](); got != "utf8" {
		t.Fatalf("got %q", got)
	}
	if got := EncodingName[CESU8](); got != "cesu8" {
		t.Fatalf("got %q", got)
	}
	if got := EncodingName[ModifiedCESU8](); got != "mcesu8" {
		t.Fatalf("got %q", got)
	}
}
