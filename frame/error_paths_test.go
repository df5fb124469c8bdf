package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	maxlen "github.com/logicossoftware/go-maxlen"
)

// validFrame returns an encoded uncompressed element frame for testing
// header corruption.
func validFrame(t *testing.T) []byte {
	t.Helper()
	v, err := maxlen.Slice([]byte("abc"), 8)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeBytes(&buf, v, WithCompression(CompNone)); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeHeaderCorruption(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func([]byte)
		want    error
	}{
		{"bad magic", func(f []byte) { f[0] = 'X' }, ErrInvalidMagic},
		{"bad version", func(f []byte) { binary.LittleEndian.PutUint16(f[8:10], 9) }, ErrUnsupportedVersion},
		{"unknown compression", func(f []byte) {
			binary.LittleEndian.PutUint16(f[10:12], 0x000F)
		}, ErrInvalidHeader},
		{"uncompressed with length flag", func(f []byte) {
			binary.LittleEndian.PutUint16(f[10:12], flagHasUncompressedLen)
		}, ErrInvalidHeader},
		{"encoding bits on element frame", func(f []byte) {
			binary.LittleEndian.PutUint16(f[10:12], 1<<flagEncodingShift)
		}, ErrInvalidHeader},
		{"unknown encoding on text frame", func(f []byte) {
			binary.LittleEndian.PutUint16(f[10:12], flagText|3<<flagEncodingShift)
		}, ErrInvalidHeader},
		{"nonzero reserved", func(f []byte) { f[28] = 1 }, ErrInvalidHeader},
		{"payload over transported bound", func(f []byte) {
			binary.LittleEndian.PutUint64(f[12:20], 1)
		}, ErrInvalidPayload},
	}
	for _, tc := range cases {
		f := validFrame(t)
		tc.corrupt(f)
		if _, err := DecodeBytes(bytes.NewReader(f)); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestDecodeTruncatedStream(t *testing.T) {
	f := validFrame(t)
	for _, n := range []int{0, 7, fixedHeaderSizeV1 - 1, fixedHeaderSizeV1 + 1} {
		if n >= len(f) {
			continue
		}
		if _, err := DecodeBytes(bytes.NewReader(f[:n])); err == nil {
			t.Fatalf("truncated at %d: expected error", n)
		}
	}
}

func TestDecodeTextInvalidUTF8(t *testing.T) {
	v, err := maxlen.Str[maxlen.UTF8]("ok", 8)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeText(&buf, v, WithCompression(CompNone)); err != nil {
		t.Fatal(err)
	}
	f := buf.Bytes()
	f[fixedHeaderSizeV1] = 0xFF
	if _, err := DecodeText[maxlen.UTF8](bytes.NewReader(f)); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestDecodeTextEncodedLengthOverBound(t *testing.T) {
	// An astral character measures 4 bytes but 6 under CESU8. Write a
	// frame whose transported bound admits the bytes but not the
	// encoded length.
	var buf bytes.Buffer
	payload := []byte("\U00010000")
	h := fixedHeaderV1{
		Magic:      Magic,
		Version:    VersionV1,
		Flags:      flagText | encCESU8<<flagEncodingShift,
		Bound:      4,
		PayloadLen: uint64(len(payload)),
	}
	if err := writeFixedHeader(&buf, h); err != nil {
		t.Fatal(err)
	}
	buf.Write(payload)
	if _, err := DecodeText[maxlen.CESU8](&buf); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestDecodePayloadPrefixTooShort(t *testing.T) {
	var buf bytes.Buffer
	h := fixedHeaderV1{
		Magic:      Magic,
		Version:    VersionV1,
		Flags:      uint16(CompZSTD) | flagHasUncompressedLen,
		Bound:      8,
		PayloadLen: 4,
	}
	if err := writeFixedHeader(&buf, h); err != nil {
		t.Fatal(err)
	}
	buf.Write([]byte{1, 2, 3, 4})
	if _, err := DecodeBytes(&buf); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	w.n -= len(p)
	return len(p), nil
}

func TestEncodeWriterFailures(t *testing.T) {
	v, err := maxlen.Slice([]byte("abcdef"), 8)
	if err != nil {
		t.Fatal(err)
	}
	// Header write fails, then payload write fails.
	for _, n := range []int{0, fixedHeaderSizeV1} {
		if err := EncodeBytes(&failingWriter{n: n}, v, WithCompression(CompNone)); err == nil {
			t.Fatalf("writer capacity %d: expected error", n)
		}
	}
}

func TestDecodeReadAllFailure(t *testing.T) {
	orig := readAll
	readAll = func(io.Reader) ([]byte, error) { return nil, io.ErrUnexpectedEOF }
	defer func() { readAll = orig }()

	v, err := maxlen.Slice([]byte("abcdef"), 64)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeBytes(&buf, v, WithCompression(CompBR)); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeBytes(&buf); err == nil {
		t.Fatal("expected error")
	}
}
