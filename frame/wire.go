package frame

import (
	"encoding/binary"
	"fmt"
	"io"

	maxlen "github.com/logicossoftware/go-maxlen"
)

const (
	VersionV1 uint16 = 1

	fixedHeaderSizeV1 = 32
)

// Magic is the 8-byte BFRM frame signature.
var Magic = [8]byte{'B', 'F', 'R', 'M', '\r', '\n', 0x1A, 0x00}

type Compression uint16

const (
	CompNone Compression = 0x0
	CompZIP  Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
)

const (
	flagCompressionMask    uint16 = 0x000F
	flagHasUncompressedLen uint16 = 0x0010
	flagText               uint16 = 0x0020
	flagEncodingMask       uint16 = 0x00C0
	flagEncodingShift             = 6
)

// Wire codes for the closed encoding set.
const (
	encUTF8   uint16 = 0
	encCESU8  uint16 = 1
	encMCESU8 uint16 = 2
)

type fixedHeaderV1 struct {
	Magic      [8]byte
	Version    uint16
	Flags      uint16
	Bound      uint64
	PayloadLen uint64
	Reserved   uint32
}

func readFixedHeader(r io.Reader) (fixedHeaderV1, error) {
	var buf [fixedHeaderSizeV1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return fixedHeaderV1{}, err
	}
	var h fixedHeaderV1
	copy(h.Magic[:], buf[0:8])
	h.Version = binary.LittleEndian.Uint16(buf[8:10])
	h.Flags = binary.LittleEndian.Uint16(buf[10:12])
	h.Bound = binary.LittleEndian.Uint64(buf[12:20])
	h.PayloadLen = binary.LittleEndian.Uint64(buf[20:28])
	h.Reserved = binary.LittleEndian.Uint32(buf[28:32])
	return h, nil
}

func writeFixedHeader(w io.Writer, h fixedHeaderV1) error {
	var buf [fixedHeaderSizeV1]byte
	copy(buf[0:8], h.Magic[:])
	binary.LittleEndian.PutUint16(buf[8:10], h.Version)
	binary.LittleEndian.PutUint16(buf[10:12], h.Flags)
	binary.LittleEndian.PutUint64(buf[12:20], h.Bound)
	binary.LittleEndian.PutUint64(buf[20:28], h.PayloadLen)
	binary.LittleEndian.PutUint32(buf[28:32], h.Reserved)
	_, err := w.Write(buf[:])
	return err
}

func (h fixedHeaderV1) compression() Compression {
	return Compression(h.Flags & flagCompressionMask)
}

func (h fixedHeaderV1) hasUncompressedLen() bool {
	return (h.Flags & flagHasUncompressedLen) != 0
}

func (h fixedHeaderV1) isText() bool {
	return (h.Flags & flagText) != 0
}

func (h fixedHeaderV1) encodingCode() uint16 {
	return (h.Flags & flagEncodingMask) >> flagEncodingShift
}

func validateFixedHeader(h fixedHeaderV1, limits Limits) error {
	if h.Magic != Magic {
		return ErrInvalidMagic
	}
	if h.Version != VersionV1 {
		return ErrUnsupportedVersion
	}
	if h.Reserved != 0 {
		return fmt.Errorf("%w: reserved must be 0", ErrInvalidHeader)
	}
	comp := h.compression()
	switch comp {
	case CompNone, CompZIP, CompZSTD, CompLZ4, CompBR:
	default:
		return fmt.Errorf("%w: unknown compression %d", ErrInvalidHeader, comp)
	}
	if comp == CompNone {
		if h.hasUncompressedLen() {
			return fmt.Errorf("%w: COMP_NONE must not set HAS_UNCOMPRESSED_LEN", ErrInvalidHeader)
		}
	} else {
		if !h.hasUncompressedLen() {
			return fmt.Errorf("%w: compressed payload must set HAS_UNCOMPRESSED_LEN", ErrInvalidHeader)
		}
	}
	if h.isText() {
		switch h.encodingCode() {
		case encUTF8, encCESU8, encMCESU8:
		default:
			return fmt.Errorf("%w: unknown encoding %d", ErrInvalidHeader, h.encodingCode())
		}
	} else if h.encodingCode() != 0 {
		return fmt.Errorf("%w: encoding bits set on element payload", ErrInvalidHeader)
	}
	if h.Bound > limits.MaxBound {
		return fmt.Errorf("%w: bound %d", ErrLimitExceeded, h.Bound)
	}
	if h.PayloadLen > limits.MaxStoredPayload {
		return fmt.Errorf("%w: stored payload %d", ErrLimitExceeded, h.PayloadLen)
	}
	return nil
}

// encodingCode maps a provided maxlen encoding to its wire code.
func encodingCode[E maxlen.Encoding]() (uint16, error) {
	switch maxlen.EncodingName[E]() {
	case "utf8":
		return encUTF8, nil
	case "cesu8":
		return encCESU8, nil
	case "mcesu8":
		return encMCESU8, nil
	default:
		return 0, fmt.Errorf("%w: encoding not in the wire set", ErrEncodingMismatch)
	}
}

func (c Compression) String() string {
	return compressionName(c)
}

func compressionName(c Compression) string {
	switch c {
	case CompNone:
		return "none"
	case CompZIP:
		return "zip"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "brotli"
	default:
		return "unknown"
	}
}
