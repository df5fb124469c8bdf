package frame

import (
	"fmt"
	"io"

	maxlen "github.com/logicossoftware/go-maxlen"
)

// EncodeBytes writes v to w as a BFRM v1 element frame. The view's
// bound travels in the header so the receiving side can reconstruct a
// container with the same ceiling.
//
// By default the payload is compressed with Zstandard; use
// WithCompression to change that and WithWriteLimits to tighten the
// size caps the writer refuses to exceed.
func EncodeBytes(w io.Writer, v maxlen.BSlice[byte], opts ...WriteOption) error {
	return encodeFrame(w, v.Raw(), v.Max(), 0, opts)
}

// EncodeText writes v to w as a BFRM v1 text frame. The header carries
// the view's bound and the wire code of its encoding E.
func EncodeText[E maxlen.Encoding](w io.Writer, v maxlen.BStr[E], opts ...WriteOption) error {
	code, err := encodingCode[E]()
	if err != nil {
		return err
	}
	kindFlags := flagText | code<<flagEncodingShift
	return encodeFrame(w, []byte(v.String()), v.Max(), kindFlags, opts)
}

func encodeFrame(w io.Writer, raw []byte, bound int, kindFlags uint16, opts []WriteOption) error {
	cfg := writeConfig{
		limits:      defaultLimits(),
		compression: CompZSTD,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	if bound < 0 {
		return fmt.Errorf("%w: negative bound %d", ErrInvalidHeader, bound)
	}
	if uint64(bound) > cfg.limits.MaxBound {
		return fmt.Errorf("%w: bound %d", ErrLimitExceeded, bound)
	}

	compFlags, payload, err := compressPayload(cfg.compression, raw)
	if err != nil {
		return err
	}
	if uint64(len(payload)) > cfg.limits.MaxStoredPayload {
		return fmt.Errorf("%w: stored payload %d", ErrLimitExceeded, len(payload))
	}

	h := fixedHeaderV1{
		Magic:      Magic,
		Version:    VersionV1,
		Flags:      compFlags | kindFlags,
		Bound:      uint64(bound),
		PayloadLen: uint64(len(payload)),
		Reserved:   0,
	}
	if err := writeFixedHeader(w, h); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}
