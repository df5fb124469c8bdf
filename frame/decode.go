package frame

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	maxlen "github.com/logicossoftware/go-maxlen"
)

// DecodeBytes reads a BFRM v1 element frame from r and returns its
// payload as an owned bounded buffer under the transported bound.
//
// DecodeBytes returns ErrInvalidMagic if the stream is not a frame,
// ErrUnsupportedVersion for versions other than 1, ErrKindMismatch if
// the frame holds text, ErrLimitExceeded when a size limit is hit, and
// ErrInvalidPayload when the payload contradicts the header.
func DecodeBytes(r io.Reader, opts ...ReadOption) (*maxlen.BVec[byte], error) {
	h, raw, err := decodeFrame(r, opts)
	if err != nil {
		return nil, err
	}
	if h.isText() {
		return nil, fmt.Errorf("%w: frame holds text", ErrKindMismatch)
	}
	// decodeFrame already validated the payload against the transported
	// bound; re-wrap without a second check.
	return maxlen.VecUnchecked(raw, int(h.Bound)), nil
}

// DecodeText reads a BFRM v1 text frame from r and returns its payload
// as an owned bounded text buffer under the transported bound. The
// frame's encoding code must match E; ErrEncodingMismatch is returned
// otherwise.
func DecodeText[E maxlen.Encoding](r io.Reader, opts ...ReadOption) (*maxlen.BString[E], error) {
	code, err := encodingCode[E]()
	if err != nil {
		return nil, err
	}
	h, raw, err := decodeFrame(r, opts)
	if err != nil {
		return nil, err
	}
	if !h.isText() {
		return nil, fmt.Errorf("%w: frame holds elements", ErrKindMismatch)
	}
	if h.encodingCode() != code {
		return nil, fmt.Errorf("%w: frame encoding %d, want %d", ErrEncodingMismatch, h.encodingCode(), code)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: text payload is not valid UTF-8", ErrInvalidPayload)
	}
	s := string(raw)
	if got := maxlen.EncodedLength[E](s); uint64(got) > h.Bound {
		return nil, fmt.Errorf("%w: encoded length %d exceeds transported bound %d", ErrInvalidPayload, got, h.Bound)
	}
	return maxlen.OwnStringUnchecked[E](s, int(h.Bound)), nil
}

// decodeFrame handles the parts common to both payload kinds: header
// validation, payload read, decompression, and the element-count check
// against the transported bound.
func decodeFrame(r io.Reader, opts []ReadOption) (fixedHeaderV1, []byte, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	h, err := readFixedHeader(r)
	if err != nil {
		return fixedHeaderV1{}, nil, err
	}
	if err := validateFixedHeader(h, cfg.limits); err != nil {
		return fixedHeaderV1{}, nil, err
	}
	if h.Bound > uint64(math.MaxInt) {
		return fixedHeaderV1{}, nil, fmt.Errorf("%w: bound %d", ErrLimitExceeded, h.Bound)
	}

	payload := make([]byte, h.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return fixedHeaderV1{}, nil, err
	}
	raw, err := decompressPayload(h.compression(), h.Flags, payload, cfg.limits.MaxUncompressed)
	if err != nil {
		return fixedHeaderV1{}, nil, err
	}
	if uint64(len(raw)) > h.Bound {
		return fixedHeaderV1{}, nil, fmt.Errorf("%w: payload length %d exceeds transported bound %d", ErrInvalidPayload, len(raw), h.Bound)
	}
	return h, raw, nil
}
