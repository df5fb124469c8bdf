// Package frame implements the BFRM v1 frame, a fixed-capacity wire
// format for bounded payloads.
//
// A frame carries a single element or text payload together with the
// bound it was validated against, so the declared ceiling survives
// transport. The layout is:
//   - A 32-byte fixed header with magic bytes, version, flags, the
//     declared bound, and the stored payload length
//   - The payload, optionally compressed with ZIP, Zstandard, LZ4, or
//     Brotli
//
// Compressed payloads start with an 8-byte uncompressed length so the
// reader can allocate exactly and refuse decompression bombs. All
// integers are little-endian.
//
// Decoding enforces configurable [Limits], verifies the payload against
// the transported bound (and, for text, the transported encoding), and
// only then re-wraps the bytes through the maxlen unchecked
// constructors: the framing layer has already discharged the check, so
// no second length computation is needed.
package frame
