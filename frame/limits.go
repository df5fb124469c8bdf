package frame

// Limits bound what a decoder is willing to allocate. A zero field
// means "use the default"; decoding always runs with every field set.
type Limits struct {
	MaxBound         uint64 // declared bound carried in the header
	MaxStoredPayload uint64 // payload length as stored in the frame
	MaxUncompressed  uint64 // payload bytes after decompression
}

func defaultLimits() Limits {
	return Limits{
		MaxBound:         1 << 32,   // 4 GiB
		MaxStoredPayload: 1 << 30,   // 1 GiB stored payload cap
		MaxUncompressed:  256 << 20, // 256 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxBound == 0 {
		l.MaxBound = d.MaxBound
	}
	if l.MaxStoredPayload == 0 {
		l.MaxStoredPayload = d.MaxStoredPayload
	}
	if l.MaxUncompressed == 0 {
		l.MaxUncompressed = d.MaxUncompressed
	}
	return l
}
