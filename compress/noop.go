package compress

// NoOpCompressor passes payload data through unchanged.
//
// Useful when snapshots stay in memory, for baseline benchmarks, and for
// debugging payload layout.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without copying. The returned slice
// shares the input's memory, so callers must not modify the input afterwards.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying. The returned
// slice shares the input's memory, so callers must not modify the input
// afterwards.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
