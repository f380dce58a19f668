package compress

// NoOpCompressor passes payloads through unchanged.
//
// Useful for tables that only round-trip in memory, and as a baseline when
// benchmarking the real codecs.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a compressor that bypasses data entirely.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input afterwards if they keep the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input afterwards if they keep the result.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
