package compress

// ZstdCompressor compresses table payloads with Zstandard.
//
// Zstd gives the best compression ratio of the supported codecs, making it
// the right choice when tables are persisted or shipped over the network.
// Dense pruning tables, whose entries are small depth values with long runs,
// typically shrink by an order of magnitude.
//
// Two implementations back this type: cgo builds use the valyala/gozstd
// bindings to libzstd, pure-Go builds fall back to klauspost/compress/zstd.
// Their wire formats are interchangeable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
