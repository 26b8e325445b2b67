package compress

// ZstdCompressor provides Zstandard compression for snapshot payloads.
//
// Zstd gives the best ratio of the supported codecs and is the right choice
// for snapshots written to disk or shipped over the network. Two backends
// share this type: the cgo build uses valyala/gozstd, the pure-Go build uses
// klauspost/compress/zstd (see the build tags on the sibling files).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
