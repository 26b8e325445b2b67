// Package compress provides the compression codecs applied to snapshot
// coordinate payloads.
//
// A snapshot payload is the raw float64 bytes of the three coordinate grids.
// Grid values change slowly along each row, which compresses well with every
// supported codec:
//
//   - None: pass-through, for hot paths and debugging
//   - LZ4: fastest compression, modest ratio
//   - S2: fast with a better ratio than LZ4 on smooth grids
//   - Zstd: best ratio, preferred for snapshots kept on disk
//
// All codecs are stateless values; internal buffers are pooled and the codecs
// are safe for concurrent use.
package compress
