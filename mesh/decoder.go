package mesh

import (
	"fmt"
	"math"

	"github.com/arloliu/moebius/compress"
	"github.com/arloliu/moebius/errs"
	"github.com/arloliu/moebius/internal/hash"
	"github.com/arloliu/moebius/surface"
)

// Decode reconstructs a strip from snapshot bytes.
//
// The header is validated first (size, magic number, compression type), the
// payload is then decompressed and checked against the stored xxHash64
// checksum, and finally the coordinate grids are rebuilt. The restored strip
// is bit-identical to the encoded one.
//
// Returns:
//   - *surface.Strip: The restored strip
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber,
//     errs.ErrInvalidCompression, errs.ErrPayloadTruncated,
//     errs.ErrChecksumMismatch or errs.ErrResolutionMismatch
func Decode(data []byte) (*surface.Strip, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	start := int(header.PayloadOffset)
	end := start + int(header.PayloadSize)
	if start < HeaderSize || end > len(data) {
		return nil, fmt.Errorf("%w: payload [%d:%d] exceeds %d snapshot bytes",
			errs.ErrPayloadTruncated, start, end, len(data))
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(data[start:end])
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot payload: %w", err)
	}

	if sum := hash.Checksum(raw); sum != header.Checksum {
		return nil, fmt.Errorf("%w: header 0x%016X, payload 0x%016X",
			errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	n := int(header.Resolution)
	if len(raw) != 3*n*n*8 {
		return nil, fmt.Errorf("%w: %d payload bytes for resolution %d",
			errs.ErrResolutionMismatch, len(raw), n)
	}

	engine := header.Engine()
	grids := make([]surface.Grid, 3)
	for g := range grids {
		vals := make([]float64, n*n)
		base := g * n * n * 8
		for i := range vals {
			vals[i] = math.Float64frombits(engine.Uint64(raw[base+i*8:]))
		}

		grid, err := surface.GridFromValues(n, vals)
		if err != nil {
			return nil, err
		}
		grids[g] = grid
	}

	params := surface.Params{
		Radius:     header.Radius,
		Width:      header.Width,
		Resolution: n,
	}

	return surface.FromGrids(params, grids[0], grids[1], grids[2])
}
