package mesh

import (
	"fmt"
	"math"

	"github.com/arloliu/moebius/compress"
	"github.com/arloliu/moebius/endian"
	"github.com/arloliu/moebius/errs"
	"github.com/arloliu/moebius/format"
	"github.com/arloliu/moebius/internal/hash"
	"github.com/arloliu/moebius/internal/options"
	"github.com/arloliu/moebius/surface"
)

// Snapshot is an encoded strip, ready to persist or transmit.
type Snapshot struct {
	data []byte
}

// Bytes returns the snapshot's encoded bytes (header plus payload).
func (s Snapshot) Bytes() []byte {
	return s.data
}

// Size returns the total encoded size in bytes.
func (s Snapshot) Size() int {
	return len(s.data)
}

// Encoder serializes sampled strips into snapshots.
//
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	compression format.CompressionType
	bigEndian   bool
}

// EncoderOption is a functional option configuring an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the payload compression codec.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !comp.Valid() {
			return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompression, uint8(comp))
		}
		e.compression = comp

		return nil
	})
}

// WithLittleEndian stores payloads little-endian (the default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = false
	})
}

// WithBigEndian stores payloads big-endian, for interoperability with
// big-endian consumers.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = true
	})
}

// NewEncoder creates a snapshot encoder. Defaults: little-endian payloads,
// no compression.
//
// Returns:
//   - *Encoder: The configured encoder
//   - error: An error if an option is invalid
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	encoder := &Encoder{compression: format.CompressionNone}
	if err := options.Apply(encoder, opts...); err != nil {
		return nil, err
	}

	return encoder, nil
}

// Encode serializes the strip into a snapshot: header, then the three
// coordinate grids as (optionally compressed) float64 payload bytes. The
// checksum recorded in the header covers the raw payload, so corruption is
// detected after decompression.
//
// Returns:
//   - Snapshot: The encoded snapshot
//   - error: An error when the resolution exceeds MaxResolution or the codec
//     fails
func (e *Encoder) Encode(strip *surface.Strip) (Snapshot, error) {
	params := strip.Params()
	if params.Resolution > MaxResolution {
		return Snapshot{}, fmt.Errorf("%w: resolution %d exceeds snapshot maximum %d",
			errs.ErrInvalidParameter, params.Resolution, MaxResolution)
	}

	engine := endian.GetLittleEndianEngine()
	if e.bigEndian {
		engine = endian.GetBigEndianEngine()
	}

	raw := rawPayload(strip, engine)

	codec, err := compress.GetCodec(e.compression)
	if err != nil {
		return Snapshot{}, err
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return Snapshot{}, fmt.Errorf("compress snapshot payload: %w", err)
	}

	header := NewHeader(params.Radius, params.Width, params.Resolution, e.compression, e.bigEndian)
	header.Checksum = hash.Checksum(raw)
	header.PayloadSize = uint32(len(payload))

	data := make([]byte, 0, HeaderSize+len(payload))
	data = append(data, header.Bytes()...)
	data = append(data, payload...)

	return Snapshot{data: data}, nil
}

// Fingerprint returns the xxHash64 identity of a sampled strip: the checksum
// of its raw little-endian coordinate payload. Strips sampled from the same
// parameters always share a fingerprint.
func Fingerprint(strip *surface.Strip) uint64 {
	return hash.Checksum(rawPayload(strip, endian.GetLittleEndianEngine()))
}

// rawPayload concatenates the x, y and z grids as float64 bits in the given
// byte order.
func rawPayload(strip *surface.Strip, engine endian.EndianEngine) []byte {
	n := strip.Params().Resolution
	raw := make([]byte, 0, 3*n*n*8)
	for _, g := range [...]surface.Grid{strip.X(), strip.Y(), strip.Z()} {
		for _, v := range g.Values() {
			raw = engine.AppendUint64(raw, math.Float64bits(v))
		}
	}

	return raw
}
