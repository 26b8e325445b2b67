package mesh

import (
	"fmt"
	"math"

	"github.com/arloliu/moebius/endian"
	"github.com/arloliu/moebius/errs"
	"github.com/arloliu/moebius/format"
)

const (
	// HeaderSize is the fixed snapshot header size in bytes.
	HeaderSize = 48

	// MagicMask selects the magic-number bits (4-15) of the flag word.
	MagicMask = 0xFFF0

	// MagicV1 is the version 1 magic number for the strip snapshot format.
	MagicV1 = 0xEC10

	// flagBigEndian marks payloads stored in big-endian byte order (bit 0).
	flagBigEndian = 0x0001

	// MaxResolution is the largest grid resolution the format can record: the
	// raw payload size 3·n²·8 must fit the 32-bit payload size field.
	MaxResolution = 13377
)

// Header is the fixed-size header at the start of a snapshot.
type Header struct {
	// Resolution is the grid dimension n; the payload holds 3·n² values.
	Resolution uint32
	// Radius is the centerline radius the grids were sampled from.
	Radius float64
	// Width is the full strip width the grids were sampled from.
	Width float64
	// Checksum is the xxHash64 of the raw (uncompressed) payload.
	Checksum uint64
	// PayloadOffset is the byte offset of the payload section.
	PayloadOffset uint32
	// PayloadSize is the stored (compressed) payload size in bytes.
	PayloadSize uint32

	// Options is the packed flag word: magic number plus endianness bit.
	Options uint16
	// Compression identifies the payload compression codec.
	Compression format.CompressionType
}

// NewHeader creates a snapshot header for the given shape values. The
// checksum and payload size fields are filled in by the encoder.
func NewHeader(radius, width float64, resolution int, comp format.CompressionType, bigEndian bool) *Header {
	opts := uint16(MagicV1)
	if bigEndian {
		opts |= flagBigEndian
	}

	return &Header{
		Resolution:    uint32(resolution),
		Radius:        radius,
		Width:         width,
		PayloadOffset: HeaderSize,
		Options:       opts,
		Compression:   comp,
	}
}

// IsBigEndian reports whether the payload is stored big-endian.
func (h *Header) IsBigEndian() bool {
	return h.Options&flagBigEndian != 0
}

// Engine returns the byte-order engine matching the header's endianness bit.
func (h *Header) Engine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the magic number and compression type.
func (h *Header) Validate() error {
	if h.Options&MagicMask != MagicV1 {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, h.Options&MagicMask)
	}
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompression, uint8(h.Compression))
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	// The flag word is always little-endian so the decoder can read the
	// endianness bit before choosing an engine.
	b[0] = byte(h.Options)
	b[1] = byte(h.Options >> 8)
	b[2] = byte(h.Compression)

	engine := h.Engine()
	engine.PutUint32(b[4:8], h.Resolution)
	engine.PutUint64(b[8:16], math.Float64bits(h.Radius))
	engine.PutUint64(b[16:24], math.Float64bits(h.Width))
	engine.PutUint64(b[24:32], h.Checksum)
	engine.PutUint32(b[32:36], h.PayloadOffset)
	engine.PutUint32(b[36:40], h.PayloadSize)

	return b
}

// ParseHeader parses and validates a snapshot header.
//
// Parameters:
//   - data: Snapshot bytes, at least HeaderSize long
//
// Returns:
//   - Header: Parsed header
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber or
//     errs.ErrInvalidCompression
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{
		Options:     uint16(data[0]) | uint16(data[1])<<8,
		Compression: format.CompressionType(data[2]),
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}

	engine := h.Engine()
	h.Resolution = engine.Uint32(data[4:8])
	h.Radius = math.Float64frombits(engine.Uint64(data[8:16]))
	h.Width = math.Float64frombits(engine.Uint64(data[16:24]))
	h.Checksum = engine.Uint64(data[24:32])
	h.PayloadOffset = engine.Uint32(data[32:36])
	h.PayloadSize = engine.Uint32(data[36:40])

	return h, nil
}
