// Package format defines the shared type identifiers used by the snapshot
// format and its compression codecs.
package format

// CompressionType identifies the compression algorithm applied to a snapshot
// payload. The value is stored verbatim in the snapshot header.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Valid reports whether c is one of the defined compression types.
func (c CompressionType) Valid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a user-facing name (as accepted by the CLI) to its
// CompressionType. Unknown names map to the zero value, which is not Valid.
func ParseCompression(name string) CompressionType {
	switch name {
	case "none":
		return CompressionNone
	case "zstd":
		return CompressionZstd
	case "s2":
		return CompressionS2
	case "lz4":
		return CompressionLZ4
	default:
		return 0
	}
}
