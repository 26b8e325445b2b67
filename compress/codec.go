package compress

import (
	"fmt"

	"github.com/arloliu/moebius/format"
)

// Compressor compresses a snapshot payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a snapshot payload compressed by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	//
	// Returns an error if the data is corrupted or was produced by a
	// different algorithm. The returned slice is newly allocated and owned by
	// the caller; the input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: An error when the compression type is unknown
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
