// Package mesh implements a compact binary snapshot format for sampled
// Möbius strips, so an expensive high-resolution sampling can be cached on
// disk or shipped between processes and restored bit-identically.
//
// # Snapshot Layout
//
// A snapshot is a fixed 48-byte header followed by one payload section:
//
//	offset  size  field
//	0       2     flag word: magic number (bits 4-15) + endianness (bit 0),
//	              always little-endian
//	2       1     compression type
//	3       1     reserved
//	4       4     resolution n
//	8       8     centerline radius (float64 bits)
//	16      8     strip width (float64 bits)
//	24      8     xxHash64 checksum of the raw payload
//	32      4     payload byte offset (= 48)
//	36      4     compressed payload size in bytes
//	40      8     reserved
//
// The raw payload is the x, y and z coordinate grids concatenated in
// row-major order, each value stored as float64 bits in the header's byte
// order, optionally compressed (None, Zstd, S2 or LZ4).
//
// # Basic Usage
//
//	encoder, _ := mesh.NewEncoder(mesh.WithCompression(format.CompressionZstd))
//	snapshot, err := encoder.Encode(strip)
//	if err != nil {
//	    return err
//	}
//	// persist snapshot.Bytes(), then later:
//	restored, err := mesh.Decode(snapshot.Bytes())
//
// Decoding validates the header size, magic number, compression type and
// payload checksum before reconstructing the strip; corruption surfaces as a
// sentinel error from the errs package.
package mesh
