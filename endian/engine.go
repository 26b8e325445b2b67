// Package endian provides byte order utilities for encoding and decoding
// snapshot payloads.
//
// It combines the ByteOrder and AppendByteOrder interfaces from the standard
// encoding/binary package into a single EndianEngine interface, so header and
// payload writers can both read fixed offsets and append efficiently through
// one value.
//
// Snapshots default to little-endian (native on x86/x64/ARM); big-endian is
// supported for interoperability and recorded in the snapshot header.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian, so
// engines are immutable, stateless, and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the LSB (0x00) is stored first,
	// on a big-endian host the MSB (0x01) is.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
