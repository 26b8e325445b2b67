// Package errs defines the sentinel errors shared across the moebius packages.
//
// All exported errors can be matched with errors.Is, both directly and when
// wrapped with additional context via fmt.Errorf("...: %w", err).
package errs

import "errors"

// Parameter validation errors, returned before any sampling takes place.
var (
	// ErrInvalidParameter indicates a shape parameter outside its valid domain:
	// non-positive radius, non-positive width, or a resolution below 2.
	ErrInvalidParameter = errors.New("invalid shape parameter")
)

// Snapshot format errors, returned by the mesh encoder and decoder.
var (
	// ErrInvalidHeaderSize indicates the snapshot data is shorter than the
	// fixed-size header.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")

	// ErrInvalidMagicNumber indicates the header flag word does not carry the
	// snapshot magic number.
	ErrInvalidMagicNumber = errors.New("invalid snapshot magic number")

	// ErrInvalidCompression indicates an unknown compression type in the
	// header or encoder configuration.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrChecksumMismatch indicates the payload checksum stored in the header
	// does not match the decoded payload.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrPayloadTruncated indicates the payload section is shorter than the
	// size recorded in the header.
	ErrPayloadTruncated = errors.New("snapshot payload truncated")

	// ErrResolutionMismatch indicates coordinate grids whose dimensions do not
	// agree with the declared resolution.
	ErrResolutionMismatch = errors.New("grid resolution mismatch")
)
