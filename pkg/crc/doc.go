// Package crc implements a configurable, table-driven CRC-32 engine.
//
// The engine accepts any 32-bit polynomial in either bit order, consumes
// data incrementally from byte slices or an io.Reader, and can merge the
// checksums of two adjacent blocks without rereading them (see Combine).
// It satisfies hash.Hash32.
//
// CRCs detect accidental corruption only; they offer no protection against
// deliberate tampering.
package crc
