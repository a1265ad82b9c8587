package engine

import (
	"crypto/sha256"
	"encoding/hex"
)

// PoolSize is the number of entropy bytes read once per process run.
const PoolSize = 256

// BytePool is a fixed ring of entropy bytes. Reads cycle back to the first
// byte after the last one has been consumed; the pool is never refreshed.
type BytePool struct {
	buffer [PoolSize]byte
	cursor int
}

// NewBytePool creates a pool over a copy of the given bytes
func NewBytePool(b [PoolSize]byte) *BytePool {
	return &BytePool{buffer: b}
}

// Next returns the next byte from the pool
func (p *BytePool) Next() byte {
	b := p.buffer[p.cursor]
	p.cursor = (p.cursor + 1) % PoolSize
	return b
}

// NextU16 composes two pool bytes, least significant first
func (p *BytePool) NextU16() uint16 {
	var v uint16
	for i := 0; i < 2; i++ {
		v |= uint16(p.Next()) << (i * 8)
	}
	return v
}

// NextU32 composes four pool bytes, least significant first
func (p *BytePool) NextU32() uint32 {
	var v uint32
	for i := 0; i < 4; i++ {
		v |= uint32(p.Next()) << (i * 8)
	}
	return v
}

// Cursor reports the index of the byte the next read will return.
func (p *BytePool) Cursor() int {
	return p.cursor
}

// Fingerprint returns a short SHA-256 digest of the pool contents. It is the
// only form of the entropy that may be logged.
func (p *BytePool) Fingerprint() string {
	sum := sha256.Sum256(p.buffer[:])
	return hex.EncodeToString(sum[:8])
}
