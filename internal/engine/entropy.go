package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultEntropyPath is the system device the pool is filled from.
const DefaultEntropyPath = "/dev/urandom"

// ErrEntropyUnavailable is returned when the pool cannot be filled completely.
// There is no fallback source.
var ErrEntropyUnavailable = errors.New("entropy source unavailable")

// ReadEntropy fills a new pool with exactly PoolSize bytes from r
func ReadEntropy(r io.Reader) (*BytePool, error) {
	var buf [PoolSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return nil, fmt.Errorf("%w: read %d of %d bytes: %w", ErrEntropyUnavailable, n, PoolSize, err)
	}
	return NewBytePool(buf), nil
}

// LoadEntropy opens the entropy device at path and reads the pool from it
func LoadEntropy(path string) (*BytePool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	defer f.Close()

	return ReadEntropy(f)
}
