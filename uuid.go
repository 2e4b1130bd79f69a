package crossuuid

import "fmt"

const (
	// Size is the number of bytes in a UUID.
	Size = 16
	// StringLen is the length of the canonical text form.
	StringLen = 36
)

// UUID represents an opaque 16 byte identifier. Version and variant bits are not interpreted.
type UUID [Size]byte

// Nil is the cleared UUID.
var Nil UUID

// Clear zeroes all bytes
func (u *UUID) Clear() {
	if u == nil {
		return
	}
	*u = Nil
}

// IsZero returns true for the cleared UUID. A failed generation in zero fallback mode
// and a parsed "00000000-0000-0000-0000-000000000000" are reported as zero too.
func (u UUID) IsZero() bool {
	return u == Nil
}

// Equal returns true if both UUIDs hold the same bytes
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// Equal returns true if a and b hold the same bytes
func Equal(a, b UUID) bool {
	return a == b
}

// Bytes returns a copy of the underlying bytes
func (u UUID) Bytes() []byte {
	result := make([]byte, Size)
	copy(result, u[:])
	return result
}

// FromBytes creates a UUID from exactly Size bytes
func FromBytes(data []byte) (UUID, error) {
	var u UUID
	if len(data) != Size {
		return u, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidInput, Size, len(data))
	}
	copy(u[:], data)
	return u, nil
}
