package crossuuid

import "fmt"

const hexDigits = "0123456789abcdef"

// Encode writes the canonical text form into dst followed by a NUL byte, so dst must be
// longer than StringLen. It returns the number of text bytes written, excluding the NUL.
// Nothing is written when dst is too small.
func (u UUID) Encode(dst []byte) (int, error) {
	if len(dst) <= StringLen {
		return 0, fmt.Errorf("%w: need more than %d bytes, got %d", ErrBufferTooSmall, StringLen, len(dst))
	}
	encode(dst, &u)
	dst[StringLen] = 0
	return StringLen, nil
}

// EncodeTo encodes u into dst, see UUID.Encode
func EncodeTo(u *UUID, dst []byte) (int, error) {
	if u == nil {
		return 0, fmt.Errorf("%w: nil UUID", ErrInvalidInput)
	}
	return u.Encode(dst)
}

// String returns the canonical text form, for example 00000000-0000-0000-0000-000000000000
func (u UUID) String() string {
	var buf [StringLen]byte
	encode(buf[:], &u)
	return string(buf[:])
}

// AppendText appends the canonical text form to b
func (u UUID) AppendText(b []byte) ([]byte, error) {
	var buf [StringLen]byte
	encode(buf[:], &u)
	return append(b, buf[:]...), nil
}

// MarshalText implements encoding.TextMarshaler
func (u UUID) MarshalText() ([]byte, error) {
	return u.AppendText(make([]byte, 0, StringLen))
}

// encode expects len(dst) >= StringLen
func encode(dst []byte, u *UUID) {
	for s, d := 0, 0; s < Size; s++ {
		switch s {
		case 4, 6, 8, 10:
			dst[d] = '-'
			d++
		}
		dst[d], dst[d+1] = hexDigits[u[s]>>4], hexDigits[u[s]&0x0f]
		d += 2
	}
}
