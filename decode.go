package crossuuid

import "fmt"

// Parse decodes text into a UUID using the lenient grammar:
//   - text must be at least StringLen characters long, anything past the decoded digits is ignored
//   - a hyphen in front of byte 4, 6, 8 or 10 is skipped when present, it is not required
//   - a character that is not a hex digit decodes as 0
//
// Use ParseStrict to reject anything but the canonical form.
func Parse(text string) (UUID, error) {
	var u UUID
	if err := decode(&u, text); err != nil {
		return Nil, err
	}
	return u, nil
}

// ParseBytes is like Parse but takes a byte slice
func ParseBytes(text []byte) (UUID, error) {
	var u UUID
	if err := decode(&u, text); err != nil {
		return Nil, err
	}
	return u, nil
}

// MustParse is like Parse but panics on error
func MustParse(text string) UUID {
	u, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return u
}

// DecodeInto decodes text into u with the Parse grammar. u is left untouched on error.
func DecodeInto(u *UUID, text string) error {
	if u == nil {
		return fmt.Errorf("%w: nil UUID", ErrInvalidInput)
	}
	return decode(u, text)
}

// UnmarshalText implements encoding.TextUnmarshaler with the Parse grammar
func (u *UUID) UnmarshalText(text []byte) error {
	if u == nil {
		return fmt.Errorf("%w: nil UUID", ErrInvalidInput)
	}
	return decode(u, text)
}

func decode[T string | []byte](u *UUID, text T) error {
	if len(text) < StringLen {
		return fmt.Errorf("%w: text length %d is shorter than %d", ErrInvalidInput, len(text), StringLen)
	}
	offset := 0
	for i := 0; i < Size; i++ {
		switch i {
		case 4, 6, 8, 10:
			if text[2*i+offset] == '-' {
				offset++
			}
		}
		pos := 2*i + offset
		u[i] = hexValue(text[pos])<<4 | hexValue(text[pos+1])
	}
	return nil
}

func hexValue(ch byte) byte {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10
	}
	return 0
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
