package crossuuid

import (
	"fmt"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	hyphenCode = iota + 1
	hex8Code
	hex4Code
	hex12Code
)

var (
	hyphenToken = parsly.NewToken(hyphenCode, "-", matcher.NewByte('-'))
	hex8Token   = parsly.NewToken(hex8Code, "hex8", &hexGroupMatcher{size: 8})
	hex4Token   = parsly.NewToken(hex4Code, "hex4", &hexGroupMatcher{size: 4})
	hex12Token  = parsly.NewToken(hex12Code, "hex12", &hexGroupMatcher{size: 12})

	groupTokens = []*parsly.Token{hex8Token, hex4Token, hex4Token, hex4Token, hex12Token}
)

// hexGroupMatcher matches exactly size hex digits of either case
type hexGroupMatcher struct {
	size int
}

func (m *hexGroupMatcher) Match(cursor *parsly.Cursor) int {
	if cursor.Pos+m.size > cursor.InputSize {
		return 0
	}
	for i := cursor.Pos; i < cursor.Pos+m.size; i++ {
		if !isHexDigit(cursor.Input[i]) {
			return 0
		}
	}
	return m.size
}

// ParseStrict decodes the canonical text form only: exactly StringLen characters,
// hyphens at positions 8, 13, 18 and 23 and hex digits everywhere else.
// Upper case digits are accepted.
func ParseStrict(text string) (UUID, error) {
	var u UUID
	if len(text) != StringLen {
		return Nil, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidInput, StringLen, len(text))
	}
	cursor := parsly.NewCursor("", []byte(text), 0)
	index := 0
	for i, token := range groupTokens {
		if i > 0 {
			matched := cursor.MatchOne(hyphenToken)
			if matched.Code != hyphenToken.Code {
				return Nil, fmt.Errorf("%w: %v", ErrInvalidInput, cursor.NewError(hyphenToken))
			}
		}
		matched := cursor.MatchOne(token)
		if matched.Code != token.Code {
			return Nil, fmt.Errorf("%w: %v", ErrInvalidInput, cursor.NewError(token))
		}
		group := matched.Text(cursor)
		for j := 0; j < len(group); j += 2 {
			u[index] = hexValue(group[j])<<4 | hexValue(group[j+1])
			index++
		}
	}
	return u, nil
}
