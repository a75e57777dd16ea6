package strand

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FromUTF16 decodes a UTF-16 code unit sequence into a String. Unpaired
// surrogates fail with ErrInvalidUTF8 rather than being replaced; use
// FromUTF16Lossy to substitute U+FFFD instead.
func FromUTF16(units []uint16) (String, error) {
	return fromUTF16[atomicCount, *atomicCount](units)
}

// LocalFromUTF16 is the LocalString form of FromUTF16.
func LocalFromUTF16(units []uint16) (LocalString, error) {
	return fromUTF16[localCount, *localCount](units)
}

func fromUTF16[C any, P counterPtr[C]](units []uint16) (Str[C, P], error) {
	if !utf16Wellformed(units) {
		return Str[C, P]{}, ErrInvalidUTF8
	}
	return ownString[C, P](string(utf16.Decode(units))), nil
}

// FromUTF16Lossy decodes UTF-16, replacing unpaired surrogates with the
// replacement character U+FFFD.
func FromUTF16Lossy(units []uint16) String {
	return ownString[atomicCount](string(utf16.Decode(units)))
}

// LocalFromUTF16Lossy is the LocalString form of FromUTF16Lossy.
func LocalFromUTF16Lossy(units []uint16) LocalString {
	return ownString[localCount](string(utf16.Decode(units)))
}

// utf16Wellformed reports whether every surrogate in units is part of a
// high/low pair.
func utf16Wellformed(units []uint16) bool {
	for i := 0; i < len(units); i++ {
		switch u := units[i]; {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] >= 0xE000 {
				return false
			}
			i++
		case u >= 0xDC00 && u < 0xE000:
			return false
		}
	}
	return true
}

// UTF16 encodes the logical content as UTF-16 code units.
func (s Str[C, P]) UTF16() []uint16 {
	return utf16.Encode([]rune(s.String()))
}

// FromBytesLossy creates a String from b, replacing invalid UTF-8
// sequences with the replacement character U+FFFD.
func FromBytesLossy(b []byte) String {
	return ownString[atomicCount](toValid(b))
}

// LocalFromBytesLossy is the LocalString form of FromBytesLossy.
func LocalFromBytesLossy(b []byte) LocalString {
	return ownString[localCount](toValid(b))
}

func toValid(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// ToUpper returns the content mapped to upper case per Unicode rules.
// Case mapping can change byte length, so the result is always a fresh
// allocation, never a shared slice.
func (s Str[C, P]) ToUpper() Str[C, P] {
	return ownString[C, P](cases.Upper(language.Und).String(s.String()))
}

// ToLower returns the content mapped to lower case per Unicode rules.
func (s Str[C, P]) ToLower() Str[C, P] {
	return ownString[C, P](cases.Lower(language.Und).String(s.String()))
}

// ToTitle returns the content mapped to title case per Unicode rules.
func (s Str[C, P]) ToTitle() Str[C, P] {
	return ownString[C, P](cases.Title(language.Und).String(s.String()))
}
