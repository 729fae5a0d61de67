package token

import (
	"encoding/hex"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote returns v as a double quoted JSON string.
//
// The escaping table is shared by every emitter:
//
//	\  -> \\
//	"  -> \"
//	newline, carriage return, tab, backspace, form feed -> \n \r \t \b \f
//	other code points below 0x20 or from 0x7f up to 0xffff -> \u%04x
//	code points above 0xffff -> a \u%04x\u%04x surrogate pair
//
// Everything else is written literally, so the result is pure ASCII.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// AppendQuote appends the quoted form of v to d.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			switch {
			case r < 0x20, r >= 0x7f && r <= 0xffff:
				d = appendUnicodeEscape(d, r)
			case r > 0xffff:
				r1, r2 := utf16.EncodeRune(r)
				d = appendUnicodeEscape(d, r1)
				d = appendUnicodeEscape(d, r2)
			default:
				d = append(d, byte(r))
			}
		}
	}
	return append(d, '"')
}

func appendUnicodeEscape(d []byte, r rune) []byte {
	ucs := []byte{byte(r >> 8), byte(r)}
	d = append(d, '\\', 'u')
	return hex.AppendEncode(d, ucs)
}

// Unquote decodes the quoted JSON string v.
func Unquote(v string) (string, error) {
	n, s, err := scanQuoted([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrTrailing
	}
	return s, nil
}

// Unescape returns the character denoted by the escape code c, the
// character following a backslash.  The unicode escape 'u' is handled
// separately.
func Unescape(c rune) (rune, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// Hex4 decodes 4 hexadecimal digits.
func Hex4(d []byte) (rune, bool) {
	if len(d) != 4 {
		return 0, false
	}
	var r rune
	for _, c := range d {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			r |= rune(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return r, true
}

// Unescaper accumulates the decoded content of a string, joining UTF-16
// surrogate pairs given by consecutive unicode escapes.  Unpaired
// surrogates decode to utf8.RuneError.
type Unescaper struct {
	b    strings.Builder
	high rune
}

func (u *Unescaper) WriteRune(r rune) {
	u.flush()
	u.b.WriteRune(r)
}

// WriteUnit writes the code unit of a \uXXXX escape.
func (u *Unescaper) WriteUnit(r rune) {
	if u.high != 0 {
		if r >= 0xdc00 && r <= 0xdfff {
			u.b.WriteRune(utf16.DecodeRune(u.high, r))
			u.high = 0
			return
		}
		u.flush()
	}
	if r >= 0xd800 && r < 0xdc00 {
		u.high = r
		return
	}
	u.b.WriteRune(r)
}

func (u *Unescaper) flush() {
	if u.high != 0 {
		u.b.WriteRune(utf8.RuneError)
		u.high = 0
	}
}

func (u *Unescaper) String() string {
	u.flush()
	return u.b.String()
}

// scanQuoted scans the quoted string at the start of d.  It returns the
// length of the literal including both quotes and the decoded value.  On
// error, the returned length is the offset of the offending byte.
func scanQuoted(d []byte) (int, string, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, "", ErrUnexpected
	}
	u := &Unescaper{}
	i := 1
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, u.String(), nil
		case c == '\\':
			if i+1 == n {
				return n, "", ErrUnterminated
			}
			e := d[i+1]
			if e == 'u' {
				if i+6 > n {
					return n, "", ErrUnterminated
				}
				r, ok := Hex4(d[i+2 : i+6])
				if !ok {
					return i, "", ErrBadUnicode
				}
				u.WriteUnit(r)
				i += 6
				continue
			}
			r, ok := Unescape(rune(e))
			if !ok {
				return i, "", ErrBadEscape
			}
			u.WriteRune(r)
			i += 2
		case c < 0x20:
			return i, "", ErrUnicodeControl
		case c < utf8.RuneSelf:
			u.WriteRune(rune(c))
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return i, "", ErrBadUTF8
			}
			u.WriteRune(r)
			i += sz
		}
	}
	return n, "", ErrUnterminated
}
