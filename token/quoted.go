package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// KPathQuoteField returns true if a field name needs to be quoted in a kinded path.
// A field needs quoting if it is empty, is not valid utf8, or contains
// path syntax characters, quotes, or whitespace.
func KPathQuoteField(v string) bool {
	if v == "" || !utf8.ValidString(v) {
		return true
	}
	return strings.ContainsAny(v, ".[]*\"' \t\r\n")
}

// Quote returns v as a JSON string literal.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// AppendQuote appends the JSON string literal of v to dst. Invalid utf8 is
// replaced by U+FFFD so the result is always valid utf8.
func AppendQuote(dst []byte, v string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(v); {
		c := v[i]
		if c >= 0x20 && c != '"' && c != '\\' && c < utf8.RuneSelf {
			i++
			continue
		}
		if c >= utf8.RuneSelf {
			r, sz := utf8.DecodeRuneInString(v[i:])
			if r == utf8.RuneError && sz == 1 {
				dst = append(dst, v[start:i]...)
				dst = utf8.AppendRune(dst, utf8.RuneError)
				i++
				start = i
				continue
			}
			i += sz
			continue
		}
		dst = append(dst, v[start:i]...)
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		i++
		start = i
	}
	dst = append(dst, v[start:]...)
	return append(dst, '"')
}

// Unquote decodes the JSON string literal at the start of d, which must begin
// with '"'. It returns the decoded string and the number of bytes consumed,
// including both quotes. On error, the returned int is the offset in d of
// the offending byte.
func Unquote(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", 0, ErrUnexpected
	}
	// fast path: no escapes, all ascii
	for i := 1; i < len(d); i++ {
		c := d[i]
		if c == '"' {
			return string(d[1:i]), i + 1, nil
		}
		if c == '\\' || c < 0x20 || c >= utf8.RuneSelf {
			break
		}
	}
	return unquoteSlow(d)
}

func unquoteSlow(d []byte) (string, int, error) {
	b := &strings.Builder{}
	n := len(d)
	i := 1
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return b.String(), i + 1, nil
		case c < 0x20:
			return "", i, ErrUnicodeControl
		case c >= utf8.RuneSelf:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz <= 1 {
				return "", i, ErrBadUTF8
			}
			b.Write(d[i : i+sz])
			i += sz
		case c != '\\':
			b.WriteByte(c)
			i++
		default:
			if i+1 >= n {
				return "", i, ErrUnterminated
			}
			esc := d[i+1]
			switch esc {
			case '"', '\\', '/':
				b.WriteByte(esc)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				r, sz, err := unicodeEscape(d[i:])
				if err != nil {
					return "", i, err
				}
				b.WriteRune(r)
				i += sz
				continue
			default:
				return "", i, ErrBadEscape
			}
			i += 2
		}
	}
	return "", n, ErrUnterminated
}

// unicodeEscape decodes a \uXXXX escape at the start of d, combining it with
// a following low surrogate escape when it is a high surrogate.
func unicodeEscape(d []byte) (rune, int, error) {
	r, ok := hex4(d)
	if !ok {
		return 0, 0, ErrBadUnicode
	}
	switch {
	case r >= 0xdc00 && r <= 0xdfff:
		return 0, 0, ErrSurrogate
	case r >= 0xd800 && r <= 0xdbff:
		if len(d) < 12 || d[6] != '\\' || d[7] != 'u' {
			return 0, 0, ErrSurrogate
		}
		r2, ok := hex4(d[6:])
		if !ok {
			return 0, 0, ErrBadUnicode
		}
		combined := utf16.DecodeRune(r, r2)
		if combined == utf8.RuneError {
			return 0, 0, ErrSurrogate
		}
		return combined, 12, nil
	default:
		return r, 6, nil
	}
}

// hex4 reads the 4 hex digits following `\u` at the start of d.
func hex4(d []byte) (rune, bool) {
	if len(d) < 6 {
		return 0, false
	}
	var r rune
	for _, c := range d[2:6] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}
