package token

import (
	"bytes"
	"fmt"
)

// Tokenizer yields the tokens of a JSON document one at a time.
type Tokenizer struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewTokenizer(d []byte) *Tokenizer {
	return &Tokenizer{d: d, doc: NewPosDoc(d)}
}

// Offset returns the offset of the next unconsumed byte.
func (tz *Tokenizer) Offset() int {
	return tz.i
}

// Doc returns the position mapping of the tokenized document.
func (tz *Tokenizer) Doc() *PosDoc {
	return tz.doc
}

// SkipSpace advances past JSON insignificant whitespace and returns the new
// offset.
func (tz *Tokenizer) SkipSpace() int {
	for tz.i < len(tz.d) {
		switch tz.d[tz.i] {
		case ' ', '\t', '\n', '\r':
			tz.i++
		default:
			return tz.i
		}
	}
	return tz.i
}

// Peek returns the type of the next token without consuming it. It does not
// validate the token.
func (tz *Tokenizer) Peek() TokenType {
	tz.SkipSpace()
	if tz.i == len(tz.d) {
		return TEOF
	}
	switch c := tz.d[tz.i]; c {
	case '{':
		return TLCurl
	case '}':
		return TRCurl
	case '[':
		return TLSquare
	case ']':
		return TRSquare
	case ':':
		return TColon
	case ',':
		return TComma
	case '"':
		return TString
	case 't':
		return TTrue
	case 'f':
		return TFalse
	case 'n':
		return TNull
	default:
		return TNumber
	}
}

// Next consumes and returns the next token. At the end of input it returns a
// TEOF token.
func (tz *Tokenizer) Next() (Token, error) {
	start := tz.SkipSpace()
	pos := tz.doc.Pos(start)
	if start == len(tz.d) {
		return Token{Type: TEOF, Pos: tz.doc.end()}, nil
	}
	c := tz.d[start]
	switch c {
	case '{':
		return tz.single(TLCurl, pos), nil
	case '}':
		return tz.single(TRCurl, pos), nil
	case '[':
		return tz.single(TLSquare, pos), nil
	case ']':
		return tz.single(TRSquare, pos), nil
	case ':':
		return tz.single(TColon, pos), nil
	case ',':
		return tz.single(TComma, pos), nil
	case '"':
		v, n, err := Unquote(tz.d[start:])
		if err != nil {
			return Token{}, NewTokenizeErr(err, tz.doc.Pos(start+n))
		}
		tz.i += n
		return Token{Type: TString, Pos: pos, Bytes: tz.d[start:tz.i], Value: v}, nil
	case 't':
		return tz.literal(TTrue, "true", pos)
	case 'f':
		return tz.literal(TFalse, "false", pos)
	case 'n':
		return tz.literal(TNull, "null", pos)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, _, err := number(tz.d[start:])
		if err != nil {
			return Token{}, NewTokenizeErr(err, tz.doc.Pos(start+n))
		}
		tz.i += n
		return Token{Type: TNumber, Pos: pos, Bytes: tz.d[start:tz.i]}, nil
	default:
		return Token{}, UnexpectedErr(fmt.Sprintf("%q", rune(c)), pos)
	}
}

func (tz *Tokenizer) single(tt TokenType, pos *Pos) Token {
	tz.i++
	return Token{Type: tt, Pos: pos, Bytes: tz.d[pos.I:tz.i]}
}

func (tz *Tokenizer) literal(tt TokenType, lit string, pos *Pos) (Token, error) {
	if !bytes.HasPrefix(tz.d[pos.I:], []byte(lit)) {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: expected %s", ErrLiteral, lit), pos)
	}
	end := pos.I + len(lit)
	if end < len(tz.d) && isIdentByte(tz.d[end]) {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: trailing characters after %s", ErrLiteral, lit), tz.doc.Pos(end))
	}
	tz.i = end
	return Token{Type: tt, Pos: pos, Bytes: tz.d[pos.I:end]}, nil
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || asciiDigit(c)
}

// Tokenize returns all the tokens in d, up to but not including TEOF.
func Tokenize(d []byte) ([]Token, error) {
	tz := NewTokenizer(d)
	res := []Token{}
	for {
		tok, err := tz.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TEOF {
			return res, nil
		}
		res = append(res, tok)
	}
}
