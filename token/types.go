package token

import (
	"fmt"
)

type TokenType int

const (
	TEOF TokenType = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TNumber
	TTrue
	TFalse
	TNull
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TString:  "TString",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
	}[t]
}

// Token is a lexical unit of a JSON document.
//
// For TString tokens, Bytes holds the quoted source text and Value holds the
// decoded string. For all other tokens Bytes is the source text and Value is
// empty.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
	Value string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	if t.Type == TString {
		return t.Value
	}
	return string(t.Bytes)
}
