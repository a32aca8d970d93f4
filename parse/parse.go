package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/token"
	"github.com/signadot/jdoc/yamlconv"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format.IsYAML() {
		return parseYAML(d, pOpts)
	}
	p := &parser{tz: token.NewTokenizer(d), opts: pOpts}
	res, err := p.value()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed after %d bytes: %v\n", p.tz.Offset(), err)
		}
		return nil, toError(err)
	}
	end := p.tz.Offset()
	if pOpts.end != nil {
		*pOpts.end = end
	}
	if !pOpts.allowTrailing {
		if p.tz.Peek() != token.TEOF {
			return nil, toError(token.NewTokenizeErr(ErrTrailing, p.tz.Doc().Pos(p.tz.Offset())))
		}
	}
	if debug.Parse() {
		debug.Logf("parsed %d of %d bytes: %s\n", end, len(d), res.Type)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	res, err := yamlconv.FromYAML(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if opts.end != nil {
		*opts.end = len(d)
	}
	return res, nil
}

type parser struct {
	tz    *token.Tokenizer
	opts  *parseOpts
	depth int
}

func (p *parser) value() (*ir.Node, error) {
	tok, err := p.tz.Next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.TLCurl:
		return p.object(&tok)
	case token.TLSquare:
		return p.array(&tok)
	case token.TString:
		return ir.FromString(tok.Value), nil
	case token.TNumber:
		f, err := strconv.ParseFloat(string(tok.Bytes), 64)
		if err != nil {
			return nil, token.NewTokenizeErr(fmt.Errorf("%w %s out of range", token.ErrNumber, tok.Bytes), tok.Pos)
		}
		return ir.FromFloat(f), nil
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	case token.TNull:
		return ir.Null(), nil
	case token.TEOF:
		return nil, token.ExpectedErr("value", tok.Pos)
	default:
		return nil, token.UnexpectedErr(tok.Type.String(), tok.Pos)
	}
}

func (p *parser) enter(pos *token.Pos) error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return token.NewTokenizeErr(fmt.Errorf("%w: limit %d", ErrDepth, p.opts.maxDepth), pos)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) array(open *token.Token) (*ir.Node, error) {
	if err := p.enter(open.Pos); err != nil {
		return nil, err
	}
	defer p.leave()
	res := ir.NewArray()
	if p.tz.Peek() == token.TRSquare {
		if _, err := p.tz.Next(); err != nil {
			return nil, err
		}
		return res, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := res.Append(v); err != nil {
			return nil, fmt.Errorf("%w: %w", errInternal, err)
		}
		tok, err := p.tz.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.TComma:
		case token.TRSquare:
			return res, nil
		default:
			return nil, token.ExpectedErr("',' or ']'", tok.Pos)
		}
	}
}

func (p *parser) object(open *token.Token) (*ir.Node, error) {
	if err := p.enter(open.Pos); err != nil {
		return nil, err
	}
	defer p.leave()
	res := ir.NewObject()
	if p.tz.Peek() == token.TRCurl {
		if _, err := p.tz.Next(); err != nil {
			return nil, err
		}
		return res, nil
	}
	for {
		key, err := p.tz.Next()
		if err != nil {
			return nil, err
		}
		if key.Type != token.TString {
			return nil, token.ExpectedErr("string key", key.Pos)
		}
		colon, err := p.tz.Next()
		if err != nil {
			return nil, err
		}
		if colon.Type != token.TColon {
			return nil, token.ExpectedErr("':'", colon.Pos)
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := res.Set(key.Value, v); err != nil {
			return nil, fmt.Errorf("%w: %w", errInternal, err)
		}
		tok, err := p.tz.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.TComma:
		case token.TRCurl:
			return res, nil
		default:
			return nil, token.ExpectedErr("',' or '}'", tok.Pos)
		}
	}
}
