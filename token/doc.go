// Package token provides lexical analysis of JSON text.
//
// The tokenizer works over a complete in-memory document and yields one
// token at a time. Every token carries its byte offset so that parse errors
// can report exactly where input went wrong.
//
// # Usage
//
//	tz := token.NewTokenizer(data)
//	for {
//	    tok, err := tz.Next()
//	    if err != nil {
//	        return err
//	    }
//	    if tok.Type == token.TEOF {
//	        break
//	    }
//	    fmt.Println(tok.Info())
//	}
//
// The package also holds the string quoting used by the encoder (Quote,
// AppendQuote) and the matching decoder (Unquote).
//
// # Related Packages
//
//   - github.com/signadot/jdoc/parse - Parse tokens to IR
package token
