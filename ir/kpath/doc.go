// Package kpath provides kinded path parsing.
//
// Kinded paths encode both navigation and the kind of container being
// navigated:
//   - .field - Object field access
//   - [index] - Array index
//   - .* / [*] - Wildcards
//
// Field names which contain path syntax, whitespace or quotes are written as
// JSON strings: `"frame rate".x`.
//
// # Usage
//
//	kp, err := kpath.Parse("love[2].games[0]")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(kp.String()) // love[2].games[0]
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - IR representation
package kpath
