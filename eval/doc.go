// Package eval evaluates expressions over documents.
//
// Expressions are github.com/expr-lang/expr programs.  The environment of an
// expression holds the top-level fields of the document, when it is an
// object, and the whole document as root:
//
//	eval.Eval(doc, `age + 1`)
//	eval.Eval(doc, `len(root.love)`)
//	eval.Eval(doc, `kpath("love[2].games[0]")`)
//
// Strings may embed expressions as $[expr], see ExpandString.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - IR representation
package eval
