package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
)

// Expand expands the strings of node in place.
//
// A string of the form .[expr] is replaced by the value of expr, of any
// type.  Other strings have their $[expr] parts replaced as by
// ExpandString.  The functions available to Eval are bound to the position
// of each string.
func Expand(node *ir.Node, env Env) error {
	return node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.StringType {
			return true, nil
		}
		if raw := GetRaw(y.String); raw != "" {
			val, err := run(y, raw, env)
			if err != nil {
				return false, fmt.Errorf("%s: %w", y.KPath(), err)
			}
			repl, err := FromAny(val)
			if err != nil {
				return false, fmt.Errorf("%s: %w", y.KPath(), err)
			}
			overwrite(y, repl)
			// repl's children are already expanded values
			return false, nil
		}
		xs, err := expandString(y, y.String, env)
		if err != nil {
			return false, fmt.Errorf("%s: %w", y.KPath(), err)
		}
		y.String = xs
		return true, nil
	})
}

// overwrite makes dst hold the value of the root repl, keeping dst's place
// in its tree.
func overwrite(dst, repl *ir.Node) {
	repl.Parent = dst.Parent
	repl.ParentIndex = dst.ParentIndex
	repl.ParentField = dst.ParentField
	*dst = *repl
	for _, c := range dst.Values {
		c.Parent = dst
	}
}

// GetRaw returns expr for a string of the form .[expr] and "" otherwise.
func GetRaw(v string) string {
	if len(v) < 3 || !strings.HasPrefix(v, ".[") || v[len(v)-1] != ']' {
		return ""
	}
	return v[2 : len(v)-1]
}

// ExpandString expands $[...] expressions in a string.
//
// Within expressions, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// If an expression is not closed with an unescaped ], the text is treated
// as a literal string rather than an expression.
func ExpandString(v string, env Env) (string, error) {
	return expandString(ir.Null(), v, env)
}

func expandString(at *ir.Node, v string, env Env) (string, error) {
	if !strings.Contains(v, "$[") {
		return v, nil
	}
	var out, key strings.Builder
	start := -1
	n := len(v)
	for i := 0; i < n; {
		c := v[i]
		if start == -1 {
			if c == '$' && i+1 < n && v[i+1] == '[' {
				start = i
				key.Reset()
				i += 2
				continue
			}
			out.WriteByte(c)
			i++
			continue
		}
		switch {
		case c == '\\' && i+1 < n:
			key.WriteByte(v[i+1])
			i += 2
		case c == ']':
			s, err := evalString(at, key.String(), env)
			if err != nil {
				return "", err
			}
			out.WriteString(s)
			start = -1
			i++
		default:
			key.WriteByte(c)
			i++
		}
	}
	if start != -1 {
		out.WriteString(v[start:])
	}
	return out.String(), nil
}

func evalString(at *ir.Node, key string, env Env) (string, error) {
	x, err := run(at, strings.TrimSpace(key), env)
	if err != nil {
		return "", err
	}
	if s, ok := x.(string); ok {
		return s, nil
	}
	node, err := FromAny(x)
	if err != nil {
		return "", fmt.Errorf("could not marshal evaluation results for %s: %w", key, err)
	}
	return encode.Print(node, encode.EncodeWire(true))
}
