package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Load  bool
	Patch bool
	Diff  bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JD_DEBUG_PARSE")
	d.Load = boolEnv("JD_DEBUG_LOAD")
	d.Patch = boolEnv("JD_DEBUG_PATCH")
	d.Diff = boolEnv("JD_DEBUG_DIFF")
	d.Eval = boolEnv("JD_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Load() bool {
	return d.Load
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}
