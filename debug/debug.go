package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Direct   bool
	Map      bool
	Registry bool
	Op       bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JB_DEBUG_PARSE")
	d.Direct = boolEnv("JB_DEBUG_DIRECT")
	d.Map = boolEnv("JB_DEBUG_MAP")
	d.Registry = boolEnv("JB_DEBUG_REGISTRY")
	d.Op = boolEnv("JB_DEBUG_OP")
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
func Direct() bool {
	return d.Direct
}
func Map() bool {
	return d.Map
}
func Registry() bool {
	return d.Registry
}
func Op() bool {
	return d.Op
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
