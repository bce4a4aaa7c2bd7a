package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Delta   bool
	Prune   bool
	Publish bool
	Wire    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Delta = boolEnv("LIVEDOC_DEBUG_DELTA")
	d.Prune = boolEnv("LIVEDOC_DEBUG_PRUNE")
	d.Publish = boolEnv("LIVEDOC_DEBUG_PUBLISH")
	d.Wire = boolEnv("LIVEDOC_DEBUG_WIRE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Delta() bool {
	return d.Delta
}
func Prune() bool {
	return d.Prune
}
func Publish() bool {
	return d.Publish
}
func Wire() bool {
	return d.Wire
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
