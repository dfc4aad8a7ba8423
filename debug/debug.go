package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Path      bool
	Hierarchy bool
	Lock      bool
	Merge     bool
	Patch     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("LATTICE_DEBUG_PATH")
	d.Hierarchy = boolEnv("LATTICE_DEBUG_HIERARCHY")
	d.Lock = boolEnv("LATTICE_DEBUG_LOCK")
	d.Merge = boolEnv("LATTICE_DEBUG_MERGE")
	d.Patch = boolEnv("LATTICE_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Hierarchy() bool {
	return d.Hierarchy
}
func Lock() bool {
	return d.Lock
}
func Merge() bool {
	return d.Merge
}
func Patch() bool {
	return d.Patch
}
