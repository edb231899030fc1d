package penrose

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Stem strips the directory-free extension part of an output name:
// everything from the first '.' of the base name on.
// "out/sun.tiling.svg" gives "out/sun".
func Stem(name string) string {
	dir, base := filepath.Split(name)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return dir + base
}

// OutputName names the file for generation index: the stem of name,
// the index, then the extension of name (".svg" if it has none).
// "-" stays "-".
func OutputName(name string, index int) string {
	if name == "-" {
		return name
	}
	ext := filepath.Ext(name)
	if ext == "" {
		ext = ".svg"
	}
	return Stem(name) + strconv.Itoa(index) + ext
}
