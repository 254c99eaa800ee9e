// Package loader reads a raw binary program image from disk, the concrete
// form of the distilled specification's "external loader" collaborator
// (SPEC_FULL.md §6a).
package loader

import (
	"os"

	"github.com/AbdelrahmanBedoo/z16sim/translate"
	"github.com/AbdelrahmanBedoo/z16sim/z16"
)

var f = translate.From

// Load reads path in full and returns its bytes along with their count as
// programSize. Images larger than z16.MemSize are rejected as *ErrLoad
// rather than silently truncated, matching original_source/main.cpp's
// fin.gcount() byte-count behaviour for anything that does fit.
func Load(path string) (image []byte, programSize int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, &ErrLoad{Path: path, Err: err}
	}
	if len(data) > z16.MemSize {
		return nil, 0, &ErrLoad{Path: path, Err: errTooLarge(len(data))}
	}
	return data, len(data), nil
}

type errTooLarge int

func (n errTooLarge) Error() string {
	return f("image is %d bytes, larger than the %d-byte address space", int(n), z16.MemSize)
}
