package z16

import (
	"github.com/AbdelrahmanBedoo/z16sim/translate"
)

var f = translate.From

// ErrMemoryBounds reports a memory access outside [0, 65535], or a word
// access whose second byte falls outside that range.
type ErrMemoryBounds struct {
	Addr uint16
	Word bool
}

func (err *ErrMemoryBounds) Error() string {
	if err.Word {
		return f("memory: word access at 0x%04x out of bounds", err.Addr)
	}
	return f("memory: access at 0x%04x out of bounds", err.Addr)
}

// ErrDecodeUnknown reports a 16-bit word whose field combination is not a
// recognised instruction. It is non-fatal by default: the run loop emits a
// diagnostic and advances pc by 2. Under config.Config.Strict it is
// surfaced to the caller as a fatal error instead.
type ErrDecodeUnknown struct {
	Addr uint16
	Word uint16
}

func (err *ErrDecodeUnknown) Error() string {
	return f("decode: unknown instruction 0x%04x at 0x%04x", err.Word, err.Addr)
}
