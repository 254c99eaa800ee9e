package sim

import (
	"fmt"
	"io"

	"github.com/AbdelrahmanBedoo/z16sim/translate"
	"github.com/AbdelrahmanBedoo/z16sim/z16"
)

var f = translate.From

// TextEnvironment services the three Z16 environment calls over a single
// injected io.Writer, the concrete form of z16.Environment used by Run.
// Modelled as a thin wrapper around one sink rather than a bit-channel
// protocol, since Z16's ecalls are synchronous, line-oriented host calls.
type TextEnvironment struct {
	W io.Writer
}

var _ z16.Environment = (*TextEnvironment)(nil)

// PrintInt services ecall 1: print the signed decimal value of a0.
func (e *TextEnvironment) PrintInt(v int16) error {
	_, err := fmt.Fprintln(e.W, f("Print integer: %d", v))
	return err
}

// PrintString services ecall 5: print the NUL-terminated string at a0.
func (e *TextEnvironment) PrintString(s string) error {
	_, err := fmt.Fprintln(e.W, f("Print string: %s", s))
	return err
}

// Halt services ecall 3: emit the two terminate-simulation lines.
func (e *TextEnvironment) Halt() error {
	if _, err := fmt.Fprintln(e.W, f("ecall 3")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(e.W, f("ecall terminate simulation"))
	return err
}

// Unknown services any ecall service number other than 1, 3, and 5.
func (e *TextEnvironment) Unknown(service uint16) error {
	_, err := fmt.Fprintln(e.W, f("ecall %d", service))
	return err
}
