// Package report emits the final register dump and the non-zero memory
// listing that close out a simulation run (SPEC_FULL.md §4.5).
package report

import (
	"fmt"
	"io"

	"github.com/AbdelrahmanBedoo/z16sim/translate"
	"github.com/AbdelrahmanBedoo/z16sim/z16"
)

var f = translate.From

// WriteRegisters emits the "Final register state:" header followed by one
// ABI-named line per register, e.g. "t0 = 0x000c".
func WriteRegisters(w io.Writer, regs *z16.Registers) error {
	if _, err := fmt.Fprintln(w, f("Final register state:")); err != nil {
		return err
	}
	for i, name := range z16.RegisterNames {
		if _, err := fmt.Fprintln(w, f("%s = 0x%04x", name, regs[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteMemory emits the "Used Memory Listing (only non-zero cells):"
// header followed by one line per non-zero byte, in address order, or the
// literal "No used memory addresses found." line if memory is all zero.
func WriteMemory(w io.Writer, mem *z16.Memory) error {
	if _, err := fmt.Fprintln(w, f("Used Memory Listing (only non-zero cells):")); err != nil {
		return err
	}

	found := false
	for addr, v := range mem.NonZero() {
		found = true
		if _, err := fmt.Fprintln(w, f("Addr 0x%04x : 0x%02x", addr, v)); err != nil {
			return err
		}
	}
	if !found {
		if _, err := fmt.Fprintln(w, f("No used memory addresses found.")); err != nil {
			return err
		}
	}
	return nil
}
