package z16

import "log"

// Machine is the complete Z16 simulation state: register file, memory
// image, program counter, and loaded image size. It is owned exclusively by
// one sim.Run call for the duration of a run; the decoder receives it as a
// read-only view, the executor as an exclusive mutable view.
type Machine struct {
	Verbose bool // enables diagnostic logging of lifecycle events

	Regs        Registers
	Mem         Memory
	PC          uint16
	ProgramSize int
}

// NewMachine returns a Machine in its initial state: all registers zero
// except sp, which holds StackTop.
func NewMachine() *Machine {
	m := &Machine{}
	m.resetRegisters()
	return m
}

func (m *Machine) resetRegisters() {
	clear(m.Regs[:])
	m.Regs[RegSP] = StackTop
	m.PC = 0
}

// LoadImage copies a program image into memory at address 0 and records its
// length as ProgramSize. Only the first MemSize bytes of a longer image are
// copied, while ProgramSize still records its full length; loader.Load
// rejects such images before they reach here (see loader/loader.go).
func (m *Machine) LoadImage(image []byte) {
	clear(m.Mem[:])
	copy(m.Mem[:], image)
	m.ProgramSize = len(image)
	if m.Verbose {
		log.Print(f("z16: loaded %d bytes", m.ProgramSize))
	}
}

// ResetForExecution restores registers and pc to their initial state while
// leaving the loaded memory image untouched. The run loop calls this after
// the disassembly pass and before the execution trace, so the disassembly
// dump always reflects the image as loaded (§5 ordering guarantee).
func (m *Machine) ResetForExecution() {
	m.resetRegisters()
	if m.Verbose {
		log.Print(f("z16: reset for execution"))
	}
}
