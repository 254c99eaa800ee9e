package sim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AbdelrahmanBedoo/z16sim/z16"
)

// encodeSys builds a SYS-type word: service[15:6] | funct3[5:3] | op[2:0].
func encodeSys(service, funct3 uint16) uint16 {
	return (service << 6) | (funct3 << 3) | 0b111
}

// encodeJ builds a J-type word: f[15] | imm6[14:9] | rd[8:6] | imm3[5:3] | op[2:0].
func encodeJ(f, imm6, rd, imm3 uint16) uint16 {
	return (f << 15) | (imm6 << 9) | (rd << 6) | (imm3 << 3) | 0b101
}

func TestRunHaltEmitsOneTraceLineAndEcall3(t *testing.T) {
	assert := assert.New(t)

	m := z16.NewMachine()
	assert.NoError(m.Mem.WriteWord(0, encodeSys(3, 0))) // ecall 3
	m.ProgramSize = 2

	var buf bytes.Buffer
	err := Run(m, &buf, Options{})
	assert.NoError(err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal([]string{
		"0x0000: 00c7  ecall 3",
		"ecall 3",
		"ecall terminate simulation",
	}, lines)
}

func TestRunPrintString(t *testing.T) {
	assert := assert.New(t)

	m := z16.NewMachine()
	m.Mem.WriteByte(0x10, 'H')
	m.Mem.WriteByte(0x11, 'i')
	m.Mem.WriteByte(0x12, 0)
	m.Regs[z16.RegA0] = 0x10
	assert.NoError(m.Mem.WriteWord(0, encodeSys(5, 0))) // ecall 5
	assert.NoError(m.Mem.WriteWord(2, encodeSys(3, 0))) // ecall 3
	m.ProgramSize = 4

	var buf bytes.Buffer
	assert.NoError(Run(m, &buf, Options{}))

	assert.Contains(buf.String(), "Print string: Hi")
	assert.Contains(buf.String(), "ecall terminate simulation")
}

func TestRunCycleBudgetStopsInfiniteLoop(t *testing.T) {
	assert := assert.New(t)

	m := z16.NewMachine()
	assert.NoError(m.Mem.WriteWord(0, encodeJ(0, 0, 0, 0))) // j +0, loops on itself forever
	m.ProgramSize = 2

	var buf bytes.Buffer
	assert.NoError(Run(m, &buf, Options{CycleBudget: 5}))

	assert.Contains(buf.String(), "Infinite loop detected at PC = 0x0000. Exiting simulation.")
}

func TestRunDefaultCycleBudgetAppliesWhenUnset(t *testing.T) {
	assert := assert.New(t)

	m := z16.NewMachine()
	assert.NoError(m.Mem.WriteWord(0, encodeJ(0, 0, 0, 0)))
	m.ProgramSize = 2

	var buf bytes.Buffer
	assert.NoError(Run(m, &buf, Options{}))

	assert.Contains(buf.String(), "Infinite loop detected")
	assert.Equal(1, strings.Count(buf.String(), "Infinite loop detected"))
}

func TestRunStrictPromotesUnknownEncodingToError(t *testing.T) {
	assert := assert.New(t)

	m := z16.NewMachine()
	assert.NoError(m.Mem.WriteWord(0, uint16(0b0111)<<12|uint16(1)<<9|uint16(2)<<6|uint16(0b010)<<3)) // unknown R
	m.ProgramSize = 2

	var buf bytes.Buffer
	err := Run(m, &buf, Options{Strict: true})

	var runtimeErr *ErrRuntime
	assert.ErrorAs(err, &runtimeErr)
	assert.Equal(uint16(0), runtimeErr.PC)
}

func TestRunNonStrictRecoversFromUnknownEncoding(t *testing.T) {
	assert := assert.New(t)

	m := z16.NewMachine()
	assert.NoError(m.Mem.WriteWord(0, uint16(0b0111)<<12|uint16(1)<<9|uint16(2)<<6|uint16(0b010)<<3))
	assert.NoError(m.Mem.WriteWord(2, encodeSys(3, 0)))
	m.ProgramSize = 4

	var buf bytes.Buffer
	assert.NoError(Run(m, &buf, Options{}))
	assert.Contains(buf.String(), "ecall terminate simulation")
}

func TestRunNoTraceSuppressesInstructionLines(t *testing.T) {
	assert := assert.New(t)

	m := z16.NewMachine()
	assert.NoError(m.Mem.WriteWord(0, encodeSys(3, 0)))
	m.ProgramSize = 2

	var buf bytes.Buffer
	assert.NoError(Run(m, &buf, Options{NoTrace: true}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal([]string{"ecall 3", "ecall terminate simulation"}, lines)
}

func TestRunMemoryBoundsFaultIsFatal(t *testing.T) {
	assert := assert.New(t)

	m := z16.NewMachine()
	m.PC = 0xFFFF
	m.ProgramSize = z16.MemSize

	var buf bytes.Buffer
	err := Run(m, &buf, Options{})

	var runtimeErr *ErrRuntime
	assert.ErrorAs(err, &runtimeErr)
	assert.Equal(uint16(0xFFFF), runtimeErr.PC)
}

func TestRunTraceLineWrittenBeforeSideEffects(t *testing.T) {
	assert := assert.New(t)

	m := z16.NewMachine()
	assert.NoError(m.Mem.WriteWord(0, encodeSys(3, 0)))
	m.ProgramSize = 2

	var buf bytes.Buffer
	assert.NoError(Run(m, &buf, Options{}))

	out := buf.String()
	traceIdx := strings.Index(out, "ecall 3")
	assert.True(traceIdx >= 0)
	haltIdx := strings.Index(out, "ecall terminate simulation")
	assert.True(haltIdx > traceIdx)
}
