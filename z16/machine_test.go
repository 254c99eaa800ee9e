package z16

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMachineInitialState(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	assert.Equal(uint16(0), m.PC)
	assert.Equal(uint16(StackTop), m.Regs[RegSP])
	for i := range RegCount {
		if i == RegSP {
			continue
		}
		assert.Equal(uint16(0), m.Regs[i])
	}
}

func TestLoadImageSetsProgramSize(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.LoadImage([]byte{0x01, 0x02, 0x03})
	assert.Equal(3, m.ProgramSize)
	assert.Equal(byte(0x01), m.Mem.ReadByte(0))
	assert.Equal(byte(0x03), m.Mem.ReadByte(2))
}

func TestResetForExecutionKeepsImage(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.LoadImage([]byte{0xAA, 0xBB})
	m.Regs[RegT0] = 99
	m.PC = 42

	m.ResetForExecution()

	assert.Equal(uint16(0), m.PC)
	assert.Equal(uint16(StackTop), m.Regs[RegSP])
	assert.Equal(uint16(0), m.Regs[RegT0])
	assert.Equal(byte(0xAA), m.Mem.ReadByte(0))
}
