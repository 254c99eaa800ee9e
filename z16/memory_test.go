package z16

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryReadWriteByte(t *testing.T) {
	assert := assert.New(t)

	var mem Memory
	mem.WriteByte(0x10, 0xAB)
	assert.Equal(byte(0xAB), mem.ReadByte(0x10))
	assert.Equal(byte(0), mem.ReadByte(0x11))
}

func TestMemoryWordRoundTrip(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name string
		addr uint16
		v    uint16
	}{
		{"low", 0x0000, 0x1234},
		{"mid", 0x1000, 0xFFFF},
		{"top", StackTop, 0xBEEF},
	}

	for _, entry := range table {
		var mem Memory
		err := mem.WriteWord(entry.addr, entry.v)
		assert.NoError(err, entry.name)
		got, err := mem.ReadWord(entry.addr)
		assert.NoError(err, entry.name)
		assert.Equal(entry.v, got, entry.name)
	}
}

func TestMemoryWordLittleEndian(t *testing.T) {
	assert := assert.New(t)

	var mem Memory
	assert.NoError(mem.WriteWord(0x20, 0xABCD))
	assert.Equal(byte(0xCD), mem.ReadByte(0x20))
	assert.Equal(byte(0xAB), mem.ReadByte(0x21))
}

func TestMemoryWordOutOfBounds(t *testing.T) {
	assert := assert.New(t)

	var mem Memory
	_, err := mem.ReadWord(0xFFFF)
	assert.Error(err)
	var bounds *ErrMemoryBounds
	assert.ErrorAs(err, &bounds)
	assert.True(bounds.Word)
	assert.Equal(uint16(0xFFFF), bounds.Addr)

	err = mem.WriteWord(0xFFFF, 0x1234)
	assert.Error(err)
}

func TestMemoryNonZero(t *testing.T) {
	assert := assert.New(t)

	var mem Memory
	mem.WriteByte(0x0002, 1)
	mem.WriteByte(0x0005, 2)
	mem.WriteByte(0xFFFE, 3)

	var addrs []uint16
	var vals []byte
	for addr, v := range mem.NonZero() {
		addrs = append(addrs, addr)
		vals = append(vals, v)
	}

	assert.Equal([]uint16{0x0002, 0x0005, 0xFFFE}, addrs)
	assert.Equal([]byte{1, 2, 3}, vals)
}

func TestMemoryNonZeroEarlyReturn(t *testing.T) {
	assert := assert.New(t)

	var mem Memory
	mem.WriteByte(0x0002, 1)
	mem.WriteByte(0x0005, 2)

	count := 0
	for range mem.NonZero() {
		count++
		break
	}

	assert.Equal(1, count)
}
