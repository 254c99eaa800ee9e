package disasm

import (
	"fmt"
	"iter"

	"github.com/AbdelrahmanBedoo/z16sim/z16"
)

// Render returns the canonical assembly text for a decoded instruction, for
// example "add t0, ra" or "beq t0, ra, 0x0010". It never includes the
// address or the raw word; callers compose the full line per
// SPEC_FULL.md §6. Render returns the empty string for an Instruction whose
// Family is z16.FamilyUnknown.
func Render(ins z16.Instruction) string {
	rn := z16.RegisterNames

	switch ins.Mnem {
	case z16.MnemAdd, z16.MnemSub, z16.MnemSlt, z16.MnemSltu,
		z16.MnemSll, z16.MnemSrl, z16.MnemSra,
		z16.MnemOr, z16.MnemAnd, z16.MnemXor, z16.MnemMv:
		return fmt.Sprintf("%s %s, %s", ins.Mnem, rn[ins.Rd], rn[ins.Rs2])
	case z16.MnemJr:
		return fmt.Sprintf("jr %s", rn[ins.Rd])
	case z16.MnemJalr:
		return fmt.Sprintf("jalr %s", rn[ins.Rs2])

	case z16.MnemAddi, z16.MnemSlti, z16.MnemOri, z16.MnemAndi, z16.MnemXori, z16.MnemLi:
		return fmt.Sprintf("%s %s, %d", ins.Mnem, rn[ins.Rd], ins.Imm)
	case z16.MnemSltui:
		return fmt.Sprintf("sltui %s, %d", rn[ins.Rd], ins.Imm7)
	case z16.MnemSlli, z16.MnemSrli, z16.MnemSrai:
		return fmt.Sprintf("%s %s, %d", ins.Mnem, rn[ins.Rd], ins.Shamt)

	case z16.MnemBeq, z16.MnemBne, z16.MnemBlt, z16.MnemBge, z16.MnemBltu, z16.MnemBgeu:
		return fmt.Sprintf("%s %s, %s, 0x%04x", ins.Mnem, rn[ins.Rs1], rn[ins.Rs2], ins.BranchTarget())
	case z16.MnemBz, z16.MnemBnz:
		return fmt.Sprintf("%s %s, 0x%04x", ins.Mnem, rn[ins.Rs1], ins.BranchTarget())

	case z16.MnemSb, z16.MnemSw:
		return fmt.Sprintf("%s %s, %d(%s)", ins.Mnem, rn[ins.Rs2], ins.Imm, rn[ins.Rs1])
	case z16.MnemLb, z16.MnemLw, z16.MnemLbu:
		return fmt.Sprintf("%s %s, %d(%s)", ins.Mnem, rn[ins.Rd], ins.Imm, rn[ins.Rs2])

	case z16.MnemJ:
		return fmt.Sprintf("j 0x%04x", ins.JumpTarget())
	case z16.MnemJal:
		return fmt.Sprintf("jal %s, 0x%04x", rn[ins.Rd], ins.JumpTarget())

	case z16.MnemLui, z16.MnemAuipc:
		return fmt.Sprintf("%s %s, %d", ins.Mnem, rn[ins.Rd], ins.Imm)

	case z16.MnemEcall:
		return fmt.Sprintf("ecall %d", ins.Service)

	default:
		return ""
	}
}

// InstructionLine formats the "<addr>: <word>  <mnemonic>" line shared by
// the linear disassembly walk and the execution trace. known is false when
// word does not decode to a recognised instruction, in which case line is
// empty and the caller should fall back to a raw .word directive.
func InstructionLine(addr uint16, word uint16) (line string, known bool) {
	ins := z16.Decode(addr, word)
	if ins.Family == z16.FamilyUnknown {
		return "", false
	}
	return fmt.Sprintf("0x%04x: %04x  %s", addr, word, Render(ins)), true
}

const (
	minStringLen = 4
	maxProbe     = 256
	zeroRunMin   = 4
)

// Walk performs the linear disassembly of a loaded image: it classifies
// [0, programSize) as embedded ASCII strings, runs of zero words, decoded
// instructions, and trailing raw bytes, in that fixed, greedy,
// non-backtracking order (SPEC_FULL.md §4.4). It yields one (address, line)
// pair per emitted record, in ascending address order.
func Walk(mem *z16.Memory, programSize int) iter.Seq2[uint16, string] {
	return func(yield func(uint16, string) bool) {
		addr := 0
		for addr < programSize {
			if line, next, ok := scanString(mem, addr, programSize); ok {
				if !yield(uint16(addr), line) {
					return
				}
				addr = next
				continue
			}

			if addr+1 < programSize {
				word, _ := mem.ReadWord(uint16(addr))
				if word == 0 {
					start := addr
					count := 0
					for addr+1 < programSize {
						w, _ := mem.ReadWord(uint16(addr))
						if w != 0 {
							break
						}
						count++
						addr += 2
					}
					if count >= zeroRunMin {
						if !yield(uint16(start), fmt.Sprintf("0x%04x: .space %d bytes", start, count*2)) {
							return
						}
					} else {
						for i := 0; i < count; i++ {
							a := uint16(start + i*2)
							if !yield(a, fmt.Sprintf("0x%04x: .word 0x0000", a)) {
								return
							}
						}
					}
					continue
				}
			}

			if addr+1 < programSize {
				word, _ := mem.ReadWord(uint16(addr))
				if line, ok := InstructionLine(uint16(addr), word); ok {
					if !yield(uint16(addr), line) {
						return
					}
				} else {
					if !yield(uint16(addr), fmt.Sprintf("0x%04x: .word 0x%04x", addr, word)) {
						return
					}
				}
				addr += 2
				continue
			}

			b := mem.ReadByte(uint16(addr))
			if !yield(uint16(addr), fmt.Sprintf("0x%04x: .byte 0x%02x", addr, b)) {
				return
			}
			addr++
		}
	}
}

// scanString scans forward from addr for a NUL-terminated run of printable
// or whitespace bytes at least minStringLen long, bounded by maxProbe.
func scanString(mem *z16.Memory, addr int, programSize int) (line string, next int, ok bool) {
	probe := addr
	var text []byte
	foundNull := false
	for probe < programSize && probe-addr < maxProbe {
		b := mem.ReadByte(uint16(probe))
		if b == 0 {
			foundNull = true
			break
		}
		if !isPrintableOrSpace(b) {
			break
		}
		text = append(text, b)
		probe++
	}
	if foundNull && len(text) >= minStringLen {
		return fmt.Sprintf("0x%04x: .asciiz \"%s\"", addr, text), probe + 1, true
	}
	return "", 0, false
}

func isPrintableOrSpace(b byte) bool {
	if b >= 0x20 && b < 0x7f {
		return true
	}
	switch b {
	case '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
