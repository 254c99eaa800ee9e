package z16

// Decode is a pure function from an instruction word and its address to a
// fully decoded Instruction. It never panics and never returns an error:
// an unrecognised field combination simply comes back with
// Family == FamilyUnknown and Mnem == MnemNone, leaving it to the caller
// (the executor or the disassembler) to decide how to react.
func Decode(addr uint16, word uint16) Instruction {
	ins := Instruction{Addr: addr, Word: word}

	switch word & 0x7 {
	case 0b000:
		decodeR(&ins)
	case 0b001:
		decodeI(&ins)
	case 0b010:
		decodeB(&ins)
	case 0b011:
		decodeS(&ins)
	case 0b100:
		decodeL(&ins)
	case 0b101:
		decodeJ(&ins)
	case 0b110:
		decodeU(&ins)
	case 0b111:
		decodeSys(&ins)
	}

	return ins
}

// signExtend4 sign-extends a 4-bit field to a 16-bit signed value.
func signExtend4(raw uint16) int16 {
	if raw&0x8 != 0 {
		return int16(raw | 0xFFF0)
	}
	return int16(raw)
}

func decodeR(ins *Instruction) {
	ins.Family = FamilyR
	word := ins.Word
	funct4 := (word >> 12) & 0xF
	rs2 := int((word >> 9) & 0x7)
	rdrs1 := int((word >> 6) & 0x7)
	funct3 := (word >> 3) & 0x7

	ins.Rd, ins.Rs1, ins.Rs2 = rdrs1, rdrs1, rs2

	switch {
	case funct4 == 0b0000 && funct3 == 0b000:
		ins.Mnem = MnemAdd
	case funct4 == 0b0001 && funct3 == 0b000:
		ins.Mnem = MnemSub
	case funct4 == 0b0000 && funct3 == 0b001:
		ins.Mnem = MnemSlt
	case funct4 == 0b0000 && funct3 == 0b010:
		ins.Mnem = MnemSltu
	case funct4 == 0b0010 && funct3 == 0b011:
		ins.Mnem = MnemSll
	case funct4 == 0b0100 && funct3 == 0b011:
		ins.Mnem = MnemSrl
	case funct4 == 0b1000 && funct3 == 0b011:
		ins.Mnem = MnemSra
	case funct4 == 0b0001 && funct3 == 0b100:
		ins.Mnem = MnemOr
	case funct4 == 0b0000 && funct3 == 0b101:
		ins.Mnem = MnemAnd
	case funct4 == 0b0000 && funct3 == 0b110:
		ins.Mnem = MnemXor
	case funct4 == 0b0000 && funct3 == 0b111:
		ins.Mnem = MnemMv
	case funct4 == 0b0100 && funct3 == 0b000:
		ins.Mnem = MnemJr
	case funct4 == 0b1000 && funct3 == 0b000:
		ins.Mnem = MnemJalr
	default:
		ins.Family = FamilyUnknown
	}
}

func decodeI(ins *Instruction) {
	ins.Family = FamilyI
	word := ins.Word
	imm7 := (word >> 9) & 0x7F
	imm3 := (word >> 13) & 0x7
	rdrs1 := int((word >> 6) & 0x7)
	funct3 := (word >> 3) & 0x7

	ins.Rd, ins.Rs1 = rdrs1, rdrs1
	ins.Imm7 = imm7

	if imm7&0x40 != 0 {
		ins.Imm = int16(imm7 | 0xFF80)
	} else {
		ins.Imm = int16(imm7)
	}

	switch funct3 {
	case 0b000:
		ins.Mnem = MnemAddi
	case 0b001:
		ins.Mnem = MnemSlti
	case 0b010:
		ins.Mnem = MnemSltui
	case 0b011:
		ins.Shamt = imm7 & 0xF
		switch imm3 {
		case 0b001:
			ins.Mnem = MnemSlli
		case 0b010:
			ins.Mnem = MnemSrli
		case 0b100:
			ins.Mnem = MnemSrai
		default:
			ins.Family = FamilyUnknown
		}
	case 0b100:
		ins.Mnem = MnemOri
	case 0b101:
		ins.Mnem = MnemAndi
	case 0b110:
		ins.Mnem = MnemXori
	case 0b111:
		ins.Mnem = MnemLi
	default:
		ins.Family = FamilyUnknown
	}
}

func decodeB(ins *Instruction) {
	ins.Family = FamilyB
	word := ins.Word
	ins.Imm = signExtend4((word >> 12) & 0xF)
	ins.Rs2 = int((word >> 9) & 0x7)
	ins.Rs1 = int((word >> 6) & 0x7)
	funct3 := (word >> 3) & 0x7

	switch funct3 {
	case 0b000:
		ins.Mnem = MnemBeq
	case 0b001:
		ins.Mnem = MnemBne
	case 0b010:
		ins.Mnem = MnemBz
	case 0b011:
		ins.Mnem = MnemBnz
	case 0b100:
		ins.Mnem = MnemBlt
	case 0b101:
		ins.Mnem = MnemBge
	case 0b110:
		ins.Mnem = MnemBltu
	case 0b111:
		ins.Mnem = MnemBgeu
	default:
		ins.Family = FamilyUnknown
	}
}

// decodeS reads the 4-bit store offset as signed, per SPEC_FULL.md §4.1's
// explicit "signed(offset)" contract (the reference C++ source stores this
// field in an int8_t without actually sign-extending it, an apparent bug
// the distilled specification corrects).
func decodeS(ins *Instruction) {
	ins.Family = FamilyS
	word := ins.Word
	ins.Imm = signExtend4((word >> 12) & 0xF)
	ins.Rs2 = int((word >> 9) & 0x7) // value register
	ins.Rs1 = int((word >> 6) & 0x7) // base register
	funct3 := (word >> 3) & 0x7

	switch funct3 {
	case 0b000:
		ins.Mnem = MnemSb
	case 0b001:
		ins.Mnem = MnemSw
	default:
		ins.Family = FamilyUnknown
	}
}

func decodeL(ins *Instruction) {
	ins.Family = FamilyL
	word := ins.Word
	ins.Imm = signExtend4((word >> 12) & 0xF)
	ins.Rs2 = int((word >> 9) & 0x7) // base register
	ins.Rd = int((word >> 6) & 0x7)
	funct3 := (word >> 3) & 0x7

	switch funct3 {
	case 0b000:
		ins.Mnem = MnemLb
	case 0b001:
		ins.Mnem = MnemLw
	case 0b100:
		ins.Mnem = MnemLbu
	default:
		ins.Family = FamilyUnknown
	}
}

func decodeJ(ins *Instruction) {
	ins.Family = FamilyJ
	word := ins.Word
	fbit := (word >> 15) & 0x1
	imm6 := (word >> 9) & 0x3F
	ins.Rd = int((word >> 6) & 0x7)
	imm3 := (word >> 3) & 0x7

	raw := (imm6 << 3) | imm3
	if raw&0x100 != 0 {
		ins.Imm = int16(raw | 0xFE00)
	} else {
		ins.Imm = int16(raw)
	}

	if fbit == 0 {
		ins.Mnem = MnemJ
	} else {
		ins.Mnem = MnemJal
	}
}

func decodeU(ins *Instruction) {
	ins.Family = FamilyU
	word := ins.Word
	fbit := (word >> 15) & 0x1
	immUpper := (word >> 9) & 0x3F
	ins.Rd = int((word >> 6) & 0x7)
	immLower := (word >> 3) & 0x7

	ins.Imm = int16((immUpper << 3) | immLower)

	if fbit == 0 {
		ins.Mnem = MnemLui
	} else {
		ins.Mnem = MnemAuipc
	}
}

func decodeSys(ins *Instruction) {
	ins.Family = FamilySys
	word := ins.Word
	service := (word >> 6) & 0x3FF
	funct3 := (word >> 3) & 0x7

	if funct3 == 0b000 {
		ins.Mnem = MnemEcall
		ins.Service = service
	} else {
		ins.Family = FamilyUnknown
	}
}
