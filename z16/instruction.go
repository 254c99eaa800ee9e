package z16

// Family identifies one of the eight Z16 encoding families, selected by the
// low 3 bits of an instruction word.
//
//go:generate go tool stringer -linecomment -type=Family
type Family int

const (
	FamilyR       Family = iota // R
	FamilyI                     // I
	FamilyB                     // B
	FamilyS                     // S
	FamilyL                     // L
	FamilyJ                     // J
	FamilyU                     // U
	FamilySys                   // SYS
	FamilyUnknown               // unknown
)

// Mnemonic identifies the specific operation decoded within a Family.
// MnemNone marks a word whose field combination is not recognised.
//
//go:generate go tool stringer -linecomment -type=Mnemonic
type Mnemonic int

const (
	MnemNone  Mnemonic = iota // ???
	MnemAdd                   // add
	MnemSub                   // sub
	MnemSlt                   // slt
	MnemSltu                  // sltu
	MnemSll                   // sll
	MnemSrl                   // srl
	MnemSra                   // sra
	MnemOr                    // or
	MnemAnd                   // and
	MnemXor                   // xor
	MnemMv                    // mv
	MnemJr                    // jr
	MnemJalr                  // jalr
	MnemAddi                  // addi
	MnemSlti                  // slti
	MnemSltui                 // sltui
	MnemSlli                  // slli
	MnemSrli                  // srli
	MnemSrai                  // srai
	MnemOri                   // ori
	MnemAndi                  // andi
	MnemXori                  // xori
	MnemLi                    // li
	MnemBeq                   // beq
	MnemBne                   // bne
	MnemBz                    // bz
	MnemBnz                   // bnz
	MnemBlt                   // blt
	MnemBge                   // bge
	MnemBltu                  // bltu
	MnemBgeu                  // bgeu
	MnemSb                    // sb
	MnemSw                    // sw
	MnemLb                    // lb
	MnemLw                    // lw
	MnemLbu                   // lbu
	MnemJ                     // j
	MnemJal                   // jal
	MnemLui                   // lui
	MnemAuipc                 // auipc
	MnemEcall                 // ecall
)

// Instruction is the decoded form of one 16-bit Z16 word: a tagged variant
// produced once by Decode and consumed unchanged by both the executor and
// the disassembler, so the two can never disagree about sign-extension or
// shift-amount masking.
//
// Not every field is meaningful for every Mnemonic; which fields apply is
// determined entirely by Family and Mnemonic, the same way the source's own
// opcode/funct3/funct4 switch selects which bits matter.
type Instruction struct {
	Addr uint16
	Word uint16

	Family Family
	Mnem   Mnemonic

	Rd, Rs1, Rs2 int   // register indices; meaning depends on Family
	Imm          int16 // sign-extended immediate or offset
	Imm7         uint16 // raw unsigned 7-bit I-type immediate field (sltui, §9)
	Shamt        uint16 // shift amount (I-type shifts only)
	Service      uint16 // SYS-type service number
}

// BranchTarget computes the PC-relative target for a B-type instruction,
// preserving the asymmetry in which comparison branches add an extra 2 and
// bz/bnz do not (SPEC_FULL.md §9).
func (ins Instruction) BranchTarget() uint16 {
	target := ins.Addr + uint16(ins.Imm*2)
	switch ins.Mnem {
	case MnemBz, MnemBnz:
		return target
	default:
		return target + 2
	}
}

// JumpTarget computes the PC-relative target for a J-type instruction. Both
// the plain j form and jal use the same formula, evaluated at the
// instruction's own address, so the disassembler and the executor agree by
// construction (§9 Open Question, resolved).
func (ins Instruction) JumpTarget() uint16 {
	return ins.Addr + uint16(ins.Imm*2)
}
