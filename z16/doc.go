// Package z16 implements the core of a Z16 simulator: a bounds-checked
// 64 KiB memory, an 8-register file with fixed ABI names, a pure decoder
// from instruction word to a tagged Instruction value, and a single-step
// executor. The decoder is shared, unchanged, by the disasm package so the
// two paths cannot disagree on sign-extension or shift masking.
package z16
