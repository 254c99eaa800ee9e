// Package disasm renders decoded Z16 instructions to their canonical
// assembly text and walks a memory image linearly, classifying each region
// as an embedded string, zero padding, an instruction, or raw data.
package disasm
