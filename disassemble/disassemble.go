// Package disassemble implements a disassembler for 6502 opcodes
// driven by the CPU dispatch table so both always agree on
// mnemonics, addressing modes and instruction lengths.
package disassemble

import (
	"fmt"

	"github.com/jmchacon/interp6502/cpu"
	"github.com/jmchacon/interp6502/memory"
)

// Step will take the given PC value and disassemble the instruction at that location
// returning a string for the disassembly and the bytes forward the PC should move to get to
// the next instruction. This does not interpret the instructions so LDA, JMP, LDA in memory
// will disassemble as that sequence and not follow the JMP.
// This always reads 2 bytes past the current PC (wrapping at 64k) regardless of length.
func Step(pc uint16, r memory.Bank) (string, int) {
	o := r.Read(pc)
	// All instructions read a 2nd byte generally so just do that now.
	pc1 := r.Read(pc + 1)
	// And preread the 2nd byte for 3 byte instructions.
	pc2 := r.Read(pc + 2)

	op := cpu.Lookup(o)
	mne := op.Mnemonic
	if op.Undocumented {
		// Marked the way most assemblers mark illegal opcodes.
		mne = "*" + mne
	}
	out := fmt.Sprintf("%.4X %.2X ", pc, o)
	switch op.Mode {
	case cpu.MODE_IMMEDIATE:
		out += fmt.Sprintf("%.2X      %4s #%.2X", pc1, mne, pc1)
	case cpu.MODE_ZP:
		out += fmt.Sprintf("%.2X      %4s %.2X", pc1, mne, pc1)
	case cpu.MODE_ZPX:
		out += fmt.Sprintf("%.2X      %4s %.2X,X", pc1, mne, pc1)
	case cpu.MODE_ZPY:
		out += fmt.Sprintf("%.2X      %4s %.2X,Y", pc1, mne, pc1)
	case cpu.MODE_INDIRECTX:
		out += fmt.Sprintf("%.2X      %4s (%.2X,X)", pc1, mne, pc1)
	case cpu.MODE_INDIRECTY:
		out += fmt.Sprintf("%.2X      %4s (%.2X),Y", pc1, mne, pc1)
	case cpu.MODE_ABSOLUTE:
		out += fmt.Sprintf("%.2X %.2X   %4s %.2X%.2X", pc1, pc2, mne, pc2, pc1)
	case cpu.MODE_ABSOLUTEX:
		out += fmt.Sprintf("%.2X %.2X   %4s %.2X%.2X,X", pc1, pc2, mne, pc2, pc1)
	case cpu.MODE_ABSOLUTEY:
		out += fmt.Sprintf("%.2X %.2X   %4s %.2X%.2X,Y", pc1, pc2, mne, pc2, pc1)
	case cpu.MODE_INDIRECT:
		out += fmt.Sprintf("%.2X %.2X   %4s (%.2X%.2X)", pc1, pc2, mne, pc2, pc1)
	case cpu.MODE_ACCUMULATOR:
		out += fmt.Sprintf("        %4s A", mne)
	case cpu.MODE_RELATIVE:
		// Sign extend the offset so it can be added to the PC.
		target := pc + 2 + uint16(int16(int8(pc1)))
		out += fmt.Sprintf("%.2X      %4s %.2X (%.4X)", pc1, mne, pc1, target)
	default:
		if op.Bytes == 2 {
			// BRK reads and skips a padding byte.
			out += fmt.Sprintf("%.2X      %4s #%.2X", pc1, mne, pc1)
			break
		}
		out += fmt.Sprintf("        %4s", mne)
	}
	return out, int(op.Bytes)
}
