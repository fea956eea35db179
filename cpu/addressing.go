package cpu

import (
	"github.com/jmchacon/interp6502/memory"
)

// AddressingMode is an enumeration of the ways an instruction locates its operand.
type AddressingMode int

const (
	MODE_IMPLICIT    AddressingMode = iota // No operand.
	MODE_ACCUMULATOR                       // Operates on A.
	MODE_IMMEDIATE                         // #i
	MODE_ZP                                // d
	MODE_ZPX                               // d,x
	MODE_ZPY                               // d,y
	MODE_ABSOLUTE                          // a
	MODE_ABSOLUTEX                         // a,x
	MODE_ABSOLUTEY                         // a,y
	MODE_INDIRECT                          // (a)
	MODE_INDIRECTX                         // (d,x)
	MODE_INDIRECTY                         // (d),y
	MODE_RELATIVE                          // *+r
	MODE_MAX                               // End of mode enumerations.
)

var modeNames = [...]string{
	MODE_IMPLICIT:    "IMPLICIT",
	MODE_ACCUMULATOR: "ACCUMULATOR",
	MODE_IMMEDIATE:   "IMMEDIATE",
	MODE_ZP:          "ZP",
	MODE_ZPX:         "ZPX",
	MODE_ZPY:         "ZPY",
	MODE_ABSOLUTE:    "ABSOLUTE",
	MODE_ABSOLUTEX:   "ABSOLUTEX",
	MODE_ABSOLUTEY:   "ABSOLUTEY",
	MODE_INDIRECT:    "INDIRECT",
	MODE_INDIRECTX:   "INDIRECTX",
	MODE_INDIRECTY:   "INDIRECTY",
	MODE_RELATIVE:    "RELATIVE",
}

func (m AddressingMode) String() string {
	if m < MODE_IMPLICIT || m >= MODE_MAX {
		return "INVALID"
	}
	return modeNames[m]
}

// OperandBytes returns how many bytes follow the opcode for this mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case MODE_IMPLICIT, MODE_ACCUMULATOR:
		return 0
	case MODE_ABSOLUTE, MODE_ABSOLUTEX, MODE_ABSOLUTEY, MODE_INDIRECT:
		return 2
	}
	return 1
}

// references returns true if the mode produces an effective address in memory.
func (m AddressingMode) references() bool {
	switch m {
	case MODE_IMPLICIT, MODE_ACCUMULATOR, MODE_IMMEDIATE, MODE_RELATIVE:
		return false
	}
	return true
}

// instructionMode is an enumeration indicating the type of bus access an instruction
// does with its effective address. Used below in addressing modes.
type instructionMode int

const (
	kNO_ACCESS         instructionMode = iota // Implied ops and jumps which only want the address.
	kLOAD_INSTRUCTION                         // Reads the effective address.
	kRMW_INSTRUCTION                          // Reads and then writes back (done by the handler).
	kSTORE_INSTRUCTION                        // Only writes.
)

// operand is the result of resolving an addressing mode for one instruction.
// It's built fresh every step and thrown away afterwards.
type operand struct {
	mode        AddressingMode
	addr        uint16 // Effective address (or branch target for relative).
	val         uint8  // Operand for immediate/accumulator modes and loads.
	pageCrossed bool   // Indexing moved addr onto a different page than the base.
	extraCycles int    // Added by branches when taken.
}

// resolve consumes any operand bytes at PC for the given mode and computes the
// effective address. For load instructions the operand is also read from memory.
// RMW and store instructions never have the resolver touch the target so the
// handler controls exactly which bus cycles happen there.
func (p *Processor) resolve(mode AddressingMode, access instructionMode) operand {
	o := operand{mode: mode}
	switch mode {
	case MODE_IMPLICIT:
	case MODE_ACCUMULATOR:
		o.val = p.A
	case MODE_IMMEDIATE:
		o.val = p.fetch()
	case MODE_ZP:
		o.addr = memory.ZeroPage(p.fetch())
	case MODE_ZPX:
		// Done as a uint8 so it wraps within the zero page.
		o.addr = memory.ZeroPage(p.fetch() + p.X)
	case MODE_ZPY:
		o.addr = memory.ZeroPage(p.fetch() + p.Y)
	case MODE_ABSOLUTE:
		o.addr = p.fetchWord()
	case MODE_ABSOLUTEX:
		o.addr, o.pageCrossed = indexed(p.fetchWord(), p.X)
	case MODE_ABSOLUTEY:
		o.addr, o.pageCrossed = indexed(p.fetchWord(), p.Y)
	case MODE_INDIRECT:
		o.addr = p.readIndirect(p.fetchWord())
	case MODE_INDIRECTX:
		o.addr = memory.ReadZPWord(p.Ram, p.fetch()+p.X)
	case MODE_INDIRECTY:
		o.addr, o.pageCrossed = indexed(memory.ReadZPWord(p.Ram, p.fetch()), p.Y)
	case MODE_RELATIVE:
		off := p.fetch()
		// PC is already past the offset here. Sign extend it for the add.
		o.addr = p.PC + uint16(int16(int8(off)))
	}
	if access == kLOAD_INSTRUCTION && mode.references() {
		o.val = p.Ram.Read(o.addr)
	}
	return o
}

// indexed adds reg to base and reports whether the result landed on a different page.
func indexed(base uint16, reg uint8) (uint16, bool) {
	addr := base + uint16(reg)
	return addr, !memory.SamePage(base, addr)
}

// readIndirect reads the pointer at addr the way NMOS parts do. If the pointer
// straddles a page (low byte at 0xXXFF) the high byte comes from the start of the
// same page instead of the next one.
func (p *Processor) readIndirect(addr uint16) uint16 {
	lo := p.Ram.Read(addr)
	hi := p.Ram.Read((addr & memory.PAGE_MASK) | uint16(uint8(addr&0xFF)+1))
	return (uint16(hi) << 8) | uint16(lo)
}
