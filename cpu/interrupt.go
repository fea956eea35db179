package cpu

import (
	"github.com/jmchacon/interp6502/memory"
)

// reset runs the RESET sequence and returns the cycles taken.
func (p *Processor) reset() int {
	p.resetPending = false
	// Most registers unaffected but stack acts like PC/P have been pushed so decrement by 3 bytes.
	p.S -= 3
	// Disable interrupts
	p.Set(P_INTERRUPT)
	// Load PC from reset vector
	p.PC = memory.ReadWord(p.Ram, RESET_VECTOR)
	p.Cycles += kINTERRUPT_CYCLES
	return kINTERRUPT_CYCLES
}

// interrupt runs a hardware interrupt (NMI or IRQ) entry through the given
// vector and returns the cycles taken.
func (p *Processor) interrupt(vector uint16) int {
	p.pushInterrupt(vector, false)
	p.Cycles += kINTERRUPT_CYCLES
	return kINTERRUPT_CYCLES
}

// pushInterrupt does all the heavy lifting for any interrupt processing.
// i.e. pushing values onto the stack and loading PC with the right address.
// brk determines whether B is set in the pushed flags. S1 is always set.
// The live flags are only changed by setting I.
func (p *Processor) pushInterrupt(vector uint16, brk bool) {
	p.pushStackWord(p.PC)
	push := p.P | uint8(P_S1)
	if brk {
		push |= uint8(P_B)
	} else {
		push &^= uint8(P_B)
	}
	p.pushStack(push)
	p.Set(P_INTERRUPT)
	p.PC = memory.ReadWord(p.Ram, vector)
}
