package cpu

// Flag is a single bit in the P register.
type Flag uint8

const (
	P_NEGATIVE  = Flag(0x80)
	P_OVERFLOW  = Flag(0x40)
	P_S1        = Flag(0x20) // Always 1 when pushed.
	P_B         = Flag(0x10) // Only set when pushed by BRK/PHP. Never tested.
	P_DECIMAL   = Flag(0x08)
	P_INTERRUPT = Flag(0x04)
	P_ZERO      = Flag(0x02)
	P_CARRY     = Flag(0x01)
)

// Set turns on the given flag.
func (p *Processor) Set(f Flag) {
	p.P |= uint8(f)
}

// Clear turns off the given flag.
func (p *Processor) Clear(f Flag) {
	p.P &^= uint8(f)
}

// SetIf sets the flag if cond is true and clears it otherwise.
func (p *Processor) SetIf(f Flag, cond bool) {
	if cond {
		p.Set(f)
		return
	}
	p.Clear(f)
}

// IsSet returns true if the given flag is on.
func (p *Processor) IsSet(f Flag) bool {
	return p.P&uint8(f) != 0x00
}

// carry returns the carry flag as a 0 or 1 value for arithmetic.
func (p *Processor) carry() uint8 {
	return p.P & uint8(P_CARRY)
}

// zeroNegativeCheck sets Z if val is zero and N from bit 7 of val.
// Used after every load, transfer, increment/decrement and logic instruction.
func (p *Processor) zeroNegativeCheck(val uint8) {
	p.SetIf(P_ZERO, val == 0x00)
	p.SetIf(P_NEGATIVE, val&0x80 != 0x00)
}

// overflowCheck sets the V flag if the result of the ALU operation
// caused a two's complement sign change.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (p *Processor) overflowCheck(reg uint8, arg uint8, res uint8) {
	// If the originals signs differ from the end sign bit
	p.SetIf(P_OVERFLOW, (reg^res)&(arg^res)&0x80 != 0x00)
}

// FlagString renders a P value as NV-BDIZC with set flags in upper case.
func FlagString(v uint8) string {
	const names = "NV-BDIZC"
	out := []byte("nv-bdizc")
	for i := range out {
		if v&(0x80>>uint(i)) != 0 {
			out[i] = names[i]
		}
	}
	return string(out)
}
