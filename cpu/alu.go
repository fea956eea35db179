package cpu

// decimal returns true if ADC/SBC should use BCD math. The Ricoh version
// didn't implement BCD (used in NES) even though D can be set.
func (p *Processor) decimal() bool {
	return p.IsSet(P_DECIMAL) && p.CPUType != CPU_NMOS_RICOH
}

// adc implements ADC by picking binary or BCD mode.
func (p *Processor) adc(arg uint8) {
	if p.decimal() {
		p.adcDecimal(arg)
		return
	}
	p.adcBinary(arg)
}

// sbc implements SBC by picking binary or BCD mode.
func (p *Processor) sbc(arg uint8) {
	if p.decimal() {
		p.sbcDecimal(arg)
		return
	}
	p.sbcBinary(arg)
}

// adcBinary adds arg and C to A setting N,V,Z,C.
func (p *Processor) adcBinary(arg uint8) {
	sum := uint16(p.A) + uint16(arg) + uint16(p.carry())
	res := uint8(sum & 0xFF)
	p.overflowCheck(p.A, arg, res)
	p.SetIf(P_CARRY, sum > 0xFF)
	p.loadRegister(&p.A, res)
}

// sbcBinary is just ADC of the ones complement of arg.
func (p *Processor) sbcBinary(arg uint8) {
	p.adcBinary(^arg)
}

// adcDecimal does packed BCD addition.
// BCD details - http://6502.org/tutorials/decimal_mode.html
// V is computed from the binary sum as NMOS parts do. Z/N come from the BCD result.
func (p *Processor) adcDecimal(arg uint8) {
	carry := p.carry()
	p.overflowCheck(p.A, arg, p.A+arg+carry)

	lo := (p.A & 0x0F) + (arg & 0x0F) + carry
	adjust := uint8(0)
	// Low nibble fixup
	if lo > 0x09 {
		lo += 0x06
		adjust = 1
	}
	hi := (p.A >> 4) + (arg >> 4) + adjust
	// High nibble fixup
	p.SetIf(P_CARRY, hi > 0x09)
	if hi > 0x09 {
		hi += 0x06
	}
	p.loadRegister(&p.A, (hi<<4)|(lo&0x0F))
}

// sbcDecimal does packed BCD subtraction. A clear carry is a borrow.
// V is computed from the binary difference.
func (p *Processor) sbcDecimal(arg uint8) {
	carry := p.carry()
	p.overflowCheck(p.A, ^arg, p.A+^arg+carry)

	borrow := 1 - int(carry)
	lo := int(p.A&0x0F) - int(arg&0x0F) - borrow
	hi := int(p.A>>4) - int(arg>>4)
	// Low nibble fixup and borrow from the high nibble.
	if lo < 0 {
		lo -= 0x06
		hi--
	}
	p.SetIf(P_CARRY, hi >= 0)
	if hi < 0 {
		hi -= 0x06
	}
	p.loadRegister(&p.A, uint8(hi<<4)|uint8(lo&0x0F))
}

// compare implements the logic for all CMP/CPX/CPY instructions and
// sets flags accordingly from the results.
func (p *Processor) compare(reg uint8, val uint8) {
	p.SetIf(P_CARRY, reg >= val)
	p.zeroNegativeCheck(reg - val)
}

// modify runs fn over the operand and stores the result back where it came from.
// For accumulator mode that's A, otherwise it's a read/modify/write on memory.
// Returns the original and new values so callers can derive flags.
func (p *Processor) modify(o *operand, fn func(uint8) uint8) (uint8, uint8) {
	if o.mode == MODE_ACCUMULATOR {
		old := p.A
		p.A = fn(old)
		return old, p.A
	}
	return p.rmw(o.addr, fn)
}

// rmw reads addr, applies fn and writes the result back. These are two separate
// bus operations since devices mapped at addr can observe both.
func (p *Processor) rmw(addr uint16, fn func(uint8) uint8) (uint8, uint8) {
	old := p.Ram.Read(addr)
	new := fn(old)
	p.Ram.Write(addr, new)
	return old, new
}

// Shift/rotate cores. Carry in (for rotates) is passed explicitly so these stay pure.

func asl(v uint8) uint8 {
	return v << 1
}

func lsr(v uint8) uint8 {
	return v >> 1
}

func rol(v, carry uint8) uint8 {
	return (v << 1) | carry
}

func ror(v, carry uint8) uint8 {
	return (v >> 1) | (carry << 7)
}
