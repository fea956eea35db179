package cpu

// Instruction handlers. Each one runs after the addressing mode has been
// resolved into o and only touches the flags the instruction documents.

// Loads, stores and transfers.

func (p *Processor) iLDA(o *operand) { p.loadRegister(&p.A, o.val) }
func (p *Processor) iLDX(o *operand) { p.loadRegister(&p.X, o.val) }
func (p *Processor) iLDY(o *operand) { p.loadRegister(&p.Y, o.val) }

func (p *Processor) iSTA(o *operand) { p.Ram.Write(o.addr, p.A) }
func (p *Processor) iSTX(o *operand) { p.Ram.Write(o.addr, p.X) }
func (p *Processor) iSTY(o *operand) { p.Ram.Write(o.addr, p.Y) }

func (p *Processor) iTAX(_ *operand) { p.loadRegister(&p.X, p.A) }
func (p *Processor) iTXA(_ *operand) { p.loadRegister(&p.A, p.X) }
func (p *Processor) iTAY(_ *operand) { p.loadRegister(&p.Y, p.A) }
func (p *Processor) iTYA(_ *operand) { p.loadRegister(&p.A, p.Y) }
func (p *Processor) iTSX(_ *operand) { p.loadRegister(&p.X, p.S) }

// iTXS is the only transfer which doesn't touch flags.
func (p *Processor) iTXS(_ *operand) { p.S = p.X }

// Logic.

func (p *Processor) iAND(o *operand) { p.loadRegister(&p.A, p.A&o.val) }
func (p *Processor) iORA(o *operand) { p.loadRegister(&p.A, p.A|o.val) }
func (p *Processor) iEOR(o *operand) { p.loadRegister(&p.A, p.A^o.val) }

// iBIT implements the BIT instruction for AND'ing against A
// and setting N/V based on the value. A isn't changed.
func (p *Processor) iBIT(o *operand) {
	p.SetIf(P_ZERO, p.A&o.val == 0x00)
	p.SetIf(P_NEGATIVE, o.val&0x80 != 0x00)
	// Copy V from bit 6
	p.SetIf(P_OVERFLOW, o.val&0x40 != 0x00)
}

// Arithmetic.

func (p *Processor) iADC(o *operand) { p.adc(o.val) }
func (p *Processor) iSBC(o *operand) { p.sbc(o.val) }

func (p *Processor) iCMP(o *operand) { p.compare(p.A, o.val) }
func (p *Processor) iCPX(o *operand) { p.compare(p.X, o.val) }
func (p *Processor) iCPY(o *operand) { p.compare(p.Y, o.val) }

// Shifts and rotates. Carry always comes from the bit shifted out of the original value.

func (p *Processor) iASL(o *operand) {
	old, new := p.modify(o, asl)
	p.SetIf(P_CARRY, old&0x80 != 0x00)
	p.zeroNegativeCheck(new)
}

func (p *Processor) iLSR(o *operand) {
	old, new := p.modify(o, lsr)
	p.SetIf(P_CARRY, old&0x01 != 0x00)
	p.zeroNegativeCheck(new)
}

func (p *Processor) iROL(o *operand) {
	carry := p.carry()
	old, new := p.modify(o, func(v uint8) uint8 { return rol(v, carry) })
	p.SetIf(P_CARRY, old&0x80 != 0x00)
	p.zeroNegativeCheck(new)
}

func (p *Processor) iROR(o *operand) {
	carry := p.carry()
	old, new := p.modify(o, func(v uint8) uint8 { return ror(v, carry) })
	p.SetIf(P_CARRY, old&0x01 != 0x00)
	p.zeroNegativeCheck(new)
}

// Increments and decrements.

func (p *Processor) iINC(o *operand) {
	_, new := p.modify(o, func(v uint8) uint8 { return v + 1 })
	p.zeroNegativeCheck(new)
}

func (p *Processor) iDEC(o *operand) {
	_, new := p.modify(o, func(v uint8) uint8 { return v - 1 })
	p.zeroNegativeCheck(new)
}

func (p *Processor) iINX(_ *operand) { p.loadRegister(&p.X, p.X+1) }
func (p *Processor) iINY(_ *operand) { p.loadRegister(&p.Y, p.Y+1) }
func (p *Processor) iDEX(_ *operand) { p.loadRegister(&p.X, p.X-1) }
func (p *Processor) iDEY(_ *operand) { p.loadRegister(&p.Y, p.Y-1) }

// Branches.

// branch moves PC to the relative target if taken. A taken branch costs one
// more cycle and another if the target is on a different page than the
// instruction following the branch.
func (p *Processor) branch(o *operand, taken bool) {
	if !taken {
		return
	}
	o.extraCycles++
	if (p.PC & 0xFF00) != (o.addr & 0xFF00) {
		o.extraCycles++
	}
	p.PC = o.addr
}

func (p *Processor) iBPL(o *operand) { p.branch(o, !p.IsSet(P_NEGATIVE)) }
func (p *Processor) iBMI(o *operand) { p.branch(o, p.IsSet(P_NEGATIVE)) }
func (p *Processor) iBVC(o *operand) { p.branch(o, !p.IsSet(P_OVERFLOW)) }
func (p *Processor) iBVS(o *operand) { p.branch(o, p.IsSet(P_OVERFLOW)) }
func (p *Processor) iBCC(o *operand) { p.branch(o, !p.IsSet(P_CARRY)) }
func (p *Processor) iBCS(o *operand) { p.branch(o, p.IsSet(P_CARRY)) }
func (p *Processor) iBNE(o *operand) { p.branch(o, !p.IsSet(P_ZERO)) }
func (p *Processor) iBEQ(o *operand) { p.branch(o, p.IsSet(P_ZERO)) }

// Flag sets/clears.

func (p *Processor) iCLC(_ *operand) { p.Clear(P_CARRY) }
func (p *Processor) iSEC(_ *operand) { p.Set(P_CARRY) }
func (p *Processor) iCLD(_ *operand) { p.Clear(P_DECIMAL) }
func (p *Processor) iSED(_ *operand) { p.Set(P_DECIMAL) }
func (p *Processor) iCLI(_ *operand) { p.Clear(P_INTERRUPT) }
func (p *Processor) iSEI(_ *operand) { p.Set(P_INTERRUPT) }
func (p *Processor) iCLV(_ *operand) { p.Clear(P_OVERFLOW) }

// Stack.

func (p *Processor) iPHA(_ *operand) { p.pushStack(p.A) }
func (p *Processor) iPLA(_ *operand) { p.loadRegister(&p.A, p.popStack()) }

// iPHP pushes P with S1 and B forced on. The live register isn't changed.
func (p *Processor) iPHP(_ *operand) {
	p.pushStack(p.P | uint8(P_S1) | uint8(P_B))
}

// iPLP restores all 8 bits of P as they were pushed.
func (p *Processor) iPLP(_ *operand) {
	p.P = p.popStack()
}

// Jumps, subroutines and interrupts.

func (p *Processor) iJMP(o *operand) { p.PC = o.addr }

// iJSR pushes the address of the last byte of the JSR (PC-1 since the resolver
// already moved past it). RTS handles this by adding one to the popped PC value.
func (p *Processor) iJSR(o *operand) {
	p.pushStackWord(p.PC - 1)
	p.PC = o.addr
}

func (p *Processor) iRTS(_ *operand) {
	p.PC = p.popStackWord() + 1
}

// iRTI pops P and then PC as pushed by an interrupt entry.
func (p *Processor) iRTI(_ *operand) {
	p.P = p.popStack()
	p.PC = p.popStackWord()
}

// iBRK implements the BRK instruction and sets up and then calls the interrupt
// handler referenced at IRQ_VECTOR. The byte after BRK is skipped so the
// return address is the opcode address + 2.
func (p *Processor) iBRK(_ *operand) {
	p.PC++
	p.pushInterrupt(IRQ_VECTOR, true)
}

// iNOP does nothing. NOPs which take an operand still had it read by the resolver.
func (p *Processor) iNOP(_ *operand) {}

// Undocumented NMOS opcodes which behave consistently across parts.
// Descriptions from http://www.ffd2.com/fridge/docs/6502-NMOS.extra.opcodes
// and http://nesdev.com/6502_cpu.txt

// iLAX loads A and X with the same value.
func (p *Processor) iLAX(o *operand) {
	p.loadRegister(&p.A, o.val)
	p.loadRegister(&p.X, o.val)
}

// iSAX stores A AND X without touching flags.
func (p *Processor) iSAX(o *operand) { p.Ram.Write(o.addr, p.A&p.X) }

// iDCP decrements memory and then does a CMP with A.
func (p *Processor) iDCP(o *operand) {
	_, new := p.modify(o, func(v uint8) uint8 { return v - 1 })
	p.compare(p.A, new)
}

// iISC increments memory and then does an SBC with it.
func (p *Processor) iISC(o *operand) {
	_, new := p.modify(o, func(v uint8) uint8 { return v + 1 })
	p.sbc(new)
}

// iSLO does an ASL on memory and then OR's it into A.
func (p *Processor) iSLO(o *operand) {
	old, new := p.modify(o, asl)
	p.SetIf(P_CARRY, old&0x80 != 0x00)
	p.loadRegister(&p.A, p.A|new)
}

// iRLA does a ROL on memory and then AND's it into A.
func (p *Processor) iRLA(o *operand) {
	carry := p.carry()
	old, new := p.modify(o, func(v uint8) uint8 { return rol(v, carry) })
	p.SetIf(P_CARRY, old&0x80 != 0x00)
	p.loadRegister(&p.A, p.A&new)
}

// iSRE does an LSR on memory and then EOR's it into A.
func (p *Processor) iSRE(o *operand) {
	old, new := p.modify(o, lsr)
	p.SetIf(P_CARRY, old&0x01 != 0x00)
	p.loadRegister(&p.A, p.A^new)
}

// iRRA does a ROR on memory and then ADC's it into A using the carry out of the ROR.
func (p *Processor) iRRA(o *operand) {
	carry := p.carry()
	old, new := p.modify(o, func(v uint8) uint8 { return ror(v, carry) })
	p.SetIf(P_CARRY, old&0x01 != 0x00)
	p.adc(new)
}

// iANC AND's into A and then copies N into C.
func (p *Processor) iANC(o *operand) {
	p.loadRegister(&p.A, p.A&o.val)
	p.SetIf(P_CARRY, p.A&0x80 != 0x00)
}

// iALR AND's into A and then does LSR A.
func (p *Processor) iALR(o *operand) {
	t := p.A & o.val
	p.SetIf(P_CARRY, t&0x01 != 0x00)
	p.loadRegister(&p.A, lsr(t))
}

// iARR AND's into A and then does ROR A except C and V come from the adder.
func (p *Processor) iARR(o *operand) {
	t := p.A & o.val
	p.loadRegister(&p.A, ror(t, p.carry()))
	if !p.decimal() {
		// C is bit 6, V is bit 6 ^ bit 5.
		p.SetIf(P_CARRY, p.A&0x40 != 0x00)
		p.SetIf(P_OVERFLOW, ((p.A>>6)^(p.A>>5))&0x01 != 0x00)
		return
	}
	// If bit 6 changed state between the AND result and the rotate set V.
	p.SetIf(P_OVERFLOW, (t^p.A)&0x40 != 0x00)
	// Now do possible odd BCD fixups and set C
	ah := t >> 4
	al := t & 0x0F
	if al+(al&0x01) > 0x05 {
		p.A = (p.A & 0xF0) | ((p.A + 0x06) & 0x0F)
	}
	if ah+(ah&0x01) > 0x05 {
		p.Set(P_CARRY)
		p.A += 0x60
	} else {
		p.Clear(P_CARRY)
	}
}

// iAXS sets X to (A AND X) - arg without borrow. C is set as for CMP and
// D/V are ignored.
func (p *Processor) iAXS(o *operand) {
	t := p.A & p.X
	p.SetIf(P_CARRY, t >= o.val)
	p.loadRegister(&p.X, t-o.val)
}
