package cpu

// Opcode is the static description of one of the 256 opcode values.
type Opcode struct {
	Mnemonic     string
	Mode         AddressingMode
	Bytes        uint8 // Instruction length including the opcode byte.
	Cycles       uint8 // Base cycle cost.
	PageCross    bool  // Charges an extra cycle when indexing (or a taken branch) crosses a page.
	Undocumented bool  // Not part of the published NMOS instruction set.
	Implemented  bool  // False for placeholders which execute as a NOP and report UnimplementedOpcode.
}

// handler runs an instruction once its operand has been resolved.
type handler func(*Processor, *operand)

// opcode is a dispatch table entry.
type opcode struct {
	Opcode
	access  instructionMode
	handler handler
}

// Lookup returns the table entry for op. Every value has one.
func Lookup(op uint8) Opcode {
	return opcodes[op].Opcode
}

func newOp(mnemonic string, mode AddressingMode, cycles uint8, access instructionMode, h handler) opcode {
	return opcode{
		Opcode: Opcode{
			Mnemonic:    mnemonic,
			Mode:        mode,
			Bytes:       uint8(1 + mode.OperandBytes()),
			Cycles:      cycles,
			Implemented: true,
		},
		access:  access,
		handler: h,
	}
}

// op is an instruction which either has no operand or only wants the address (jumps/branches).
func op(mnemonic string, mode AddressingMode, cycles uint8, h handler) opcode {
	return newOp(mnemonic, mode, cycles, kNO_ACCESS, h)
}

func loadOp(mnemonic string, mode AddressingMode, cycles uint8, h handler) opcode {
	return newOp(mnemonic, mode, cycles, kLOAD_INSTRUCTION, h)
}

func storeOp(mnemonic string, mode AddressingMode, cycles uint8, h handler) opcode {
	return newOp(mnemonic, mode, cycles, kSTORE_INSTRUCTION, h)
}

func rmwOp(mnemonic string, mode AddressingMode, cycles uint8, h handler) opcode {
	return newOp(mnemonic, mode, cycles, kRMW_INSTRUCTION, h)
}

// hlt is one of the opcodes which lock up the bus on a real part.
func hlt() opcode {
	return op("HLT", MODE_IMPLICIT, 2, (*Processor).iNOP).undocumented().unimplemented()
}

func (o opcode) cross() opcode {
	o.PageCross = true
	return o
}

func (o opcode) undocumented() opcode {
	o.Undocumented = true
	return o
}

func (o opcode) unimplemented() opcode {
	o.Implemented = false
	o.handler = (*Processor).iNOP
	return o
}

func (o opcode) size(n uint8) opcode {
	o.Bytes = n
	return o
}

var opcodes = [256]opcode{
	0x00: op("BRK", MODE_IMPLICIT, 7, (*Processor).iBRK).size(2),
	0x01: loadOp("ORA", MODE_INDIRECTX, 6, (*Processor).iORA),
	0x02: hlt(),
	0x03: rmwOp("SLO", MODE_INDIRECTX, 8, (*Processor).iSLO).undocumented(),
	0x04: loadOp("NOP", MODE_ZP, 3, (*Processor).iNOP).undocumented(),
	0x05: loadOp("ORA", MODE_ZP, 3, (*Processor).iORA),
	0x06: rmwOp("ASL", MODE_ZP, 5, (*Processor).iASL),
	0x07: rmwOp("SLO", MODE_ZP, 5, (*Processor).iSLO).undocumented(),
	0x08: op("PHP", MODE_IMPLICIT, 3, (*Processor).iPHP),
	0x09: loadOp("ORA", MODE_IMMEDIATE, 2, (*Processor).iORA),
	0x0A: op("ASL", MODE_ACCUMULATOR, 2, (*Processor).iASL),
	0x0B: loadOp("ANC", MODE_IMMEDIATE, 2, (*Processor).iANC).undocumented(),
	0x0C: loadOp("NOP", MODE_ABSOLUTE, 4, (*Processor).iNOP).undocumented(),
	0x0D: loadOp("ORA", MODE_ABSOLUTE, 4, (*Processor).iORA),
	0x0E: rmwOp("ASL", MODE_ABSOLUTE, 6, (*Processor).iASL),
	0x0F: rmwOp("SLO", MODE_ABSOLUTE, 6, (*Processor).iSLO).undocumented(),

	0x10: op("BPL", MODE_RELATIVE, 2, (*Processor).iBPL).cross(),
	0x11: loadOp("ORA", MODE_INDIRECTY, 5, (*Processor).iORA).cross(),
	0x12: hlt(),
	0x13: rmwOp("SLO", MODE_INDIRECTY, 8, (*Processor).iSLO).undocumented(),
	0x14: loadOp("NOP", MODE_ZPX, 4, (*Processor).iNOP).undocumented(),
	0x15: loadOp("ORA", MODE_ZPX, 4, (*Processor).iORA),
	0x16: rmwOp("ASL", MODE_ZPX, 6, (*Processor).iASL),
	0x17: rmwOp("SLO", MODE_ZPX, 6, (*Processor).iSLO).undocumented(),
	0x18: op("CLC", MODE_IMPLICIT, 2, (*Processor).iCLC),
	0x19: loadOp("ORA", MODE_ABSOLUTEY, 4, (*Processor).iORA).cross(),
	0x1A: op("NOP", MODE_IMPLICIT, 2, (*Processor).iNOP).undocumented(),
	0x1B: rmwOp("SLO", MODE_ABSOLUTEY, 7, (*Processor).iSLO).undocumented(),
	0x1C: loadOp("NOP", MODE_ABSOLUTEX, 4, (*Processor).iNOP).undocumented().cross(),
	0x1D: loadOp("ORA", MODE_ABSOLUTEX, 4, (*Processor).iORA).cross(),
	0x1E: rmwOp("ASL", MODE_ABSOLUTEX, 7, (*Processor).iASL),
	0x1F: rmwOp("SLO", MODE_ABSOLUTEX, 7, (*Processor).iSLO).undocumented(),

	0x20: op("JSR", MODE_ABSOLUTE, 6, (*Processor).iJSR),
	0x21: loadOp("AND", MODE_INDIRECTX, 6, (*Processor).iAND),
	0x22: hlt(),
	0x23: rmwOp("RLA", MODE_INDIRECTX, 8, (*Processor).iRLA).undocumented(),
	0x24: loadOp("BIT", MODE_ZP, 3, (*Processor).iBIT),
	0x25: loadOp("AND", MODE_ZP, 3, (*Processor).iAND),
	0x26: rmwOp("ROL", MODE_ZP, 5, (*Processor).iROL),
	0x27: rmwOp("RLA", MODE_ZP, 5, (*Processor).iRLA).undocumented(),
	0x28: op("PLP", MODE_IMPLICIT, 4, (*Processor).iPLP),
	0x29: loadOp("AND", MODE_IMMEDIATE, 2, (*Processor).iAND),
	0x2A: op("ROL", MODE_ACCUMULATOR, 2, (*Processor).iROL),
	0x2B: loadOp("ANC", MODE_IMMEDIATE, 2, (*Processor).iANC).undocumented(),
	0x2C: loadOp("BIT", MODE_ABSOLUTE, 4, (*Processor).iBIT),
	0x2D: loadOp("AND", MODE_ABSOLUTE, 4, (*Processor).iAND),
	0x2E: rmwOp("ROL", MODE_ABSOLUTE, 6, (*Processor).iROL),
	0x2F: rmwOp("RLA", MODE_ABSOLUTE, 6, (*Processor).iRLA).undocumented(),

	0x30: op("BMI", MODE_RELATIVE, 2, (*Processor).iBMI).cross(),
	0x31: loadOp("AND", MODE_INDIRECTY, 5, (*Processor).iAND).cross(),
	0x32: hlt(),
	0x33: rmwOp("RLA", MODE_INDIRECTY, 8, (*Processor).iRLA).undocumented(),
	0x34: loadOp("NOP", MODE_ZPX, 4, (*Processor).iNOP).undocumented(),
	0x35: loadOp("AND", MODE_ZPX, 4, (*Processor).iAND),
	0x36: rmwOp("ROL", MODE_ZPX, 6, (*Processor).iROL),
	0x37: rmwOp("RLA", MODE_ZPX, 6, (*Processor).iRLA).undocumented(),
	0x38: op("SEC", MODE_IMPLICIT, 2, (*Processor).iSEC),
	0x39: loadOp("AND", MODE_ABSOLUTEY, 4, (*Processor).iAND).cross(),
	0x3A: op("NOP", MODE_IMPLICIT, 2, (*Processor).iNOP).undocumented(),
	0x3B: rmwOp("RLA", MODE_ABSOLUTEY, 7, (*Processor).iRLA).undocumented(),
	0x3C: loadOp("NOP", MODE_ABSOLUTEX, 4, (*Processor).iNOP).undocumented().cross(),
	0x3D: loadOp("AND", MODE_ABSOLUTEX, 4, (*Processor).iAND).cross(),
	0x3E: rmwOp("ROL", MODE_ABSOLUTEX, 7, (*Processor).iROL),
	0x3F: rmwOp("RLA", MODE_ABSOLUTEX, 7, (*Processor).iRLA).undocumented(),

	0x40: op("RTI", MODE_IMPLICIT, 6, (*Processor).iRTI),
	0x41: loadOp("EOR", MODE_INDIRECTX, 6, (*Processor).iEOR),
	0x42: hlt(),
	0x43: rmwOp("SRE", MODE_INDIRECTX, 8, (*Processor).iSRE).undocumented(),
	0x44: loadOp("NOP", MODE_ZP, 3, (*Processor).iNOP).undocumented(),
	0x45: loadOp("EOR", MODE_ZP, 3, (*Processor).iEOR),
	0x46: rmwOp("LSR", MODE_ZP, 5, (*Processor).iLSR),
	0x47: rmwOp("SRE", MODE_ZP, 5, (*Processor).iSRE).undocumented(),
	0x48: op("PHA", MODE_IMPLICIT, 3, (*Processor).iPHA),
	0x49: loadOp("EOR", MODE_IMMEDIATE, 2, (*Processor).iEOR),
	0x4A: op("LSR", MODE_ACCUMULATOR, 2, (*Processor).iLSR),
	0x4B: loadOp("ALR", MODE_IMMEDIATE, 2, (*Processor).iALR).undocumented(),
	0x4C: op("JMP", MODE_ABSOLUTE, 3, (*Processor).iJMP),
	0x4D: loadOp("EOR", MODE_ABSOLUTE, 4, (*Processor).iEOR),
	0x4E: rmwOp("LSR", MODE_ABSOLUTE, 6, (*Processor).iLSR),
	0x4F: rmwOp("SRE", MODE_ABSOLUTE, 6, (*Processor).iSRE).undocumented(),

	0x50: op("BVC", MODE_RELATIVE, 2, (*Processor).iBVC).cross(),
	0x51: loadOp("EOR", MODE_INDIRECTY, 5, (*Processor).iEOR).cross(),
	0x52: hlt(),
	0x53: rmwOp("SRE", MODE_INDIRECTY, 8, (*Processor).iSRE).undocumented(),
	0x54: loadOp("NOP", MODE_ZPX, 4, (*Processor).iNOP).undocumented(),
	0x55: loadOp("EOR", MODE_ZPX, 4, (*Processor).iEOR),
	0x56: rmwOp("LSR", MODE_ZPX, 6, (*Processor).iLSR),
	0x57: rmwOp("SRE", MODE_ZPX, 6, (*Processor).iSRE).undocumented(),
	0x58: op("CLI", MODE_IMPLICIT, 2, (*Processor).iCLI),
	0x59: loadOp("EOR", MODE_ABSOLUTEY, 4, (*Processor).iEOR).cross(),
	0x5A: op("NOP", MODE_IMPLICIT, 2, (*Processor).iNOP).undocumented(),
	0x5B: rmwOp("SRE", MODE_ABSOLUTEY, 7, (*Processor).iSRE).undocumented(),
	0x5C: loadOp("NOP", MODE_ABSOLUTEX, 4, (*Processor).iNOP).undocumented().cross(),
	0x5D: loadOp("EOR", MODE_ABSOLUTEX, 4, (*Processor).iEOR).cross(),
	0x5E: rmwOp("LSR", MODE_ABSOLUTEX, 7, (*Processor).iLSR),
	0x5F: rmwOp("SRE", MODE_ABSOLUTEX, 7, (*Processor).iSRE).undocumented(),

	0x60: op("RTS", MODE_IMPLICIT, 6, (*Processor).iRTS),
	0x61: loadOp("ADC", MODE_INDIRECTX, 6, (*Processor).iADC),
	0x62: hlt(),
	0x63: rmwOp("RRA", MODE_INDIRECTX, 8, (*Processor).iRRA).undocumented(),
	0x64: loadOp("NOP", MODE_ZP, 3, (*Processor).iNOP).undocumented(),
	0x65: loadOp("ADC", MODE_ZP, 3, (*Processor).iADC),
	0x66: rmwOp("ROR", MODE_ZP, 5, (*Processor).iROR),
	0x67: rmwOp("RRA", MODE_ZP, 5, (*Processor).iRRA).undocumented(),
	0x68: op("PLA", MODE_IMPLICIT, 4, (*Processor).iPLA),
	0x69: loadOp("ADC", MODE_IMMEDIATE, 2, (*Processor).iADC),
	0x6A: op("ROR", MODE_ACCUMULATOR, 2, (*Processor).iROR),
	0x6B: loadOp("ARR", MODE_IMMEDIATE, 2, (*Processor).iARR).undocumented(),
	0x6C: op("JMP", MODE_INDIRECT, 5, (*Processor).iJMP),
	0x6D: loadOp("ADC", MODE_ABSOLUTE, 4, (*Processor).iADC),
	0x6E: rmwOp("ROR", MODE_ABSOLUTE, 6, (*Processor).iROR),
	0x6F: rmwOp("RRA", MODE_ABSOLUTE, 6, (*Processor).iRRA).undocumented(),

	0x70: op("BVS", MODE_RELATIVE, 2, (*Processor).iBVS).cross(),
	0x71: loadOp("ADC", MODE_INDIRECTY, 5, (*Processor).iADC).cross(),
	0x72: hlt(),
	0x73: rmwOp("RRA", MODE_INDIRECTY, 8, (*Processor).iRRA).undocumented(),
	0x74: loadOp("NOP", MODE_ZPX, 4, (*Processor).iNOP).undocumented(),
	0x75: loadOp("ADC", MODE_ZPX, 4, (*Processor).iADC),
	0x76: rmwOp("ROR", MODE_ZPX, 6, (*Processor).iROR),
	0x77: rmwOp("RRA", MODE_ZPX, 6, (*Processor).iRRA).undocumented(),
	0x78: op("SEI", MODE_IMPLICIT, 2, (*Processor).iSEI),
	0x79: loadOp("ADC", MODE_ABSOLUTEY, 4, (*Processor).iADC).cross(),
	0x7A: op("NOP", MODE_IMPLICIT, 2, (*Processor).iNOP).undocumented(),
	0x7B: rmwOp("RRA", MODE_ABSOLUTEY, 7, (*Processor).iRRA).undocumented(),
	0x7C: loadOp("NOP", MODE_ABSOLUTEX, 4, (*Processor).iNOP).undocumented().cross(),
	0x7D: loadOp("ADC", MODE_ABSOLUTEX, 4, (*Processor).iADC).cross(),
	0x7E: rmwOp("ROR", MODE_ABSOLUTEX, 7, (*Processor).iROR),
	0x7F: rmwOp("RRA", MODE_ABSOLUTEX, 7, (*Processor).iRRA).undocumented(),

	0x80: loadOp("NOP", MODE_IMMEDIATE, 2, (*Processor).iNOP).undocumented(),
	0x81: storeOp("STA", MODE_INDIRECTX, 6, (*Processor).iSTA),
	0x82: loadOp("NOP", MODE_IMMEDIATE, 2, (*Processor).iNOP).undocumented(),
	0x83: storeOp("SAX", MODE_INDIRECTX, 6, (*Processor).iSAX).undocumented(),
	0x84: storeOp("STY", MODE_ZP, 3, (*Processor).iSTY),
	0x85: storeOp("STA", MODE_ZP, 3, (*Processor).iSTA),
	0x86: storeOp("STX", MODE_ZP, 3, (*Processor).iSTX),
	0x87: storeOp("SAX", MODE_ZP, 3, (*Processor).iSAX).undocumented(),
	0x88: op("DEY", MODE_IMPLICIT, 2, (*Processor).iDEY),
	0x89: loadOp("NOP", MODE_IMMEDIATE, 2, (*Processor).iNOP).undocumented(),
	0x8A: op("TXA", MODE_IMPLICIT, 2, (*Processor).iTXA),
	0x8B: loadOp("XAA", MODE_IMMEDIATE, 2, nil).undocumented().unimplemented(),
	0x8C: storeOp("STY", MODE_ABSOLUTE, 4, (*Processor).iSTY),
	0x8D: storeOp("STA", MODE_ABSOLUTE, 4, (*Processor).iSTA),
	0x8E: storeOp("STX", MODE_ABSOLUTE, 4, (*Processor).iSTX),
	0x8F: storeOp("SAX", MODE_ABSOLUTE, 4, (*Processor).iSAX).undocumented(),

	0x90: op("BCC", MODE_RELATIVE, 2, (*Processor).iBCC).cross(),
	0x91: storeOp("STA", MODE_INDIRECTY, 6, (*Processor).iSTA),
	0x92: hlt(),
	0x93: storeOp("AHX", MODE_INDIRECTY, 6, nil).undocumented().unimplemented(),
	0x94: storeOp("STY", MODE_ZPX, 4, (*Processor).iSTY),
	0x95: storeOp("STA", MODE_ZPX, 4, (*Processor).iSTA),
	0x96: storeOp("STX", MODE_ZPY, 4, (*Processor).iSTX),
	0x97: storeOp("SAX", MODE_ZPY, 4, (*Processor).iSAX).undocumented(),
	0x98: op("TYA", MODE_IMPLICIT, 2, (*Processor).iTYA),
	0x99: storeOp("STA", MODE_ABSOLUTEY, 5, (*Processor).iSTA),
	0x9A: op("TXS", MODE_IMPLICIT, 2, (*Processor).iTXS),
	0x9B: storeOp("TAS", MODE_ABSOLUTEY, 5, nil).undocumented().unimplemented(),
	0x9C: storeOp("SHY", MODE_ABSOLUTEX, 5, nil).undocumented().unimplemented(),
	0x9D: storeOp("STA", MODE_ABSOLUTEX, 5, (*Processor).iSTA),
	0x9E: storeOp("SHX", MODE_ABSOLUTEY, 5, nil).undocumented().unimplemented(),
	0x9F: storeOp("AHX", MODE_ABSOLUTEY, 5, nil).undocumented().unimplemented(),

	0xA0: loadOp("LDY", MODE_IMMEDIATE, 2, (*Processor).iLDY),
	0xA1: loadOp("LDA", MODE_INDIRECTX, 6, (*Processor).iLDA),
	0xA2: loadOp("LDX", MODE_IMMEDIATE, 2, (*Processor).iLDX),
	0xA3: loadOp("LAX", MODE_INDIRECTX, 6, (*Processor).iLAX).undocumented(),
	0xA4: loadOp("LDY", MODE_ZP, 3, (*Processor).iLDY),
	0xA5: loadOp("LDA", MODE_ZP, 3, (*Processor).iLDA),
	0xA6: loadOp("LDX", MODE_ZP, 3, (*Processor).iLDX),
	0xA7: loadOp("LAX", MODE_ZP, 3, (*Processor).iLAX).undocumented(),
	0xA8: op("TAY", MODE_IMPLICIT, 2, (*Processor).iTAY),
	0xA9: loadOp("LDA", MODE_IMMEDIATE, 2, (*Processor).iLDA),
	0xAA: op("TAX", MODE_IMPLICIT, 2, (*Processor).iTAX),
	0xAB: loadOp("LXA", MODE_IMMEDIATE, 2, nil).undocumented().unimplemented(),
	0xAC: loadOp("LDY", MODE_ABSOLUTE, 4, (*Processor).iLDY),
	0xAD: loadOp("LDA", MODE_ABSOLUTE, 4, (*Processor).iLDA),
	0xAE: loadOp("LDX", MODE_ABSOLUTE, 4, (*Processor).iLDX),
	0xAF: loadOp("LAX", MODE_ABSOLUTE, 4, (*Processor).iLAX).undocumented(),

	0xB0: op("BCS", MODE_RELATIVE, 2, (*Processor).iBCS).cross(),
	0xB1: loadOp("LDA", MODE_INDIRECTY, 5, (*Processor).iLDA).cross(),
	0xB2: hlt(),
	0xB3: loadOp("LAX", MODE_INDIRECTY, 5, (*Processor).iLAX).undocumented().cross(),
	0xB4: loadOp("LDY", MODE_ZPX, 4, (*Processor).iLDY),
	0xB5: loadOp("LDA", MODE_ZPX, 4, (*Processor).iLDA),
	0xB6: loadOp("LDX", MODE_ZPY, 4, (*Processor).iLDX),
	0xB7: loadOp("LAX", MODE_ZPY, 4, (*Processor).iLAX).undocumented(),
	0xB8: op("CLV", MODE_IMPLICIT, 2, (*Processor).iCLV),
	0xB9: loadOp("LDA", MODE_ABSOLUTEY, 4, (*Processor).iLDA).cross(),
	0xBA: op("TSX", MODE_IMPLICIT, 2, (*Processor).iTSX),
	0xBB: loadOp("LAS", MODE_ABSOLUTEY, 4, nil).undocumented().unimplemented().cross(),
	0xBC: loadOp("LDY", MODE_ABSOLUTEX, 4, (*Processor).iLDY).cross(),
	0xBD: loadOp("LDA", MODE_ABSOLUTEX, 4, (*Processor).iLDA).cross(),
	0xBE: loadOp("LDX", MODE_ABSOLUTEY, 4, (*Processor).iLDX).cross(),
	0xBF: loadOp("LAX", MODE_ABSOLUTEY, 4, (*Processor).iLAX).undocumented().cross(),

	0xC0: loadOp("CPY", MODE_IMMEDIATE, 2, (*Processor).iCPY),
	0xC1: loadOp("CMP", MODE_INDIRECTX, 6, (*Processor).iCMP),
	0xC2: loadOp("NOP", MODE_IMMEDIATE, 2, (*Processor).iNOP).undocumented(),
	0xC3: rmwOp("DCP", MODE_INDIRECTX, 8, (*Processor).iDCP).undocumented(),
	0xC4: loadOp("CPY", MODE_ZP, 3, (*Processor).iCPY),
	0xC5: loadOp("CMP", MODE_ZP, 3, (*Processor).iCMP),
	0xC6: rmwOp("DEC", MODE_ZP, 5, (*Processor).iDEC),
	0xC7: rmwOp("DCP", MODE_ZP, 5, (*Processor).iDCP).undocumented(),
	0xC8: op("INY", MODE_IMPLICIT, 2, (*Processor).iINY),
	0xC9: loadOp("CMP", MODE_IMMEDIATE, 2, (*Processor).iCMP),
	0xCA: op("DEX", MODE_IMPLICIT, 2, (*Processor).iDEX),
	0xCB: loadOp("AXS", MODE_IMMEDIATE, 2, (*Processor).iAXS).undocumented(),
	0xCC: loadOp("CPY", MODE_ABSOLUTE, 4, (*Processor).iCPY),
	0xCD: loadOp("CMP", MODE_ABSOLUTE, 4, (*Processor).iCMP),
	0xCE: rmwOp("DEC", MODE_ABSOLUTE, 6, (*Processor).iDEC),
	0xCF: rmwOp("DCP", MODE_ABSOLUTE, 6, (*Processor).iDCP).undocumented(),

	0xD0: op("BNE", MODE_RELATIVE, 2, (*Processor).iBNE).cross(),
	0xD1: loadOp("CMP", MODE_INDIRECTY, 5, (*Processor).iCMP).cross(),
	0xD2: hlt(),
	0xD3: rmwOp("DCP", MODE_INDIRECTY, 8, (*Processor).iDCP).undocumented(),
	0xD4: loadOp("NOP", MODE_ZPX, 4, (*Processor).iNOP).undocumented(),
	0xD5: loadOp("CMP", MODE_ZPX, 4, (*Processor).iCMP),
	0xD6: rmwOp("DEC", MODE_ZPX, 6, (*Processor).iDEC),
	0xD7: rmwOp("DCP", MODE_ZPX, 6, (*Processor).iDCP).undocumented(),
	0xD8: op("CLD", MODE_IMPLICIT, 2, (*Processor).iCLD),
	0xD9: loadOp("CMP", MODE_ABSOLUTEY, 4, (*Processor).iCMP).cross(),
	0xDA: op("NOP", MODE_IMPLICIT, 2, (*Processor).iNOP).undocumented(),
	0xDB: rmwOp("DCP", MODE_ABSOLUTEY, 7, (*Processor).iDCP).undocumented(),
	0xDC: loadOp("NOP", MODE_ABSOLUTEX, 4, (*Processor).iNOP).undocumented().cross(),
	0xDD: loadOp("CMP", MODE_ABSOLUTEX, 4, (*Processor).iCMP).cross(),
	0xDE: rmwOp("DEC", MODE_ABSOLUTEX, 7, (*Processor).iDEC),
	0xDF: rmwOp("DCP", MODE_ABSOLUTEX, 7, (*Processor).iDCP).undocumented(),

	0xE0: loadOp("CPX", MODE_IMMEDIATE, 2, (*Processor).iCPX),
	0xE1: loadOp("SBC", MODE_INDIRECTX, 6, (*Processor).iSBC),
	0xE2: loadOp("NOP", MODE_IMMEDIATE, 2, (*Processor).iNOP).undocumented(),
	0xE3: rmwOp("ISC", MODE_INDIRECTX, 8, (*Processor).iISC).undocumented(),
	0xE4: loadOp("CPX", MODE_ZP, 3, (*Processor).iCPX),
	0xE5: loadOp("SBC", MODE_ZP, 3, (*Processor).iSBC),
	0xE6: rmwOp("INC", MODE_ZP, 5, (*Processor).iINC),
	0xE7: rmwOp("ISC", MODE_ZP, 5, (*Processor).iISC).undocumented(),
	0xE8: op("INX", MODE_IMPLICIT, 2, (*Processor).iINX),
	0xE9: loadOp("SBC", MODE_IMMEDIATE, 2, (*Processor).iSBC),
	0xEA: op("NOP", MODE_IMPLICIT, 2, (*Processor).iNOP),
	0xEB: loadOp("SBC", MODE_IMMEDIATE, 2, (*Processor).iSBC).undocumented(),
	0xEC: loadOp("CPX", MODE_ABSOLUTE, 4, (*Processor).iCPX),
	0xED: loadOp("SBC", MODE_ABSOLUTE, 4, (*Processor).iSBC),
	0xEE: rmwOp("INC", MODE_ABSOLUTE, 6, (*Processor).iINC),
	0xEF: rmwOp("ISC", MODE_ABSOLUTE, 6, (*Processor).iISC).undocumented(),

	0xF0: op("BEQ", MODE_RELATIVE, 2, (*Processor).iBEQ).cross(),
	0xF1: loadOp("SBC", MODE_INDIRECTY, 5, (*Processor).iSBC).cross(),
	0xF2: hlt(),
	0xF3: rmwOp("ISC", MODE_INDIRECTY, 8, (*Processor).iISC).undocumented(),
	0xF4: loadOp("NOP", MODE_ZPX, 4, (*Processor).iNOP).undocumented(),
	0xF5: loadOp("SBC", MODE_ZPX, 4, (*Processor).iSBC),
	0xF6: rmwOp("INC", MODE_ZPX, 6, (*Processor).iINC),
	0xF7: rmwOp("ISC", MODE_ZPX, 6, (*Processor).iISC).undocumented(),
	0xF8: op("SED", MODE_IMPLICIT, 2, (*Processor).iSED),
	0xF9: loadOp("SBC", MODE_ABSOLUTEY, 4, (*Processor).iSBC).cross(),
	0xFA: op("NOP", MODE_IMPLICIT, 2, (*Processor).iNOP).undocumented(),
	0xFB: rmwOp("ISC", MODE_ABSOLUTEY, 7, (*Processor).iISC).undocumented(),
	0xFC: loadOp("NOP", MODE_ABSOLUTEX, 4, (*Processor).iNOP).undocumented().cross(),
	0xFD: loadOp("SBC", MODE_ABSOLUTEX, 4, (*Processor).iSBC).cross(),
	0xFE: rmwOp("INC", MODE_ABSOLUTEX, 7, (*Processor).iINC),
	0xFF: rmwOp("ISC", MODE_ABSOLUTEX, 7, (*Processor).iISC).undocumented(),
}
