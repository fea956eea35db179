// Package cpu defines the 6502 architecture and provides
// the methods needed to run the CPU and interface with it
// for emulation.
//
// Execution is instruction stepped. Each call to Step runs exactly one
// instruction (or one interrupt entry sequence) to completion and reports
// how many clock cycles it took on real hardware. Interrupt lines are only
// examined between steps.
package cpu

import (
	"fmt"

	"github.com/jmchacon/interp6502/irq"
	"github.com/jmchacon/interp6502/memory"
)

// CPUType is an enumeration of the valid CPU types.
type CPUType int

const (
	CPU_UNIMPLMENTED CPUType = iota // Start of valid cpu enumerations.
	CPU_NMOS                        // Basic NMOS 6502 including the stable undocumented opcodes.
	CPU_NMOS_RICOH                  // Ricoh version used in NES which is identical to NMOS except BCD mode is unimplmented.
	CPU_MAX                         // End of CPU enumerations.
)

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	// Every interrupt entry (and RESET) takes 7 cycles.
	kINTERRUPT_CYCLES = 7
)

type Processor struct {
	A       uint8       // Accumulator register
	X       uint8       // X register
	Y       uint8       // Y register
	S       uint8       // Stack pointer
	P       uint8       // Processor status register
	PC      uint16      // Program counter
	Cycles  uint64      // Total clock cycles run since power on.
	CPUType CPUType     // Must be between UNIMPLEMENTED and MAX from above.
	Ram     memory.Bank // All bus traffic goes through here.

	irqPending   bool         // IRQ latch. Stays set until serviced.
	nmiPending   bool         // NMI latch. Cleared when serviced.
	resetPending bool         // RESET latch. Cleared when serviced.
	irqSources   []irq.Sender // Level held sources OR'd into the IRQ line.
	nmiSources   []*edge      // Sources edge detected into the NMI latch.
}

// edge tracks the previous level of an NMI source so only a low->high
// transition raises the latch.
type edge struct {
	s    irq.Sender
	prev bool
}

// Registers is a point in time copy of the processor state.
type Registers struct {
	A, X, Y, S, P uint8
	PC            uint16
	Cycles        uint64
	IRQ           bool
	NMI           bool
	Reset         bool
}

// A few custom error types to distinguish why the CPU stopped

// UnimplementedOpcode represents an opcode which the emulator treats as a placeholder.
// The instruction has already been skipped when this is returned so execution
// can continue with the next Step.
type UnimplementedOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the interface for error types.
func (e UnimplementedOpcode) Error() string {
	return fmt.Sprintf("0x%.2X is an unimplemented opcode (PC: 0x%.4X)", e.Opcode, e.PC)
}

// InvalidCPUState represents an invalid CPU state in the emulator.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// Init will create a new CPU of the type requested and return it in powered on state.
// The memory passed in will also be powered on.
func Init(cpu CPUType, r memory.Bank) (*Processor, error) {
	if cpu <= CPU_UNIMPLMENTED || cpu >= CPU_MAX {
		return nil, InvalidCPUState{fmt.Sprintf("CPU type %d is invalid", cpu)}
	}
	if r == nil {
		return nil, InvalidCPUState{"no memory bank supplied"}
	}
	p := &Processor{
		CPUType: cpu,
		Ram:     r,
	}
	p.Ram.PowerOn()
	p.PowerOn()
	return p, nil
}

// PowerOn will reset the CPU to specific power on state. Registers are zero, stack is at 0xFD
// and P is cleared with interrupts disabled. The starting PC value is loaded from the reset
// vector.
func (p *Processor) PowerOn() {
	p.A = 0
	p.X = 0
	p.Y = 0
	p.S = 0x0
	// This bit is always set.
	p.P = uint8(P_S1)
	p.Cycles = 0
	p.irqPending = false
	p.nmiPending = false
	p.Reset()
}

// Reset runs the RESET sequence immediately. Most registers are unaffected but the
// stack moves 3 bytes as if PC/P had been pushed (nothing is written), interrupts are
// disabled and the PC is loaded from the reset vector. Use RaiseReset to have it
// happen on the next Step instead.
func (p *Processor) Reset() {
	p.reset()
}

// RaiseReset latches a RESET request which is serviced at the start of the next Step.
func (p *Processor) RaiseReset() {
	p.resetPending = true
}

// RaiseNMI latches an NMI request. NMI is edge triggered so it's serviced
// exactly once no matter how many times it's raised before that happens.
func (p *Processor) RaiseNMI() {
	p.nmiPending = true
}

// RaiseIRQ latches an IRQ request. It stays pending (while the I flag
// masks it) until serviced.
func (p *Processor) RaiseIRQ() {
	p.irqPending = true
}

// InstallIRQ adds a level held interrupt source. Any installed source which
// is Raised() at a step boundary asserts IRQ.
func (p *Processor) InstallIRQ(s irq.Sender) {
	p.irqSources = append(p.irqSources, s)
}

// InstallNMI adds an NMI source. The NMI latch is set whenever the source
// goes from lowered to Raised() between two steps.
func (p *Processor) InstallNMI(s irq.Sender) {
	p.nmiSources = append(p.nmiSources, &edge{s: s})
}

// Snapshot returns a copy of the current register and interrupt state.
func (p *Processor) Snapshot() Registers {
	return Registers{
		A:      p.A,
		X:      p.X,
		Y:      p.Y,
		S:      p.S,
		P:      p.P,
		PC:     p.PC,
		Cycles: p.Cycles,
		IRQ:    p.irqPending,
		NMI:    p.nmiPending,
		Reset:  p.resetPending,
	}
}

func (r Registers) String() string {
	return fmt.Sprintf("PC: %.4X A: %.2X X: %.2X Y: %.2X P: %.2X (%s) S: %.2X CYC: %d", r.PC, r.A, r.X, r.Y, r.P, FlagString(r.P), r.S, r.Cycles)
}

// Step runs one instruction, or one interrupt entry if an interrupt is pending,
// and returns the number of clock cycles it took. Priority is RESET, NMI and then
// IRQ (only if the I flag is clear).
// The only error returned is UnimplementedOpcode which indicates a placeholder
// opcode was skipped. The CPU remains usable afterwards.
func (p *Processor) Step() (int, error) {
	p.pollSources()
	switch {
	case p.resetPending:
		return p.reset(), nil
	case p.nmiPending:
		p.nmiPending = false
		return p.interrupt(NMI_VECTOR), nil
	case p.irqRaised() && !p.IsSet(P_INTERRUPT):
		p.irqPending = false
		return p.interrupt(IRQ_VECTOR), nil
	}
	return p.execute()
}

// execute fetches, resolves and runs the instruction at PC.
func (p *Processor) execute() (int, error) {
	pc := p.PC
	op := p.fetch()
	o := &opcodes[op]

	ctx := p.resolve(o.Mode, o.access)
	o.handler(p, &ctx)

	cycles := int(o.Cycles) + ctx.extraCycles
	if o.PageCross && ctx.pageCrossed {
		cycles++
	}
	p.Cycles += uint64(cycles)
	if !o.Implemented {
		return cycles, UnimplementedOpcode{Opcode: op, PC: pc}
	}
	return cycles, nil
}

// pollSources samples installed interrupt sources. This only happens at
// step boundaries.
func (p *Processor) pollSources() {
	for _, e := range p.nmiSources {
		r := e.s.Raised()
		if r && !e.prev {
			p.nmiPending = true
		}
		e.prev = r
	}
}

// irqRaised returns the current level of the IRQ line.
func (p *Processor) irqRaised() bool {
	if p.irqPending {
		return true
	}
	for _, s := range p.irqSources {
		if s.Raised() {
			return true
		}
	}
	return false
}

// fetch returns the byte at PC and advances it.
func (p *Processor) fetch() uint8 {
	v := p.Ram.Read(p.PC)
	p.PC++
	return v
}

// fetchWord returns the little endian word at PC and advances past it.
func (p *Processor) fetchWord() uint16 {
	lo := p.fetch()
	hi := p.fetch()
	return (uint16(hi) << 8) | uint16(lo)
}

// loadRegister takes the val and inserts it into the register passed in. It then does
// Z and N checks against the new value.
func (p *Processor) loadRegister(reg *uint8, val uint8) {
	*reg = val
	p.zeroNegativeCheck(*reg)
}

// pushStack pushes the given byte onto the stack and adjusts the stack pointer accordingly.
func (p *Processor) pushStack(val uint8) {
	p.Ram.Write(memory.Stack(p.S), val)
	p.S--
}

// popStack pops the top byte off the stack and adjusts the stack pointer accordingly.
func (p *Processor) popStack() uint8 {
	p.S++
	return p.Ram.Read(memory.Stack(p.S))
}

// pushStackWord pushes the high byte and then the low byte so the low byte pops first.
func (p *Processor) pushStackWord(val uint16) {
	p.pushStack(uint8(val >> 8))
	p.pushStack(uint8(val & 0xFF))
}

// popStackWord pops a word pushed with pushStackWord.
func (p *Processor) popStackWord() uint16 {
	lo := p.popStack()
	hi := p.popStack()
	return (uint16(hi) << 8) | uint16(lo)
}
