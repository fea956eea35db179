// Package irq defines the basic interfaces for working
// with a 6502 family interrupt. A component which generates
// interrupts (IRQ/NMI) implements Sender so the CPU can poll it
// at instruction boundaries without cross coupling component logic.
// NOTE: The CPU decides whether a line is level (IRQ) or edge (NMI)
//
//	triggered. Senders simply report whether they're holding the line.
package irq

type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

// Line is a Sender which is manually raised and lowered.
// Useful for wiring simple components (or tests) to an interrupt input.
type Line struct {
	raised bool
}

// Raise holds the line until Lower is called.
func (l *Line) Raise() {
	l.raised = true
}

// Lower releases the line.
func (l *Line) Lower() {
	l.raised = false
}

// Raised implements the interface for Sender.
func (l *Line) Raised() bool {
	return l.raised
}
