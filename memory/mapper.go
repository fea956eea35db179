package memory

import (
	"fmt"
	"sort"
	"strings"
)

var _ = Bank(&Mapper{})

// Mapper overlays other banks (generally memory mapped devices) on top of a
// base bank. Any address not covered by a mapped range falls through to the base.
// Mapped banks are handed the full 16 bit address and are expected to do any
// masking/aliasing themselves.
type Mapper struct {
	base   Bank
	mapped []region
}

// NewMapper returns a Mapper which uses base for all unmapped addresses.
func NewMapper(base Bank) *Mapper {
	return &Mapper{base: base}
}

// Map installs b for addresses start through end inclusive. A smaller range
// contained within a larger one takes precedence and for
// identical ranges the most recent mapping wins.
func (m *Mapper) Map(start, end uint16, b Bank) error {
	if end < start {
		return fmt.Errorf("invalid range $%.4X-$%.4X", start, end)
	}
	// Newest first so it wins ties on equal sized ranges.
	m.mapped = append([]region{{Bank: b, start: start, end: end}}, m.mapped...)
	sort.SliceStable(m.mapped, func(i, j int) bool {
		return m.mapped[i].size() < m.mapped[j].size()
	})
	return nil
}

// Unmap removes b from every range it was mapped into. Returns true if
// anything was removed.
func (m *Mapper) Unmap(b Bank) bool {
	found := false
	out := m.mapped[:0]
	for _, r := range m.mapped {
		if r.Bank == b {
			found = true
			continue
		}
		out = append(out, r)
	}
	m.mapped = out
	return found
}

// Read implements the interface for memory.Bank.
func (m *Mapper) Read(addr uint16) uint8 {
	return m.bank(addr).Read(addr)
}

// Write implements the interface for memory.Bank.
func (m *Mapper) Write(addr uint16, val uint8) {
	m.bank(addr).Write(addr, val)
}

// PowerOn implements the interface for memory.Bank. The base is powered on
// first and then every mapped bank.
func (m *Mapper) PowerOn() {
	m.base.PowerOn()
	for _, r := range m.mapped {
		r.PowerOn()
	}
}

func (m *Mapper) String() string {
	s := make([]string, len(m.mapped))
	for i, r := range m.mapped {
		s[i] = r.String()
	}
	return fmt.Sprintf("Mapper{%s}", strings.Join(s, ", "))
}

// bank returns the smallest mapped region covering addr or the base.
func (m *Mapper) bank(addr uint16) Bank {
	for _, r := range m.mapped {
		if addr >= r.start && addr <= r.end {
			return r.Bank
		}
	}
	return m.base
}

type region struct {
	Bank
	start, end uint16
}

func (r region) size() int {
	return int(r.end) - int(r.start)
}

func (r region) String() string {
	return fmt.Sprintf("$%.4X-$%.4X: %T", r.start, r.end, r.Bank)
}
