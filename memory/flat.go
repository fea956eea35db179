package memory

var _ = Bank(&Flat{})

// Flat is a plain 64k RAM bank with no mirroring or devices.
// Every address is read/write.
type Flat struct {
	addr [65536]uint8
	fill uint8
}

// NewFlat returns a Flat bank which fills all of memory with fill on power on.
func NewFlat(fill uint8) *Flat {
	f := &Flat{fill: fill}
	f.PowerOn()
	return f
}

// Read implements the interface for memory.Bank.
func (f *Flat) Read(addr uint16) uint8 {
	return f.addr[addr]
}

// Write implements the interface for memory.Bank.
func (f *Flat) Write(addr uint16, val uint8) {
	f.addr[addr] = val
}

// PowerOn implements the interface for memory.Bank and resets all of RAM to the
// fill value.
func (f *Flat) PowerOn() {
	for i := range f.addr {
		f.addr[i] = f.fill
	}
}

// Slice returns a copy of memory from start for length bytes (wrapping at the 64k boundary).
func (f *Flat) Slice(start uint16, length int) []uint8 {
	out := make([]uint8, length)
	for i := range out {
		out[i] = f.addr[start+uint16(i)]
	}
	return out
}
