package clkmgr

import (
	"fmt"

	"github.com/clktmr/socfpga/debug"
)

// Bus selects one of the two indirect buses. Each PLL has its own.
type Bus uint8

const (
	MainBus Bus = iota
	PerBus
)

// MembusTimeout is the default poll budget of a membus transaction.
const MembusTimeout = 1000

// Membus slice addresses and bits
const (
	MembusAddrClkSlice     = 0x27
	MembusClkSliceSyncMode = 0x80
)

func (b Bus) regs() (req, stat Reg) {
	if b == MainBus {
		return MainPLLMem, MainPLLMemStat
	}
	return PerPLLMem, PerPLLMemStat
}

func (b Bus) String() string {
	if b == MainBus {
		return "main"
	}
	return "per"
}

func membusAddr(addr uint32) uint32 {
	return (addr | memAddrStart) & memAddrMask
}

func (m *Manager) waitForReq(req Reg, budget int) error {
	return poll(budget, func() bool {
		return m.regs.Load(req)&memReq == 0
	})
}

// WriteIndirect writes data to the PLL slice at addr through the indirect
// bus and waits for the request to be acknowledged.
func (m *Manager) WriteIndirect(bus Bus, addr, data uint32, budget int) error {
	req, _ := bus.regs()
	a := membusAddr(addr)
	m.regs.Store(req, memReq|memWr|(data<<memWdatShift)&memWdatMask|a)
	debug.Printf("membus %v: write %#08x to %#08x\n", bus, data, a)

	if err := m.waitForReq(req, budget); err != nil {
		return fmt.Errorf("%w: membus %v write %#x", err, bus, addr)
	}
	return nil
}

// ReadIndirect reads the PLL slice at addr through the indirect bus.
func (m *Manager) ReadIndirect(bus Bus, addr uint32, budget int) (uint32, error) {
	req, stat := bus.regs()
	a := membusAddr(addr)
	m.regs.Store(req, memReq|a)

	if err := m.waitForReq(req, budget); err != nil {
		return 0, fmt.Errorf("%w: membus %v read %#x", err, bus, addr)
	}

	data := m.regs.Load(stat)
	debug.Printf("membus %v: read %#08x from %#08x\n", bus, data, a)
	return data, nil
}

// enableSyncMode switches the output clock slice of a PLL to source
// synchronous mode. The write back is issued even if the read failed, with
// the read data taken as zero. The first error is returned.
func (m *Manager) enableSyncMode(bus Bus) error {
	data, rerr := m.ReadIndirect(bus, MembusAddrClkSlice, m.Limits.Membus)
	werr := m.WriteIndirect(bus, MembusAddrClkSlice, data|MembusClkSliceSyncMode, m.Limits.Membus)
	if rerr != nil {
		return rerr
	}
	return werr
}
