// Package sim provides a behavioural model of the clock manager registers.
// It reproduces the handshakes the bring-up sequence depends on, so the
// sequence and the rate calculation can run without hardware.
package sim

import "github.com/clktmr/socfpga/hps/clkmgr"

// Access is a register store recorded by the model.
type Access struct {
	Reg   clkmgr.Reg
	Value uint32
}

// Model implements clkmgr.Block.
//
// Latencies count polls of the respective status register before the
// hardware reports completion. A negative latency never completes.
type Model struct {
	FSMLatency    int // STAT.BUSY after bypass and control stores
	LockLatency   int // STAT lock bits after both PLLs are powered up
	MembusLatency int // MEM.REQ after a membus request

	Stores []Access
	Loads  int

	regs   [clkmgr.Size / 4]uint32
	slices [2]map[uint32]uint32

	fsm, lock int
	membus    [2]int
	reqSeen   [2]int
}

// New returns a model in its power-on state: boot mode, counters in reset.
func New() *Model {
	m := &Model{
		slices: [2]map[uint32]uint32{{}, {}},
	}
	m.regs[clkmgr.Ctrl/4] = clkmgr.CtrlBootMode
	m.regs[clkmgr.Stat/4] = clkmgr.StatBootMode
	m.regs[clkmgr.AltExtCntRst/4] = clkmgr.ExtCntRstAll
	return m
}

// Peek returns the raw content of r without side effects.
func (m *Model) Peek(r clkmgr.Reg) uint32 {
	return m.regs[r/4]
}

// Poke sets the raw content of r without side effects.
func (m *Model) Poke(r clkmgr.Reg, v uint32) {
	m.regs[r/4] = v
}

// Slice returns the content of a PLL slice behind the indirect bus.
func (m *Model) Slice(bus clkmgr.Bus, addr uint32) uint32 {
	return m.slices[bus][addr]
}

// SetSlice sets the content of a PLL slice behind the indirect bus.
func (m *Model) SetSlice(bus clkmgr.Bus, addr, v uint32) {
	m.slices[bus][addr] = v
}

// ReqPolls returns how often the request register of bus was read while a
// request was pending.
func (m *Model) ReqPolls(bus clkmgr.Bus) int {
	return m.reqSeen[bus]
}

// StoresTo returns the values stored to r in order.
func (m *Model) StoresTo(r clkmgr.Reg) (values []uint32) {
	for _, s := range m.Stores {
		if s.Reg == r {
			values = append(values, s.Value)
		}
	}
	return
}

func (m *Model) Load(r clkmgr.Reg) uint32 {
	m.Loads++
	switch r {
	case clkmgr.Stat:
		m.updateStat()
	case clkmgr.MainPLLMem:
		m.pollMembus(clkmgr.MainBus)
	case clkmgr.PerPLLMem:
		m.pollMembus(clkmgr.PerBus)
	}
	return m.regs[r/4]
}

func (m *Model) Store(r clkmgr.Reg, v uint32) {
	m.Stores = append(m.Stores, Access{r, v})
	m.regs[r/4] = v

	switch r {
	case clkmgr.MainPLLBypass, clkmgr.PerPLLBypass:
		m.fsm = m.FSMLatency
	case clkmgr.Ctrl:
		m.fsm = m.FSMLatency
		if v&clkmgr.CtrlBootMode != 0 {
			m.regs[clkmgr.Stat/4] |= clkmgr.StatBootMode
		} else {
			m.regs[clkmgr.Stat/4] &^= clkmgr.StatBootMode
		}
	case clkmgr.MainPLLPLLGlob, clkmgr.PerPLLPLLGlob:
		if !m.poweredUp() {
			m.lock = m.LockLatency
			m.regs[clkmgr.Stat/4] &^= clkmgr.StatMainLock | clkmgr.StatPerLock
		}
	case clkmgr.MainPLLMem:
		m.startMembus(clkmgr.MainBus, v)
	case clkmgr.PerPLLMem:
		m.startMembus(clkmgr.PerBus, v)
	}
}

func (m *Model) poweredUp() bool {
	const on = clkmgr.PLLGlobPD | clkmgr.PLLGlobRst
	return m.regs[clkmgr.MainPLLPLLGlob/4]&on == on &&
		m.regs[clkmgr.PerPLLPLLGlob/4]&on == on
}

func (m *Model) updateStat() {
	stat := &m.regs[clkmgr.Stat/4]

	if m.fsm != 0 {
		*stat |= clkmgr.StatBusy
		if m.fsm > 0 {
			m.fsm--
		}
	} else {
		*stat &^= clkmgr.StatBusy
	}

	if m.poweredUp() {
		if m.lock == 0 {
			*stat |= clkmgr.StatMainLock | clkmgr.StatPerLock
		} else if m.lock > 0 {
			m.lock--
		}
	}
}

func (m *Model) startMembus(bus clkmgr.Bus, v uint32) {
	if v&clkmgr.MemReq == 0 {
		return
	}
	m.membus[bus] = m.MembusLatency
	if m.membus[bus] == 0 {
		m.completeMembus(bus)
	}
}

func (m *Model) pollMembus(bus clkmgr.Bus) {
	req, _ := memRegs(bus)
	if m.regs[req/4]&clkmgr.MemReq == 0 {
		return
	}
	m.reqSeen[bus]++
	if m.membus[bus] > 0 {
		m.membus[bus]--
		if m.membus[bus] == 0 {
			m.completeMembus(bus)
		}
	}
}

func (m *Model) completeMembus(bus clkmgr.Bus) {
	req, stat := memRegs(bus)
	v := m.regs[req/4]
	addr := v & clkmgr.MemAddrMask &^ clkmgr.MemAddrStart
	if v&clkmgr.MemWr != 0 {
		m.slices[bus][addr] = v >> clkmgr.MemWdatShift & 0xff
	} else {
		m.regs[stat/4] = m.slices[bus][addr]
	}
	m.regs[req/4] = v &^ clkmgr.MemReq
}

func memRegs(bus clkmgr.Bus) (req, stat clkmgr.Reg) {
	if bus == clkmgr.MainBus {
		return clkmgr.MainPLLMem, clkmgr.MainPLLMemStat
	}
	return clkmgr.PerPLLMem, clkmgr.PerPLLMemStat
}
