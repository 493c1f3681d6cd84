//go:build noos

package clkmgr

import "embedded/mmio"

func (m *MMIO) Load(r Reg) uint32 {
	return (*mmio.U32)(m.addr(r)).Load()
}

func (m *MMIO) Store(r Reg, v uint32) {
	(*mmio.U32)(m.addr(r)).Store(v)
}
