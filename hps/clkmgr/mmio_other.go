//go:build !noos

package clkmgr

import "sync/atomic"

// Atomic loads and stores are never merged or elided by the compiler, which
// is all a hosted mapping needs.

func (m *MMIO) Load(r Reg) uint32 {
	return atomic.LoadUint32((*uint32)(m.addr(r)))
}

func (m *MMIO) Store(r Reg, v uint32) {
	atomic.StoreUint32((*uint32)(m.addr(r)), v)
}
