package clkmgr

import (
	"unsafe"

	"github.com/clktmr/socfpga/debug"
)

// MMIO accesses the clock manager registers through memory mapped IO.
type MMIO struct {
	base unsafe.Pointer
	mem  []byte // keeps a host mapping alive
}

// Map returns the register block at physical address base. Only valid when
// running on the bare metal target with identity mapped IO.
func Map(base uintptr) *MMIO {
	return &MMIO{base: unsafe.Pointer(base)}
}

// MapSlice returns the register block backed by mem, usually obtained by
// mapping /dev/mem.
func MapSlice(mem []byte) *MMIO {
	debug.Assert(len(mem) >= Size, "register mapping too small")
	return &MMIO{base: unsafe.Pointer(unsafe.SliceData(mem)), mem: mem}
}

func (m *MMIO) addr(r Reg) unsafe.Pointer {
	debug.Assert(r&0x3 == 0 && r < Size, "unaligned or out of bounds register")
	return unsafe.Add(m.base, r)
}
