package clkmgr_test

import (
	"testing"
	"unsafe"

	"github.com/clktmr/socfpga/hps/clkmgr"
)

func TestMapSlice(t *testing.T) {
	words := make([]uint32, clkmgr.Size/4)
	mem := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), clkmgr.Size)
	regs := clkmgr.MapSlice(mem)

	regs.Store(clkmgr.PerPLLPLLGlob, 0x0000_0101)
	if words[clkmgr.PerPLLPLLGlob/4] != 0x0000_0101 {
		t.Fatalf("store didn't reach memory: %#x", words[clkmgr.PerPLLPLLGlob/4])
	}

	clkmgr.SetBits(regs, clkmgr.PerPLLPLLGlob, 0x2000_0002)
	if v := regs.Load(clkmgr.PerPLLPLLGlob); v != 0x2000_0103 {
		t.Errorf("SetBits: %#x", v)
	}
	clkmgr.ClearBits(regs, clkmgr.PerPLLPLLGlob, 0x0000_0003)
	if v := regs.Load(clkmgr.PerPLLPLLGlob); v != 0x2000_0100 {
		t.Errorf("ClearBits: %#x", v)
	}

	words[clkmgr.Stat/4] = clkmgr.StatMainLock
	if v := regs.Load(clkmgr.Stat); v != clkmgr.StatMainLock {
		t.Errorf("load: %#x", v)
	}
	for i, w := range words {
		if clkmgr.Reg(i*4) != clkmgr.PerPLLPLLGlob && clkmgr.Reg(i*4) != clkmgr.Stat && w != 0 {
			t.Errorf("unexpected write at %#x", i*4)
		}
	}
}
