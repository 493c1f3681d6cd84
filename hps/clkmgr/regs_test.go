package clkmgr_test

import (
	"testing"

	"github.com/clktmr/socfpga/hps/clkmgr"
)

func TestPLLGroupLayout(t *testing.T) {
	testcases := []struct {
		name string
		reg  clkmgr.Reg
		off  clkmgr.Reg
	}{
		{"main.pllglob", clkmgr.MainPLLPLLGlob, 0x48},
		{"main.mem", clkmgr.MainPLLMem, 0x50},
		{"main.pllc0", clkmgr.MainPLLPLLC0, 0x58},
		{"main.pllc1", clkmgr.MainPLLPLLC1, 0x5c},
		{"main.vcocalib", clkmgr.MainPLLVCOCalib, 0x60},
		{"main.pllc2", clkmgr.MainPLLPLLC2, 0x64},
		{"main.pllm", clkmgr.MainPLLPLLM, 0x6c},
		{"per.pllglob", clkmgr.PerPLLPLLGlob, 0x9c},
		{"per.mem", clkmgr.PerPLLMem, 0xa4},
		{"per.pllc0", clkmgr.PerPLLPLLC0, 0xac},
		{"per.pllc1", clkmgr.PerPLLPLLC1, 0xb0},
		{"per.vcocalib", clkmgr.PerPLLVCOCalib, 0xb4},
		{"per.pllc2", clkmgr.PerPLLPLLC2, 0xb8},
		{"per.pllm", clkmgr.PerPLLPLLM, 0xc0},
	}
	for _, tc := range testcases {
		if tc.reg != tc.off {
			t.Errorf("%s at %#x, expected %#x", tc.name, tc.reg, tc.off)
		}
	}
}

// The calibration word lands between PLLC1 and PLLC2 and the counters keep
// the values they were programmed with.
func TestApplyVCOCalibSlot(t *testing.T) {
	model, mgr := newTestManager()
	if err := mgr.Apply(&testConfig); err != nil {
		t.Fatal(err)
	}
	for i, r := range [...]clkmgr.Reg{clkmgr.MainPLLPLLC0, clkmgr.MainPLLPLLC1} {
		if v := model.Peek(r); v != testConfig.Main.PLLC[i] {
			t.Errorf("main PLLC%d: %#x", i, v)
		}
	}
	for i, r := range [...]clkmgr.Reg{clkmgr.PerPLLPLLC0, clkmgr.PerPLLPLLC1} {
		if v := model.Peek(r); v != testConfig.Per.PLLC[i] {
			t.Errorf("peripheral PLLC%d: %#x", i, v)
		}
	}
	if v := model.Peek(0x60); v != 0x0001_004c {
		t.Errorf("main VCOCALIB: %#x", v)
	}
	if v := model.Peek(0xb4); v != 0x0001_003c {
		t.Errorf("peripheral VCOCALIB: %#x", v)
	}
}
