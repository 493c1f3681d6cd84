package clkmgr_test

import (
	"errors"
	"testing"

	"github.com/clktmr/socfpga/hps/clkmgr"
	"github.com/clktmr/socfpga/hps/clkmgr/sim"
)

var testOsc = clkmgr.FixedOscillators{Osc: 25 * MHz, FPGA: 50 * MHz}

// pokeConfig writes the PLL part of testConfig as it would be after bring-up.
func pokeConfig(model *sim.Model) {
	c := &testConfig
	model.Poke(clkmgr.MainPLLPLLGlob, c.Main.PLLGlob)
	model.Poke(clkmgr.MainPLLPLLM, c.Main.PLLM)
	model.Poke(clkmgr.MainPLLPLLC0, c.Main.PLLC[0])
	model.Poke(clkmgr.MainPLLPLLC1, c.Main.PLLC[1])
	model.Poke(clkmgr.MainPLLPLLC2, c.Main.PLLC[2])
	model.Poke(clkmgr.MainPLLPLLC3, c.Main.PLLC[3])
	model.Poke(clkmgr.MainPLLNoCDiv, c.Main.NoCDiv)
	model.Poke(clkmgr.PerPLLPLLGlob, c.Per.PLLGlob)
	model.Poke(clkmgr.PerPLLPLLM, c.Per.PLLM)
	model.Poke(clkmgr.PerPLLPLLC0, c.Per.PLLC[0])
	model.Poke(clkmgr.PerPLLPLLC1, c.Per.PLLC[1])
	model.Poke(clkmgr.PerPLLPLLC2, c.Per.PLLC[2])
	model.Poke(clkmgr.PerPLLPLLC3, c.Per.PLLC[3])
}

func TestVCOCalib(t *testing.T) {
	tests := []struct {
		pllm, pllglob, calib uint32
	}{
		{80, 0x0000_0103, 0x0001_004c},
		{64, 0x0000_0103, 0x0001_003c},
		{10, 0x0000_1103, 0x0005_0001}, // drefdiv 1, refdiv 0x11
		{20, 0x0000_0203, 0x0005_002e}, // arefdiv 2
	}
	for _, tc := range tests {
		if calib := clkmgr.VCOCalib(tc.pllm, tc.pllglob); calib != tc.calib {
			t.Errorf("VCOCalib(%d, %#x): got %#08x, expected %#08x",
				tc.pllm, tc.pllglob, calib, tc.calib)
		}
	}
}

func TestVCOCalibMscntClamp(t *testing.T) {
	for mdiv := uint32(0); mdiv <= 0x3ff; mdiv++ {
		for dref := uint32(0); dref < 4; dref++ {
			for aref := uint32(0); aref < 16; aref++ {
				pllglob := dref<<12 | aref<<8
				mscnt := clkmgr.VCOCalib(mdiv, pllglob) >> 16 & 0xff
				if mscnt == 0 {
					t.Fatalf("mscnt 0 for mdiv %d, pllglob %#x", mdiv, pllglob)
				}
			}
		}
	}
}

func TestVCO(t *testing.T) {
	model := sim.New()
	mgr := clkmgr.New(model, testOsc)
	pokeConfig(model)

	tests := []struct {
		pllglob uint32
		hz      uint64
	}{
		{0x0000_0103, 2000 * MHz},           // EOSC1
		{0x0001_0103, 80 * clkmgr.IntOscHz}, // internal oscillator
		{0x0002_0103, 4000 * MHz},           // FPGA
		{0x0003_0103, 0},                    // reserved
		{0x0000_0503, 400 * MHz},            // arefdiv 5
		{0x0000_0003, 0},                    // arefdiv 0
	}
	for _, tc := range tests {
		model.Poke(clkmgr.MainPLLPLLGlob, tc.pllglob)
		if hz := mgr.VCO(clkmgr.MainPLL); hz != tc.hz {
			t.Errorf("PLLGLOB %#08x: got %d Hz, expected %d Hz", tc.pllglob, hz, tc.hz)
		}
	}
}

func TestSourceRate(t *testing.T) {
	model := sim.New()
	mgr := clkmgr.New(model, testOsc)
	pokeConfig(model)

	expected := [8]uint64{
		2000 * MHz / 5, // main PLL, PLLC1
		1600 * MHz / 8, // peripheral PLL, PLLC1
		25 * MHz,
		clkmgr.IntOscHz,
		50 * MHz,
		0, 0, 0, // reserved
	}
	for sel, hz := range expected {
		model.Poke(clkmgr.MainPLLNoCClk, uint32(sel)<<16)
		got := mgr.SourceRate(clkmgr.MainPLLNoCClk, clkmgr.MainPLLPLLC1, clkmgr.PerPLLPLLC1)
		if got != hz {
			t.Errorf("selector %d: got %d Hz, expected %d Hz", sel, got, hz)
		}
	}

	// A stopped counter disables the PLL output instead of dividing by 0.
	model.Poke(clkmgr.MainPLLNoCClk, 0)
	model.Poke(clkmgr.MainPLLPLLC1, 0x0800_0000)
	if hz := mgr.SourceRate(clkmgr.MainPLLNoCClk, clkmgr.MainPLLPLLC1, clkmgr.PerPLLPLLC1); hz != 0 {
		t.Errorf("stopped counter: got %d Hz", hz)
	}
}

func TestL4SysFree(t *testing.T) {
	model := sim.New()
	mgr := clkmgr.New(model, testOsc)
	pokeConfig(model)

	l3, err := mgr.Rate(clkmgr.L3Main)
	if err != nil {
		t.Fatal(err)
	}

	model.Poke(clkmgr.Stat, clkmgr.StatBootMode)
	if hz, _ := mgr.Rate(clkmgr.L4SysFree); hz != l3/2 {
		t.Errorf("boot mode: got %d Hz, expected %d Hz", hz, l3/2)
	}
	model.Poke(clkmgr.Stat, 0)
	if hz, _ := mgr.Rate(clkmgr.L4SysFree); hz != l3/4 {
		t.Errorf("normal mode: got %d Hz, expected %d Hz", hz, l3/4)
	}
}

func TestEMACSelect(t *testing.T) {
	model := sim.New()
	mgr := clkmgr.New(model, testOsc)
	pokeConfig(model)
	model.Poke(clkmgr.AltEMACACtr, 0x0000_0001) // main PLLC2 / 2
	model.Poke(clkmgr.AltEMACBCtr, 0x0002_0000) // EOSC1

	emacs := []clkmgr.Clock{clkmgr.EMAC0, clkmgr.EMAC1, clkmgr.EMAC2}
	for i, emac := range emacs {
		model.Poke(clkmgr.PerPLLEMACCtl, 0)
		if hz, _ := mgr.Rate(emac); hz != 250*MHz {
			t.Errorf("%v source A: got %d Hz", emac, hz)
		}
		model.Poke(clkmgr.PerPLLEMACCtl, 1<<(26+i))
		if hz, _ := mgr.Rate(emac); hz != 25*MHz {
			t.Errorf("%v source B: got %d Hz", emac, hz)
		}
		for _, other := range emacs {
			if other == emac {
				continue
			}
			if hz, _ := mgr.Rate(other); hz != 250*MHz {
				t.Errorf("%v affected by %v select: got %d Hz", other, emac, hz)
			}
		}
	}
}

func TestRateIdempotent(t *testing.T) {
	model := sim.New()
	mgr := clkmgr.New(model, testOsc)
	pokeConfig(model)

	for c := range clkmgr.ClockLast {
		a, err := mgr.Rate(c)
		if err != nil {
			t.Fatal(err)
		}
		b, _ := mgr.Rate(c)
		if a != b {
			t.Errorf("%v: %d != %d", c, a, b)
		}
	}
	if len(model.Stores) != 0 {
		t.Error("rate query modified registers")
	}
}

func TestRateUnsupported(t *testing.T) {
	model := sim.New()
	mgr := clkmgr.New(model, testOsc)

	_, err := mgr.Rate(clkmgr.ClockLast)
	if !errors.Is(err, clkmgr.ErrUnsupportedClock) {
		t.Fatalf("expected unsupported clock, got %v", err)
	}
	if model.Loads != 0 || len(model.Stores) != 0 {
		t.Errorf("touched registers: %d loads, %d stores", model.Loads, len(model.Stores))
	}
}
