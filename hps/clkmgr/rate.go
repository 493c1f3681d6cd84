package clkmgr

import "fmt"

// Clock identifies a clock derived by the clock manager.
type Clock uint8

const (
	MPU Clock = iota
	L3Main
	L4Main
	L4SP
	L4MP
	L4SysFree
	SDMMC
	EMAC0
	EMAC1
	EMAC2
	USB

	ClockLast
)

var clockNames = [ClockLast]string{
	MPU:       "mpu",
	L3Main:    "l3_main",
	L4Main:    "l4_main",
	L4SP:      "l4_sp",
	L4MP:      "l4_mp",
	L4SysFree: "l4_sys_free",
	SDMMC:     "sdmmc",
	EMAC0:     "emac0",
	EMAC1:     "emac1",
	EMAC2:     "emac2",
	USB:       "usb",
}

func (c Clock) String() string {
	if c < ClockLast {
		return clockNames[c]
	}
	return fmt.Sprintf("Clock(%d)", uint8(c))
}

// Rate returns the current frequency of clock c in Hz.
func (m *Manager) Rate(c Clock) (uint64, error) {
	switch c {
	case MPU:
		return m.mpuHz(), nil
	case L3Main:
		return m.l3MainHz(), nil
	case L4Main:
		return m.nocDivHz(nocDivL4MainShift), nil
	case L4SP:
		return m.nocDivHz(nocDivL4SPShift), nil
	case L4MP, USB:
		return m.nocDivHz(nocDivL4MPShift), nil
	case L4SysFree:
		return m.l4SysFreeHz(), nil
	case SDMMC:
		return m.sdmmcHz(), nil
	case EMAC0:
		return m.emacHz(emacCtlEMAC0SelBShift), nil
	case EMAC1:
		return m.emacHz(emacCtlEMAC1SelBShift), nil
	case EMAC2:
		return m.emacHz(emacCtlEMAC2SelBShift), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedClock, c)
}

// PLL selects one of the two PLLs.
type PLL uint8

const (
	MainPLL PLL = iota
	PerPLL
)

// VCO returns the VCO frequency of pll in Hz.
func (m *Manager) VCO(pll PLL) uint64 {
	regs := &mainPLL
	if pll == PerPLL {
		regs = &perPLL
	}

	pllglob := m.regs.Load(regs.pllglob)
	var fref uint64
	switch field(pllglob, pllGlobPSrcMask, pllGlobPSrcShift) {
	case psrcOsc1:
		fref = m.oscHz()
	case psrcIntOsc:
		fref = m.intOscHz()
	case psrcFPGA:
		fref = m.fpgaHz()
	}

	arefdiv := uint64(field(pllglob, pllGlobArefDivMask, pllGlobArefDivShift))
	if arefdiv == 0 {
		return 0
	}
	mdiv := uint64(m.regs.Load(regs.pllm) & pllmMdivMask)

	return fref / arefdiv * mdiv
}

// clkSrc returns the 5:1 source selector of register r.
func (m *Manager) clkSrc(r Reg) ClkSrc {
	return ClkSrc(field(m.regs.Load(r), clkSrcMask, clkSrcShift))
}

// SourceRate returns the frequency selected by the 5:1 mux in register
// clksrc. A PLL output is divided by the counter in mainCnt or perCnt
// respectively. Reserved selectors yield 0.
func (m *Manager) SourceRate(clksrc, mainCnt, perCnt Reg) uint64 {
	return m.srcHz(m.clkSrc(clksrc), mainCnt, perCnt)
}

func (m *Manager) srcHz(src ClkSrc, mainCnt, perCnt Reg) uint64 {
	switch src {
	case ClkSrcMain:
		return m.pllOutHz(MainPLL, mainCnt)
	case ClkSrcPer:
		return m.pllOutHz(PerPLL, perCnt)
	case ClkSrcOsc1:
		return m.oscHz()
	case ClkSrcIntOsc:
		return m.intOscHz()
	case ClkSrcFPGA:
		return m.fpgaHz()
	}
	return 0
}

// pllOutHz returns the VCO of pll divided by the counter in cnt. A stopped
// counter yields 0.
func (m *Manager) pllOutHz(pll PLL, cnt Reg) uint64 {
	div := uint64(m.regs.Load(cnt) & clkCntMask)
	if div == 0 {
		return 0
	}
	return m.VCO(pll) / div
}

func (m *Manager) mpuHz() uint64 {
	hz := m.SourceRate(MainPLLMPUClk, MainPLLPLLC0, PerPLLPLLC0)
	return hz / uint64(1+m.regs.Load(MainPLLMPUClk)&clkCntMask)
}

func (m *Manager) l3MainHz() uint64 {
	return m.SourceRate(MainPLLNoCClk, MainPLLPLLC1, PerPLLPLLC1)
}

func (m *Manager) nocDivHz(shift int) uint64 {
	div := m.regs.Load(MainPLLNoCDiv) >> shift & nocDivMask
	return m.l3MainHz() >> div
}

// l4SysFreeHz runs at half the L3 main clock in boot mode and at a quarter
// otherwise.
func (m *Manager) l4SysFreeHz() uint64 {
	if m.regs.Load(Stat)&statBootMode != 0 {
		return m.l3MainHz() / 2
	}
	return m.l3MainHz() / 4
}

// sdmmcHz accounts for the fixed divide by 4 in the SD/MMC clock path.
func (m *Manager) sdmmcHz() uint64 {
	hz := m.SourceRate(AltSDMMCCtr, MainPLLPLLC3, PerPLLPLLC3)
	hz /= uint64(1 + m.regs.Load(AltSDMMCCtr)&clkCntMask)
	return hz / 4
}

// emacHz returns the rate of the EMAC whose source B select bit in EMACCTL
// is at selBShift. Source A is the EMACA counter fed by PLLC2, source B the
// EMACB counter fed by PLLC3.
func (m *Manager) emacHz(selBShift int) uint64 {
	ctr, mainCnt, perCnt := AltEMACACtr, MainPLLPLLC2, PerPLLPLLC2
	if m.regs.Load(PerPLLEMACCtl)>>selBShift&1 != 0 {
		ctr, mainCnt, perCnt = AltEMACBCtr, MainPLLPLLC3, PerPLLPLLC3
	}

	reg := m.regs.Load(ctr)
	hz := m.srcHz(ClkSrc(field(reg, clkSrcMask, clkSrcShift)), mainCnt, perCnt)
	return hz / uint64(1+reg&clkCntMask)
}
