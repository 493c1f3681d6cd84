package clkmgr

import (
	"fmt"

	"github.com/clktmr/socfpga/debug"
)

// Apply programs the clock configuration cfg without making any assumptions
// about the previous state of the clocks. A nil cfg leaves the clocks
// untouched.
//
// Apply replays the whole sequence on every call. It fails if the state
// machine doesn't settle or the PLLs don't lock. Failing to switch the PLL
// outputs to synchronous mode is reported by SyncErr only.
func (m *Manager) Apply(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	m.syncErr = nil

	// Put both PLLs in bypass
	if err := m.busyWrite(MainPLLBypass, bypassMainAll); err != nil {
		return fmt.Errorf("%w: main PLL bypass", err)
	}
	if err := m.busyWrite(PerPLLBypass, bypassPerAll); err != nil {
		return fmt.Errorf("%w: peripheral PLL bypass", err)
	}

	// Put both PLLs in reset and power down
	ClearBits(m.regs, MainPLLPLLGlob, pllGlobPD|pllGlobRst)
	ClearBits(m.regs, PerPLLPLLGlob, pllGlobPD|pllGlobRst)

	m.programPLL(&mainPLL, &cfg.Main.PLLConfig)
	m.regs.Store(MainPLLMPUClk, cfg.Main.MPUClk)
	m.regs.Store(MainPLLNoCClk, cfg.Main.NoCClk)
	m.regs.Store(MainPLLNoCDiv, cfg.Main.NoCDiv)

	m.programPLL(&perPLL, &cfg.Per.PLLConfig)
	m.regs.Store(PerPLLEMACCtl, cfg.Per.EMACCtl)
	m.regs.Store(PerPLLGPIODiv, cfg.Per.GPIODiv)

	// Take both PLLs out of reset and power up. Both bits are active low.
	SetBits(m.regs, MainPLLPLLGlob, pllGlobPD|pllGlobRst)
	SetBits(m.regs, PerPLLPLLGlob, pllGlobPD|pllGlobRst)

	for _, bus := range [...]Bus{MainBus, PerBus} {
		if err := m.enableSyncMode(bus); err != nil && m.syncErr == nil {
			debug.Printf("%v\n", err)
			m.syncErr = err
		}
	}

	if err := m.waitForLock(); err != nil {
		return err
	}

	m.regs.Store(AltEMACACtr, cfg.Alt.EMACACtr)
	m.regs.Store(AltEMACBCtr, cfg.Alt.EMACBCtr)
	m.regs.Store(AltEMACPTPCtr, cfg.Alt.EMACPTPCtr)
	m.regs.Store(AltGPIODBCtr, cfg.Alt.GPIODBCtr)
	m.regs.Store(AltSDMMCCtr, cfg.Alt.SDMMCCtr)
	m.regs.Store(AltS2FUser0Ctr, cfg.Alt.S2FUser0Ctr)
	m.regs.Store(AltS2FUser1Ctr, cfg.Alt.S2FUser1Ctr)
	m.regs.Store(AltPSIRefCtr, cfg.Alt.PSIRefCtr)

	// Acknowledge loss of lock latched while the PLLs were starting and
	// keep the PLLs from latching it again while still in bypass.
	m.regs.Store(MainPLLLostLock, lostLockSet)
	m.regs.Store(PerPLLLostLock, lostLockSet)
	ClearBits(m.regs, IntrClr, intrMainLost|intrPerLost)
	SetBits(m.regs, MainPLLPLLGlob, pllGlobClrLostLockBypass)
	SetBits(m.regs, PerPLLPLLGlob, pllGlobClrLostLockBypass)

	// Take both PLLs out of bypass
	if err := m.busyWrite(MainPLLBypass, 0); err != nil {
		return fmt.Errorf("%w: main PLL bypass exit", err)
	}
	if err := m.busyWrite(PerPLLBypass, 0); err != nil {
		return fmt.Errorf("%w: peripheral PLL bypass exit", err)
	}

	// Start the ping-pong counters
	ClearBits(m.regs, AltExtCntRst, extCntRstAll)

	if err := m.busyWrite(Ctrl, m.regs.Load(Ctrl)&^ctrlBootMode); err != nil {
		return fmt.Errorf("%w: boot mode exit", err)
	}
	return nil
}

// programPLL writes the PLL registers in the order the hardware latches
// them. The PLL is kept in reset.
func (m *Manager) programPLL(pll *pllRegs, cfg *PLLConfig) {
	m.regs.Store(pll.pllglob, cfg.PLLGlob&^pllGlobRst)
	m.regs.Store(pll.fdbck, cfg.Fdbck)
	m.regs.Store(pll.vcocalib, VCOCalib(cfg.PLLM, cfg.PLLGlob))
	for i, r := range pll.pllc {
		m.regs.Store(r, cfg.PLLC[i])
	}
	m.regs.Store(pll.pllm, cfg.PLLM)
}

func (m *Manager) waitForLock() error {
	var stat uint32
	err := poll(m.Limits.Lock, func() bool {
		stat = m.regs.Load(Stat)
		return stat&statAllPLLLocked == statAllPLLLocked
	})
	if err != nil {
		return fmt.Errorf("%w: stat %#08x", ErrLockFailure, stat)
	}
	return nil
}
