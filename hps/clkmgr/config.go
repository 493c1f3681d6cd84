package clkmgr

// PLLConfig holds the registers common to both PLL groups.
type PLLConfig struct {
	PLLGlob uint32
	Fdbck   uint32
	PLLC    [4]uint32
	PLLM    uint32
}

// MainPLLConfig holds the main PLL group, including the MPU and NoC clocks.
type MainPLLConfig struct {
	PLLConfig
	MPUClk uint32
	NoCClk uint32
	NoCDiv uint32
}

// PerPLLConfig holds the peripheral PLL group, including the EMAC selects.
type PerPLLConfig struct {
	PLLConfig
	EMACCtl uint32
	GPIODiv uint32
}

// AltConfig holds the ping-pong counters of the altera group.
type AltConfig struct {
	EMACACtr    uint32
	EMACBCtr    uint32
	EMACPTPCtr  uint32
	GPIODBCtr   uint32
	SDMMCCtr    uint32
	S2FUser0Ctr uint32
	S2FUser1Ctr uint32
	PSIRefCtr   uint32
}

// Config is the register level clock configuration of a board, usually
// generated by the FPGA design tools. It is never modified by the clock
// manager.
type Config struct {
	Main MainPLLConfig
	Per  PerPLLConfig
	Alt  AltConfig

	HPSOscHz uint32 // EOSC1 frequency of the board
	FPGAHz   uint32 // FPGA to HPS clock of the FPGA design
}

// Oscillators returns the input frequencies described by c.
func (c *Config) Oscillators() FixedOscillators {
	return FixedOscillators{Osc: uint64(c.HPSOscHz), FPGA: uint64(c.FPGAHz)}
}

type pllRegs struct {
	pllglob, fdbck, vcocalib, pllm Reg
	pllc                           [4]Reg
}

var (
	mainPLL = pllRegs{
		pllglob:  MainPLLPLLGlob,
		fdbck:    MainPLLFdbck,
		vcocalib: MainPLLVCOCalib,
		pllm:     MainPLLPLLM,
		pllc:     [4]Reg{MainPLLPLLC0, MainPLLPLLC1, MainPLLPLLC2, MainPLLPLLC3},
	}
	perPLL = pllRegs{
		pllglob:  PerPLLPLLGlob,
		fdbck:    PerPLLFdbck,
		vcocalib: PerPLLVCOCalib,
		pllm:     PerPLLPLLM,
		pllc:     [4]Reg{PerPLLPLLC0, PerPLLPLLC1, PerPLLPLLC2, PerPLLPLLC3},
	}
)
