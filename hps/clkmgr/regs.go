package clkmgr

// BaseAddr is the physical address of the clock manager register block.
const BaseAddr uintptr = 0xffd1_0000

// Reg is the byte offset of a register inside the clock manager block.
type Reg uint32

// Global registers
const (
	Ctrl       Reg = 0x00
	Stat       Reg = 0x04
	TestIOCtrl Reg = 0x08
	IntrGen    Reg = 0x0c
	IntrMsk    Reg = 0x10
	IntrClr    Reg = 0x14
	IntrSts    Reg = 0x18
	IntrStk    Reg = 0x1c
	IntrRaw    Reg = 0x20
)

// Main PLL group
const (
	MainPLLEn       Reg = 0x24
	MainPLLEnS      Reg = 0x28
	MainPLLEnR      Reg = 0x2c
	MainPLLBypass   Reg = 0x30
	MainPLLBypassS  Reg = 0x34
	MainPLLBypassR  Reg = 0x38
	MainPLLMPUClk   Reg = 0x3c
	MainPLLNoCClk   Reg = 0x40
	MainPLLNoCDiv   Reg = 0x44
	MainPLLPLLGlob  Reg = 0x48
	MainPLLFdbck    Reg = 0x4c
	MainPLLMem      Reg = 0x50
	MainPLLMemStat  Reg = 0x54
	MainPLLPLLC0    Reg = 0x58
	MainPLLPLLC1    Reg = 0x5c
	MainPLLVCOCalib Reg = 0x60
	MainPLLPLLC2    Reg = 0x64
	MainPLLPLLC3    Reg = 0x68
	MainPLLPLLM     Reg = 0x6c
	MainPLLLostLock Reg = 0x78
)

// Peripheral PLL group
const (
	PerPLLEn       Reg = 0x7c
	PerPLLEnS      Reg = 0x80
	PerPLLEnR      Reg = 0x84
	PerPLLBypass   Reg = 0x88
	PerPLLBypassS  Reg = 0x8c
	PerPLLBypassR  Reg = 0x90
	PerPLLEMACCtl  Reg = 0x94
	PerPLLGPIODiv  Reg = 0x98
	PerPLLPLLGlob  Reg = 0x9c
	PerPLLFdbck    Reg = 0xa0
	PerPLLMem      Reg = 0xa4
	PerPLLMemStat  Reg = 0xa8
	PerPLLPLLC0    Reg = 0xac
	PerPLLPLLC1    Reg = 0xb0
	PerPLLVCOCalib Reg = 0xb4
	PerPLLPLLC2    Reg = 0xb8
	PerPLLPLLC3    Reg = 0xbc
	PerPLLPLLM     Reg = 0xc0
	PerPLLLostLock Reg = 0xcc
)

// Altera group, ping-pong counters
const (
	AltEMACACtr    Reg = 0xd4
	AltEMACBCtr    Reg = 0xd8
	AltEMACPTPCtr  Reg = 0xdc
	AltGPIODBCtr   Reg = 0xe0
	AltSDMMCCtr    Reg = 0xe4
	AltS2FUser0Ctr Reg = 0xe8
	AltS2FUser1Ctr Reg = 0xec
	AltPSIRefCtr   Reg = 0xf0
	AltExtCntRst   Reg = 0xf4
)

// Size is the size of the register block in bytes.
const Size = 0x100

const ctrlBootMode uint32 = 1 << 0

const (
	statBusy         uint32 = 1 << 0
	statMainLocked   uint32 = 1 << 8
	statPerLocked    uint32 = 1 << 16
	statBootMode     uint32 = 1 << 24
	statAllPLLLocked        = statMainLocked | statPerLocked
)

// Bits a register model needs to mimic the hardware handshakes.
const (
	StatBusy      = statBusy
	StatMainLock  = statMainLocked
	StatPerLock   = statPerLocked
	StatBootMode  = statBootMode
	CtrlBootMode  = ctrlBootMode
	PLLGlobPD     = pllGlobPD
	PLLGlobRst    = pllGlobRst
	IntrMainLost  = intrMainLost
	IntrPerLost   = intrPerLost
	MemReq        = memReq
	MemWr         = memWr
	MemAddrMask   = memAddrMask
	MemAddrStart  = memAddrStart
	MemWdatShift  = memWdatShift
	ExtCntRstAll  = extCntRstAll
	BypassMainAll = bypassMainAll
	BypassPerAll  = bypassPerAll
)

const (
	intrMainLost uint32 = 1 << 2
	intrPerLost  uint32 = 1 << 3
)

// Generic 5:1 clock source mux and counter, shared by MPUCLK, NOCCLK and the
// altera group counters.
const (
	clkSrcMask  uint32 = 0x7 << 16
	clkSrcShift        = 16
	clkCntMask  uint32 = 0x7ff
)

// ClkSrc is the value of a 5:1 clock source selector.
type ClkSrc uint32

const (
	ClkSrcMain   ClkSrc = iota // main PLL VCO through the main counter
	ClkSrcPer                  // peripheral PLL VCO through the peripheral counter
	ClkSrcOsc1                 // external oscillator
	ClkSrcIntOsc               // internal oscillator
	ClkSrcFPGA                 // FPGA fabric clock
)

const (
	bypassMainAll uint32 = 0x7
	bypassPerAll  uint32 = 0x7f
)

const (
	nocDivL4MainShift = 0
	nocDivL4MPShift   = 8
	nocDivL4SPShift   = 16
	nocDivMask        = 0x3
)

const (
	pllGlobPD                uint32 = 1 << 0
	pllGlobRst               uint32 = 1 << 1
	pllGlobArefDivMask       uint32 = 0xf << 8
	pllGlobArefDivShift             = 8
	pllGlobDrefDivMask       uint32 = 0x3 << 12
	pllGlobDrefDivShift             = 12
	pllGlobRefDivMask        uint32 = 0x3f << 8
	pllGlobRefDivShift              = 8
	pllGlobPSrcMask          uint32 = 0x3 << 16
	pllGlobPSrcShift                = 16
	pllGlobClrLostLockBypass uint32 = 1 << 29
)

// PLL reference clock selector in PLLGLOB.
const (
	psrcOsc1   = 0
	psrcIntOsc = 1
	psrcFPGA   = 2
)

const (
	memReq       uint32 = 1 << 24
	memWr        uint32 = 1 << 25
	memWdatShift        = 16
	memWdatMask  uint32 = 0xff << memWdatShift
	memAddrMask  uint32 = 0xffff
	memAddrStart uint32 = 0x4000
)

const (
	vcoCalibMscntMask  uint32 = 0xff << 16
	vcoCalibMscntShift        = 16
	vcoCalibHscntMask  uint32 = 0x3ff
	vcoCalibMscntConst        = 100
	vcoCalibHscntConst        = 4
)

const pllmMdivMask uint32 = 0x3ff

const lostLockSet uint32 = 1 << 0

// EMAC select bits in EMACCTL, set means source B.
const (
	emacCtlEMAC0SelBShift = 26
	emacCtlEMAC1SelBShift = 27
	emacCtlEMAC2SelBShift = 28
)

const (
	extCntRstEMACA    uint32 = 1 << 0
	extCntRstEMACB    uint32 = 1 << 1
	extCntRstEMACPTP  uint32 = 1 << 2
	extCntRstGPIODB   uint32 = 1 << 3
	extCntRstSDMMC    uint32 = 1 << 4
	extCntRstS2FUser0 uint32 = 1 << 5
	extCntRstS2FUser1 uint32 = 1 << 6
	extCntRstPSIRef   uint32 = 1 << 7

	extCntRstAll = extCntRstEMACA | extCntRstEMACB | extCntRstEMACPTP |
		extCntRstGPIODB | extCntRstSDMMC | extCntRstS2FUser0 |
		extCntRstS2FUser1 | extCntRstPSIRef
)
