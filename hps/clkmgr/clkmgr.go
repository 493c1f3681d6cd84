// Package clkmgr drives the HPS clock manager of Agilex SoC FPGAs. It brings
// the main and peripheral PLLs from an unknown power-on state into a locked
// configuration and computes the rate of the clocks derived from them.
//
// The clock manager owns its register block exclusively. Nothing here is
// safe for concurrent use during Apply, rate queries only read registers and
// may be repeated in any order.
package clkmgr

import "errors"

var (
	// ErrTimeout is returned when a busy flag doesn't clear within its budget.
	ErrTimeout = errors.New("clkmgr: poll timeout")
	// ErrLockFailure is returned when the PLLs don't report lock.
	ErrLockFailure = errors.New("clkmgr: PLL lock failure")
	// ErrUnsupportedClock is returned by Rate for an unknown clock.
	ErrUnsupportedClock = errors.New("clkmgr: unsupported clock")
)

// IntOscHz is the nominal frequency of the internal oscillator.
const IntOscHz = 400_000_000

// Oscillators provides the frequency of the clock manager's inputs, which
// depend on the board and the FPGA design.
type Oscillators interface {
	OscHz() uint64    // external oscillator EOSC1
	IntOscHz() uint64 // internal oscillator
	FPGAHz() uint64   // FPGA fabric to HPS clock
}

// FixedOscillators reports constant input frequencies. A zero IntOsc defaults
// to IntOscHz.
type FixedOscillators struct {
	Osc, IntOsc, FPGA uint64
}

func (o FixedOscillators) OscHz() uint64 { return o.Osc }

func (o FixedOscillators) IntOscHz() uint64 {
	if o.IntOsc == 0 {
		return IntOscHz
	}
	return o.IntOsc
}

func (o FixedOscillators) FPGAHz() uint64 { return o.FPGA }

// Limits are the iteration budgets of the busy polls. They count register
// reads, not time, because no timer is set up when the clocks are applied.
type Limits struct {
	FSM    int // STAT.BUSY after bypass and control writes
	Lock   int // PLL lock after power up
	Membus int // indirect bus request acknowledge
}

// DefaultLimits are the budgets used by New.
var DefaultLimits = Limits{
	FSM:    1_000_000,
	Lock:   100_000_000,
	Membus: MembusTimeout,
}

// Manager applies configurations to and queries rates of one clock manager
// register block.
type Manager struct {
	regs Block
	osc  Oscillators

	Limits Limits

	syncErr error
}

// New returns a clock manager operating on regs. osc may be nil until rates
// are queried.
func New(regs Block, osc Oscillators) *Manager {
	return &Manager{regs: regs, osc: osc, Limits: DefaultLimits}
}

// SetOscillators replaces the frequency source used by rate queries.
func (m *Manager) SetOscillators(osc Oscillators) {
	m.osc = osc
}

// SyncErr returns the membus error of the last Apply, if any. It doesn't
// cause Apply to fail.
func (m *Manager) SyncErr() error {
	return m.syncErr
}

func (m *Manager) oscHz() uint64 {
	if m.osc == nil {
		return 0
	}
	return m.osc.OscHz()
}

func (m *Manager) intOscHz() uint64 {
	if m.osc == nil {
		return IntOscHz
	}
	return m.osc.IntOscHz()
}

func (m *Manager) fpgaHz() uint64 {
	if m.osc == nil {
		return 0
	}
	return m.osc.FPGAHz()
}
