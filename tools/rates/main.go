package rates

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/socfpga/hps/clkmgr"
	"github.com/clktmr/socfpga/hps/clkmgr/sim"
	"github.com/clktmr/socfpga/hps/handoff"
)

const usageString = `Apply a clock configuration to a register model and print the rates.

Usage: %s [flags] <config>

The configuration is read as Intel HEX (.hex), binary image (.bin) or text.

`

var (
	flags = flag.NewFlagSet("rates", flag.ExitOnError)

	osc  = flags.Uint64("osc", 0, "override the oscillator frequency in Hz")
	fpga = flags.Uint64("fpga", 0, "override the FPGA clock frequency in Hz")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "rates")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	cfg, err := handoff.Load(flags.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}

	mgr, err := Simulate(cfg)
	if err != nil {
		log.Fatalln(err)
	}

	o := cfg.Oscillators()
	if *osc != 0 {
		o.Osc = *osc
	}
	if *fpga != 0 {
		o.FPGA = *fpga
	}
	mgr.SetOscillators(o)

	if err := Print(os.Stdout, mgr); err != nil {
		log.Fatalln(err)
	}
}

// Simulate applies cfg to a register model and returns the clock manager
// operating on it.
func Simulate(cfg *clkmgr.Config) (*clkmgr.Manager, error) {
	model := sim.New()
	model.FSMLatency = 4
	model.LockLatency = 64
	model.MembusLatency = 4

	mgr := clkmgr.New(model, cfg.Oscillators())
	if err := mgr.Apply(cfg); err != nil {
		return nil, err
	}
	if err := mgr.SyncErr(); err != nil {
		log.Println("warning:", err)
	}
	return mgr, nil
}
