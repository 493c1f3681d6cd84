package devmem

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/socfpga/hps/clkmgr"
	"github.com/clktmr/socfpga/tools/rates"
)

const usageString = `Print the clock rates of the running system.

Usage: %s [flags]

The clock manager registers are mapped read-only from /dev/mem. The input
frequencies aren't visible in the registers and must be passed as flags.

`

var (
	flags = flag.NewFlagSet("devmem", flag.ExitOnError)

	base = flags.Uint64("base", uint64(clkmgr.BaseAddr), "physical address of the clock manager")
	osc  = flags.Uint64("osc", 25_000_000, "oscillator frequency in Hz")
	fpga = flags.Uint64("fpga", 0, "FPGA clock frequency in Hz")
	path = flags.String("mem", "/dev/mem", "physical memory device")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "devmem")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 0 {
		flags.Usage()
		os.Exit(1)
	}

	mem, unmap, err := mapRegs(*path, int64(*base), clkmgr.Size)
	if err != nil {
		log.Fatalln(err)
	}
	defer unmap()

	mgr := clkmgr.New(readOnly{clkmgr.MapSlice(mem)}, clkmgr.FixedOscillators{Osc: *osc, FPGA: *fpga})
	if err := rates.Print(os.Stdout, mgr); err != nil {
		log.Fatalln(err)
	}
}

// readOnly refuses stores, the mapping of the running system is never
// written.
type readOnly struct{ *clkmgr.MMIO }

func (r readOnly) Store(reg clkmgr.Reg, v uint32) {
	panic(fmt.Sprintf("devmem: store %#08x to %#x", v, reg))
}
