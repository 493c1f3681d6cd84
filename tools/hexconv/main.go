package hexconv

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/clktmr/socfpga/hps/handoff"
)

const usageString = `Convert a text clock configuration to Intel HEX.

Usage: %s [flags] <config> <hexfile>

`

var (
	flags = flag.NewFlagSet("hex", flag.ExitOnError)

	addr = flags.String("addr", "0", "load address of the configuration image")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "hex")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 2 {
		flags.Usage()
		os.Exit(1)
	}

	a, err := strconv.ParseUint(*addr, 0, 32)
	if err != nil {
		log.Fatalln("invalid address:", err)
	}

	in, err := os.Open(flags.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	defer in.Close()
	cfg, err := handoff.ParseText(in)
	if err != nil {
		log.Fatalln(err)
	}

	out, err := os.Create(flags.Arg(1))
	if err != nil {
		log.Fatalln(err)
	}
	if err := handoff.WriteHex(out, cfg, uint32(a)); err != nil {
		log.Fatalln(err)
	}
	if err := out.Close(); err != nil {
		log.Fatalln(err)
	}
}
