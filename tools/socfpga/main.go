package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/socfpga/tools/devmem"
	"github.com/clktmr/socfpga/tools/hexconv"
	"github.com/clktmr/socfpga/tools/rates"
)

const usageString = `socfpga is a tool for inspecting SoC FPGA clock configurations.

Usage:

	%s <command> [arguments]

The commands are:

	rates    apply a clock configuration to a register model and print the rates
	devmem   print the rates of the running system
	hex      convert a text clock configuration to Intel HEX
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "rates":
		rates.Main(flag.Args())
	case "devmem":
		devmem.Main(flag.Args())
	case "hex":
		hexconv.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
