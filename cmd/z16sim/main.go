// Command z16sim disassembles and simulates a raw Z16 binary image,
// writing the combined disassembly, execution trace, register dump, and
// memory listing to "<input>.dis".
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AbdelrahmanBedoo/z16sim/config"
	"github.com/AbdelrahmanBedoo/z16sim/disasm"
	"github.com/AbdelrahmanBedoo/z16sim/loader"
	"github.com/AbdelrahmanBedoo/z16sim/report"
	"github.com/AbdelrahmanBedoo/z16sim/sim"
	"github.com/AbdelrahmanBedoo/z16sim/translate"
	"github.com/AbdelrahmanBedoo/z16sim/z16"
)

var f = translate.From

func main() {
	var verbose bool
	var configPath string

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&configPath, "config", "", "optional TOML configuration file")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal(f("usage: z16sim <machine_code_file_name>"))
	}
	path := flag.Arg(0)

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath, cfg)
		if err != nil {
			log.Fatal(err)
		}
	}

	image, programSize, err := loader.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(f("Loaded %d bytes into memory from %s", programSize, path))

	m := z16.NewMachine()
	m.Verbose = verbose
	m.LoadImage(image)

	outputPath := path + ".dis"
	outf, err := os.Create(outputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer outf.Close()

	if err := run(m, outf, cfg, verbose); err != nil {
		log.Fatal(err)
	}

	fmt.Println(f("Disassembly and simulation trace written to %s", outputPath))
}

// run writes the full output file in the fixed order SPEC_FULL.md §6
// requires: disassembly dump, then execution trace, then register dump,
// then memory listing. The disassembly dump is taken from the image as
// loaded; m is then reset so the trace starts from a clean machine state
// (§5 ordering guarantee).
func run(m *z16.Machine, outf *os.File, cfg config.Config, verbose bool) error {
	if _, err := fmt.Fprintln(outf, f("Full disassembly of binary:")); err != nil {
		return err
	}
	for _, line := range disasm.Walk(&m.Mem, m.ProgramSize) {
		if _, err := fmt.Fprintln(outf, line); err != nil {
			return err
		}
	}

	m.ResetForExecution()

	if _, err := fmt.Fprintln(outf); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(outf, f("Execution simulation trace:")); err != nil {
		return err
	}
	if err := sim.Run(m, outf, cfg.Options(verbose)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(outf); err != nil {
		return err
	}
	if err := report.WriteRegisters(outf, &m.Regs); err != nil {
		return err
	}
	return report.WriteMemory(outf, &m.Mem)
}
