package sim

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/AbdelrahmanBedoo/z16sim/disasm"
	"github.com/AbdelrahmanBedoo/z16sim/z16"
)

// DefaultCycleBudget bounds a run's instruction count absent an override
// (SPEC_FULL.md §4.3). config.Config.CycleBudget may lower it; nothing
// raises it.
const DefaultCycleBudget = 10000

// Options configures a single Run.
type Options struct {
	Verbose bool // enables diagnostic logging of budget/decode events

	// CycleBudget lowers DefaultCycleBudget when positive and smaller;
	// any other value leaves the default in place.
	CycleBudget int

	// Strict promotes a z16.ErrDecodeUnknown to a fatal error instead of
	// the default behaviour of logging it and advancing past the word.
	Strict bool

	// NoTrace suppresses the per-instruction trace line Run would
	// otherwise write before executing each instruction. Its zero value
	// keeps tracing on, matching the source's unconditional behaviour.
	NoTrace bool
}

// Run drives m from its current pc to completion: fetch-decode-execute in
// a loop, bounded by a cycle budget, writing a trace line for each
// instruction to w before its side effects take place (§5 ordering
// guarantee), and servicing ecalls over w via TextEnvironment.
//
// Run returns nil for every outcome the spec treats as non-fatal: a clean
// halt (ecall 3), running off the end of the program image, a cycle-budget
// overrun, or (absent Strict) a decode failure. It returns a non-nil error
// for a *z16.ErrMemoryBounds fault or a decode failure under Strict (both
// wrapped as *ErrRuntime), for an error from the environment (also wrapped
// as *ErrRuntime), and for a failed write to w (returned as is).
func Run(m *z16.Machine, w io.Writer, opts Options) error {
	budget := opts.CycleBudget
	if budget <= 0 || budget > DefaultCycleBudget {
		budget = DefaultCycleBudget
	}

	env := &TextEnvironment{W: w}

	for cycles := 0; int(m.PC) < m.ProgramSize; cycles++ {
		if cycles >= budget {
			budgetErr := &ErrCycleBudget{PC: m.PC}
			if _, err := fmt.Fprintln(w, budgetErr.Error()); err != nil {
				return err
			}
			if opts.Verbose {
				log.Print(f("sim: %v", budgetErr))
			}
			return nil
		}

		if !opts.NoTrace {
			word, err := m.Mem.ReadWord(m.PC)
			if err != nil {
				return &ErrRuntime{PC: m.PC, Err: err}
			}
			line, _ := disasm.InstructionLine(m.PC, word)
			if line == "" {
				line = fmt.Sprintf("0x%04x: %04x  .word 0x%04x", m.PC, word, word)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}

		pc := m.PC
		outcome, err := z16.Step(m, env)
		if err != nil {
			var unknown *z16.ErrDecodeUnknown
			if errors.As(err, &unknown) {
				if opts.Strict {
					return &ErrRuntime{PC: pc, Err: err}
				}
				if _, werr := fmt.Fprintln(w, unknown.Error()); werr != nil {
					return werr
				}
				if opts.Verbose {
					log.Print(f("sim: %v", unknown))
				}
				continue
			}
			return &ErrRuntime{PC: pc, Err: err}
		}

		if outcome == z16.Halt {
			return nil
		}
	}

	return nil
}
