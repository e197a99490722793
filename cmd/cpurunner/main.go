// Command cpurunner is a headless host scheduler for the SM83 core: it
// loads a flat binary image, calls CPU.Step in a loop the way spec.md §2
// describes a host driving the CPU, and reports the final register file
// and cycle count. It is the debugging counterpart to a real frontend, in
// the same spirit as the teacher's cmd/cpurunner trace-and-auto-pass tool,
// rebuilt on kong (github.com/alecthomas/kong, per arl-nestor/cli.go)
// instead of the flag package.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dmgcore/sm83/internal/bus"
	"github.com/dmgcore/sm83/internal/cpu"
	"github.com/dmgcore/sm83/internal/cpu/corelog"
)

type cli struct {
	Program string `arg:"" name:"program" help:"Flat binary image to load at address 0x0000." type:"existingfile"`

	Steps      int    `name:"steps" help:"Maximum number of Step calls to execute." default:"1000000"`
	PC         uint16 `name:"pc" help:"Initial program counter (applied with the postboot profile only)." default:"256"`
	Profile    string `name:"profile" help:"Reset profile: cold or postboot." default:"postboot" enum:"cold,postboot"`
	ConfigPath string `name:"config" help:"Optional TOML config (unknown_opcode_policy, trace_level)." type:"path"`
	Trace      bool   `name:"trace" help:"Enable per-step debug tracing to stderr."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("cpurunner"),
		kong.Description("Headless driver for the SM83 CPU core."),
		kong.UsageOnError(),
	)

	program, err := os.ReadFile(args.Program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read program: %v\n", err)
		os.Exit(1)
	}

	cfg := cpu.DefaultConfig()
	if args.ConfigPath != "" {
		cfg = cpu.LoadConfigOrDefault(args.ConfigPath)
	}
	if args.Trace {
		cfg.TraceLevel = "debug"
	}
	corelog.SetLevel(cfg.TraceLevel)

	b := bus.New(program)
	c := cpu.NewWithConfig(b, cfg)
	profile := cpu.PostBoot
	if args.Profile == "cold" {
		profile = cpu.Cold
	}
	c.Reset(profile)
	if profile == cpu.PostBoot {
		c.SetPC(args.PC)
	}

	var totalCycles uint64
	for i := 0; i < args.Steps; i++ {
		cycles, err := c.Step()
		totalCycles += uint64(cycles)
		if err != nil {
			fmt.Fprintf(os.Stderr, "step %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	fmt.Printf("steps=%d m_cycles=%d\n", args.Steps, totalCycles)
	fmt.Printf("A=%#02x F=%#02x B=%#02x C=%#02x D=%#02x E=%#02x H=%#02x L=%#02x\n",
		c.RegA(), c.RegF(), c.RegB(), c.RegC(), c.RegD(), c.RegE(), c.RegH(), c.RegL())
	fmt.Printf("SP=%#04x PC=%#04x IME=%t halted=%t\n", c.RegSP(), c.RegPC(), c.IME(), c.Halted())
}
