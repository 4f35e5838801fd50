package main

import (
	"fmt"
	"io"
	"log"

	"github.com/dshills/battlepoints/internal/args"
	"github.com/dshills/battlepoints/internal/battle"
	"github.com/dshills/battlepoints/internal/render"
)

func runCompute(argv []string, stdout, stderr io.Writer) error {
	p, err := args.Parse(argv)
	if err != nil {
		return classify(err)
	}

	logger := log.New(stderr, "", 0)
	verbose := func(msg string, a ...any) {
		if p.Verbose {
			logger.Printf(msg, a...)
		}
	}

	in := p.Input
	verbose("Input: twins=%d tpoints=%d mdamage=%d multi=%d divi=%d",
		in.Twins, in.TPoints, in.MDamage, in.Multi, in.Divi)
	for _, s := range p.Skipped {
		verbose("Ignoring argument: %s", s)
	}

	b, err := battle.Calculate(in)
	if err != nil {
		return classify(err)
	}
	verbose("Terms: part1=%d part2=%d mdamage=%d", b.Part1, b.Part2, in.MDamage)

	out, err := render.Render(b, p.Format)
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	if _, err := io.WriteString(stdout, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
