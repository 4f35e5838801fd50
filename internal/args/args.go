// Package args parses the battlepoints command line.
//
// The grammar is three positional integers followed by optional flags in
// any order:
//
//	<twins> <tpoints> <mdamage> [--multi X] [--divi Y] [--format F] [--verbose]
//
// Tokens that are not recognized flags are skipped, as is a valued flag
// with nothing after it. Both are reported in Parsed.Skipped.
package args

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/battlepoints/internal/battle"
	"github.com/dshills/battlepoints/internal/render"
)

// Usage is the one-line synopsis printed on a usage error.
const Usage = "Usage: battlepoints <twins> <tpoints> <mdamage> [--multi X] [--divi Y]"

// Positionals is the number of required leading arguments.
const Positionals = 3

// Parsed is the result of a successful Parse.
type Parsed struct {
	Input   battle.Input
	Format  render.Format
	Verbose bool
	Skipped []string
}

// UsageError reports a command line with too few arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected %d arguments, got %d", Positionals, e.Got)
}

// ParseError reports an argument whose text is not acceptable.
type ParseError struct {
	Name  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errNotInteger = errors.New("not a base-10 integer")
	errRange      = errors.New("out of range")
)

// Parse scans argv (without the program name).
func Parse(argv []string) (Parsed, error) {
	if len(argv) < Positionals {
		return Parsed{}, &UsageError{Got: len(argv)}
	}

	var vals [Positionals]int
	for i, name := range []string{"twins", "tpoints", "mdamage"} {
		n, err := parseInt(name, argv[i])
		if err != nil {
			return Parsed{}, err
		}
		vals[i] = n
	}

	p := Parsed{
		Input:  battle.NewInput(vals[0], vals[1], vals[2]),
		Format: render.FormatText,
	}

	rest := argv[Positionals:]
	for i := 0; i < len(rest); i++ {
		name, value, inline := strings.Cut(rest[i], "=")

		switch name {
		case "--verbose":
			if inline {
				p.Skipped = append(p.Skipped, rest[i])
				continue
			}
			p.Verbose = true
			continue
		case "--multi", "--divi", "--format":
		default:
			p.Skipped = append(p.Skipped, rest[i])
			continue
		}

		if !inline {
			if i+1 >= len(rest) {
				p.Skipped = append(p.Skipped, rest[i])
				continue
			}
			i++
			value = rest[i]
		}

		if err := p.set(name, value); err != nil {
			return Parsed{}, err
		}
	}
	return p, nil
}

func (p *Parsed) set(flag, value string) error {
	name := strings.TrimPrefix(flag, "--")
	switch name {
	case "multi":
		n, err := parseInt(name, value)
		if err != nil {
			return err
		}
		p.Input.Multi = n
	case "divi":
		n, err := parseInt(name, value)
		if err != nil {
			return err
		}
		p.Input.Divi = n
	case "format":
		f, err := render.ParseFormat(value)
		if err != nil {
			return &ParseError{Name: name, Value: value, Err: err}
		}
		p.Format = f
	}
	return nil
}

// parseInt accepts 32-bit values only, so the products and sums in
// battle.Calculate cannot overflow a 64-bit int.
func parseInt(name, s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseError{Name: name, Value: s, Err: errRange}
		}
		return 0, &ParseError{Name: name, Value: s, Err: errNotInteger}
	}
	return int(n), nil
}
