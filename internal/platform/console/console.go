// Package console is the text-menu glue around the domain services:
// prompting, parsing and rendering. Raw input is parsed here; the
// services only ever see typed values.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// DateLayout is the timestamp format accepted for appointments.
const DateLayout = "2006-01-02 15:04"

// ANSI escape sequences used by Palette.
const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiCyan   = "\x1b[36m"
	ansiYellow = "\x1b[33m"
)

// Palette applies ANSI colors when enabled and is a no-op otherwise.
type Palette struct {
	Enabled bool
}

func (c Palette) wrap(code, s string) string {
	if !c.Enabled {
		return s
	}
	return code + s + ansiReset
}

func (c Palette) Title(s string) string { return c.wrap(ansiBold+ansiCyan, s) }
func (c Palette) OK(s string) string    { return c.wrap(ansiGreen, s) }
func (c Palette) Warn(s string) string  { return c.wrap(ansiYellow, s) }
func (c Palette) Error(s string) string { return c.wrap(ansiRed, s) }

// Prompter reads typed values from the operator. Parse failures are
// reported and re-prompted; the zero value of each method is only
// returned together with io errors.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	pal Palette
}

func NewPrompter(in io.Reader, out io.Writer, pal Palette) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, pal: pal}
}

func (p *Prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	s, err := p.in.ReadString('\n')
	if err != nil && s == "" {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// String prompts until a non-empty line is entered.
func (p *Prompter) String(label string) (string, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(p.out, p.pal.Warn("a value is required"))
	}
}

// Int prompts until a valid integer is entered.
func (p *Prompter) Int(label string) (int, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(s)
		if convErr == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, p.pal.Warn("enter a whole number"))
	}
}

// Float prompts until a valid amount is entered.
func (p *Prompter) Float(label string) (float64, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		f, convErr := strconv.ParseFloat(s, 64)
		if convErr == nil {
			return f, nil
		}
		fmt.Fprintln(p.out, p.pal.Warn("enter an amount, e.g. 1200 or 49.50"))
	}
}

// Date prompts until a timestamp matching DateLayout is entered.
func (p *Prompter) Date(label string) (time.Time, error) {
	for {
		s, err := p.line(fmt.Sprintf("%s (%s)", label, DateLayout))
		if err != nil {
			return time.Time{}, err
		}
		t, convErr := time.ParseInLocation(DateLayout, s, time.Local)
		if convErr == nil {
			return t, nil
		}
		fmt.Fprintln(p.out, p.pal.Warn("enter a date like 2026-09-01 14:30"))
	}
}

// Secret prompts for a credential. Input echo is not suppressed; this
// is a demo console.
func (p *Prompter) Secret(label string) (string, error) {
	return p.String(label)
}

// Table renders rows under a header using elastic tab stops.
func Table(out io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i, h := range header {
		sep[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	tw.Flush()
}
