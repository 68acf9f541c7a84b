package vbox

import (
	"fmt"
	"strings"
)

// Option is one "--name [value]" pair appended after the positional
// arguments. A Value of boolean true emits the flag alone; any other value
// (including false, numbers and strings) emits the flag followed by the
// escaped value token. Options are kept as an ordered slice so that the
// emitted command line is deterministic.
type Option struct {
	Name  string
	Value any
}

// Opt builds a valued option.
func Opt(name string, value any) Option {
	return Option{Name: name, Value: value}
}

// Flag builds a bare flag option.
func Flag(name string) Option {
	return Option{Name: name, Value: true}
}

// Command is one VBoxManage invocation before escaping: the subcommand and
// its positional arguments, plus trailing options. Positional order is
// preserved; options are emitted in insertion order.
type Command struct {
	Args    []string
	Options []Option
}

// NewCommand creates a Command from positional tokens.
func NewCommand(args ...string) *Command {
	return &Command{Args: args}
}

// With appends an option and returns the Command for chaining.
func (c *Command) With(name string, value any) *Command {
	c.Options = append(c.Options, Option{Name: name, Value: value})
	return c
}

// WithOptions appends options in order.
func (c *Command) WithOptions(opts ...Option) *Command {
	c.Options = append(c.Options, opts...)
	return c
}

// Build returns the escaped token list. Every positional argument and every
// option value goes through Escape; option names are caller-controlled flag
// identifiers and are emitted verbatim.
func (c *Command) Build() []string {
	tokens := make([]string, 0, len(c.Args)+2*len(c.Options))
	for _, arg := range c.Args {
		tokens = append(tokens, Escape(arg))
	}
	for _, opt := range c.Options {
		tokens = append(tokens, "--"+opt.Name)
		if b, ok := opt.Value.(bool); ok && b {
			continue
		}
		tokens = append(tokens, Escape(fmt.Sprint(opt.Value)))
	}
	return tokens
}

// String returns the space-joined escaped command line.
func (c *Command) String() string {
	return strings.Join(c.Build(), " ")
}
