package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

var errAborted = errors.New("input aborted")

// prompter asks for form fields that were not given as flags.
type prompter struct {
	in  io.Reader
	out io.Writer
	rl  *readline.Instance
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out}
}

// Ask returns current when it is set, otherwise reads one line for label.
func (p *prompter) Ask(label, current string) (string, error) {
	if strings.TrimSpace(current) != "" {
		return current, nil
	}

	if p.rl == nil {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "> ",
			Stdin:           io.NopCloser(p.in),
			Stdout:          p.out,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			return "", fmt.Errorf("failed to initialize readline: %w", err)
		}
		p.rl = rl
	}

	p.rl.SetPrompt(label + ": ")
	line, err := p.rl.Readline()
	if err != nil {
		if err == io.EOF || err == readline.ErrInterrupt {
			return "", errAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) Close() {
	if p.rl != nil {
		_ = p.rl.Close()
	}
}
