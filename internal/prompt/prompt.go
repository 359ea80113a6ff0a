package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	mask   bool
}

// New creates a Prompter. Secret answers are echoed unless masking is enabled.
func New(in io.Reader, out io.Writer, mask bool) *Prompter {
	return &Prompter{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
		mask:   mask,
	}
}

// Ask prints label and returns the next line without its line terminator.
// Surrounding whitespace is kept as typed.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// AskSecret behaves like Ask, but reads without echo when masking is on
// and the input is a terminal.
func (p *Prompter) AskSecret(label string) (string, error) {
	fd, ok := p.terminalFd()
	if !p.mask || !ok {
		return p.Ask(label)
	}

	fmt.Fprint(p.out, label)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out) // Newline after password input
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(secret), nil
}

func (p *Prompter) terminalFd() (int, bool) {
	f, ok := p.in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
