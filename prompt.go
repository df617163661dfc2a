package tileclass

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the operator a question & waits for the answer.
type Prompter interface {
	Ask(question string) (string, error)
}

// ConsolePrompter asks questions on a terminal, one line per answer.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsolePrompter reads answers from `in` & writes questions to `out`
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: bufio.NewReader(in), out: out}
}

// Ask writes the question & blocks until a full line is read.
// The line ending is removed, nothing else is trimmed.
func (p *ConsolePrompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil // last line without a newline
	}
	if err != nil {
		return "", fmt.Errorf("no answer to %q: %w", question, err)
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// isYes reports if an answer means "yes". Only the exact word counts.
func isYes(answer string) bool {
	return answer == "yes"
}
