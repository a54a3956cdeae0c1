package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers line by line from an input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints prompt, optional choices and the default, then reads one line.
// An empty answer yields def. With choices, the answer must be one of them
// (case-insensitive) and the prompt repeats until it is. io.EOF is returned
// once the input is exhausted.
func (p *Prompter) Ask(prompt string, choices []string, def string) (string, error) {
	for {
		p.printPrompt(prompt, choices, def)

		line, err := p.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if err != nil && (err != io.EOF || answer == "") {
			return "", err
		}

		if answer == "" {
			answer = def
		}
		if len(choices) == 0 {
			return answer, nil
		}
		for _, c := range choices {
			if strings.EqualFold(c, answer) {
				return c, nil
			}
		}
		fmt.Fprintf(p.out, "Please answer one of: %s\n", strings.Join(choices, ", "))
		if err == io.EOF {
			return "", err
		}
	}
}

// Confirm asks a y/n question.
func (p *Prompter) Confirm(prompt string, def bool) (bool, error) {
	d := "n"
	if def {
		d = "y"
	}
	answer, err := p.Ask(prompt, []string{"y", "n"}, d)
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

func (p *Prompter) printPrompt(prompt string, choices []string, def string) {
	var sb strings.Builder
	sb.WriteString(prompt)
	if len(choices) > 0 {
		sb.WriteString(" (" + strings.Join(choices, "/") + ")")
	}
	if def != "" {
		sb.WriteString(" [" + def + "]")
	}
	sb.WriteString("\n> ")
	fmt.Fprint(p.out, sb.String())
}
