// Package console provides line-oriented prompts over a reader and writer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

type Console struct {
	in  *bufio.Reader
	out io.Writer
	log *slog.Logger
}

func New(in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		log: logger,
	}
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// ReadLine returns the next line without its terminator. Lines have no
// length limit; a final line without a newline is still returned.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", &ReadError{Wrapped: err}
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Prompt prints text on its own line and reads the answer.
func (c *Console) Prompt(text string) (string, error) {
	c.Println(text)
	line, err := c.ReadLine()
	var re *ReadError
	if errors.As(err, &re) {
		re.Prompt = text
	}
	return line, err
}

// ParseFloat32 parses decimal notation, inf and NaN. Hex floats and
// underscore digit separators are rejected. Out of range values saturate to
// infinity.
func ParseFloat32(s string) (float32, error) {
	s = strings.TrimSpace(s)
	if lower := strings.ToLower(s); strings.Contains(lower, "0x") || strings.Contains(s, "_") {
		return 0, fmt.Errorf("%w: %q", ErrNotDecimal, s)
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return float32(v), nil
}

// ReadFloat32 prompts until the answer parses as a 32-bit float. Parse
// failures are not reported to the user.
func (c *Console) ReadFloat32(prompt string) (float32, error) {
	for {
		line, err := c.Prompt(prompt)
		if err != nil {
			return 0, err
		}
		v, err := ParseFloat32(line)
		if err != nil {
			c.log.Debug("rejected numeric input", "prompt", strings.TrimSpace(prompt), "length", len(line))
			continue
		}
		return v, nil
	}
}
