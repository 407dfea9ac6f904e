// Package session runs the interactive inertia calculator over a console.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/san-kum/urdfinertia/internal/config"
	"github.com/san-kum/urdfinertia/internal/console"
	"github.com/san-kum/urdfinertia/internal/shapes"
	"github.com/san-kum/urdfinertia/internal/tensor"
)

const (
	continuePrompt = "Process another? (Y/N)"
	confirmation   = "Feel free to copy/paste this data between the <inertia> tags in your URDF file!"
	invalidAnswer  = "Invalid input! Please enter yes or no(y/n)"
)

type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Options struct {
	ContinueMode string
	URDFTag      bool
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{ContinueMode: cfg.ContinueMode, URDFTag: cfg.URDFTag}
}

type Session struct {
	con   *console.Console
	opts  Options
	log   *slog.Logger
	state State
}

func New(con *console.Console, opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.ContinueMode == "" {
		opts.ContinueMode = config.ContinueMenu
	}
	return &Session{con: con, opts: opts, log: logger, state: Running}
}

func (s *Session) State() State {
	return s.state
}

// Run loops until the user declines to continue or input ends. Only a
// failing reader or a cancelled context produces an error. Reads are only
// interrupted by cancellation when the console reads through
// console.ContextReader.
func (s *Session) Run(ctx context.Context) error {
	for s.state == Running {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.iterate(); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if errors.Is(err, console.ErrInputClosed) {
				s.log.Info("input closed, ending session")
				s.state = Terminated
				return nil
			}
			return err
		}
	}
	return nil
}

func (s *Session) iterate() error {
	s.con.Println(Menu())
	code, err := s.con.Prompt("")
	if err != nil {
		return err
	}
	shape, err := shapes.Lookup(code)
	if err != nil {
		s.log.Debug("menu input ignored", "input", code)
		return nil
	}

	if err := s.load(shape); err != nil {
		return err
	}
	s.con.Println(confirmation)
	return s.askContinue()
}

func (s *Session) load(shape shapes.Shape) error {
	s.con.Println("Solid " + shape.Name() + " Selected:")
	for _, f := range shape.Fields() {
		v, err := s.con.ReadFloat32(f.Prompt)
		if err != nil {
			return err
		}
		*f.Dest = v
	}

	m := shape.Moments()
	s.con.Println(tensor.Format(m.Ixx, m.Iyy, m.Izz))
	if s.opts.URDFTag {
		s.con.Println(tensor.Tag(m.Ixx, m.Iyy, m.Izz))
	}
	s.log.Debug("computed inertia", "shape", shape.Name(), "ixx", m.Ixx, "iyy", m.Iyy, "izz", m.Izz)
	return nil
}

func (s *Session) askContinue() error {
	for {
		s.con.Println(continuePrompt)
		answer, err := s.con.Prompt("")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(answer) {
		case "y", "Y", "Yes", "yes":
			return nil
		case "n", "N", "No", "no":
			s.state = Terminated
			return nil
		}
		s.con.Println(invalidAnswer)
		if s.opts.ContinueMode != config.ContinueReprompt {
			return nil
		}
	}
}

// Menu is the shape selection text.
func Menu() string {
	var b strings.Builder
	b.WriteString("Please select one of the following shapes:\n")
	for _, e := range shapes.Entries() {
		fmt.Fprintf(&b, "\n%s: %s", e.Label, e.Code)
	}
	return b.String()
}
