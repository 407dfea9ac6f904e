package shapes

import (
	"fmt"
	"strings"
)

// Entry is one line of the shape menu.
type Entry struct {
	Code  string
	Label string
	New   func() Shape
}

var entries = []Entry{
	{Code: "1", Label: "Solid Cuboid", New: func() Shape { return NewRectangle() }},
	{Code: "2", Label: "Solid Sphere", New: func() Shape { return NewSphere() }},
	{Code: "3", Label: "Solid Cylinder", New: func() Shape { return NewCylinder() }},
}

// Entries returns the menu in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns a fresh zero-valued shape for a menu code. Surrounding
// whitespace is ignored.
func Lookup(code string) (Shape, error) {
	code = strings.TrimSpace(code)
	for _, e := range entries {
		if e.Code == code {
			return e.New(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, code)
}
