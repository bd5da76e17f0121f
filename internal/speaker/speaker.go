// Package speaker models a closed set of speaking variants. Each variant
// prints a fixed phrase prefixed by the instance's own name.
package speaker

import (
	"fmt"
	"io"

	"golang.org/x/text/unicode/norm"
)

// Speaker is implemented by Dog and Cat.
type Speaker interface {
	Name() string
	Kind() Kind
	Phrase() string
	// Line is the full spoken line, "<name> says: <phrase>".
	Line() string
	Speak(w io.Writer) error
}

// New creates a speaker of the given kind. The name is NFC-normalized and
// otherwise kept as given; an empty name is allowed.
func New(kind Kind, name string) (Speaker, error) {
	name = norm.NFC.String(name)
	switch kind {
	case KindDog:
		return Dog{name: name}, nil
	case KindCat:
		return Cat{name: name}, nil
	default:
		return nil, &UnknownKindError{Value: kind.String()}
	}
}

// Dog says "Woof!".
type Dog struct {
	name string
}

func (d Dog) Name() string            { return d.name }
func (d Dog) Kind() Kind              { return KindDog }
func (d Dog) Phrase() string          { return "Woof!" }
func (d Dog) Line() string            { return line(d) }
func (d Dog) Speak(w io.Writer) error { return speak(w, d) }

// Cat says "Meow!".
type Cat struct {
	name string
}

func (c Cat) Name() string            { return c.name }
func (c Cat) Kind() Kind              { return KindCat }
func (c Cat) Phrase() string          { return "Meow!" }
func (c Cat) Line() string            { return line(c) }
func (c Cat) Speak(w io.Writer) error { return speak(w, c) }

func line(s Speaker) string {
	return s.Name() + " says: " + s.Phrase()
}

func speak(w io.Writer, s Speaker) error {
	if _, err := fmt.Fprintln(w, s.Line()); err != nil {
		return fmt.Errorf("%s %s speak: %w", s.Kind(), s.Name(), err)
	}
	return nil
}
