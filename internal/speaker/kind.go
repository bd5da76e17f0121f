package speaker

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Kind identifies one of the closed set of speaker variants.
type Kind int

const (
	KindDog Kind = iota + 1
	KindCat
)

var kindNames = map[Kind]string{
	KindDog: "dog",
	KindCat: "cat",
}

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindDog, KindCat}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// UnknownKindError reports a kind name or value outside the known set.
type UnknownKindError struct {
	Value string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown speaker kind %q (want one of dog, cat)", e.Value)
}

// ParseKind resolves a kind name. Matching ignores case.
func ParseKind(s string) (Kind, error) {
	folded := cases.Fold().String(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if kindNames[k] == folded {
			return k, nil
		}
	}
	return 0, &UnknownKindError{Value: s}
}
