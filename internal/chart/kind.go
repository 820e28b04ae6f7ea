package chart

import (
	"fmt"
	"strings"
)

// Kind selects the rendering rule applied to (x, y) pairs.
type Kind string

const (
	Line    Kind = "line"
	Scatter Kind = "scatter"
	Bar     Kind = "bar"
)

func Kinds() []Kind {
	return []Kind{Line, Scatter, Bar}
}

func (k Kind) Valid() bool {
	switch k {
	case Line, Scatter, Bar:
		return true
	}
	return false
}

// Label is the capitalised name shown in the plot type dropdown.
func (k Kind) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

func Labels() []string {
	kinds := Kinds()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = k.Label()
	}
	return labels
}

// ParseKind accepts either a kind or its label, ignoring case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown plot kind %q", s)
	}
	return k, nil
}
