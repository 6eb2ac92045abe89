package electrode

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Kind selects the electrode shape.
type Kind int

const (
	// Point pins a single node.
	Point Kind = iota
	// Row pins a full horizontal line of nodes (a flat horizontal electrode).
	Row
	// Column pins a full vertical line of nodes (a flat vertical electrode).
	Column
)

var kindNames = [...]string{
	Point:  "point",
	Row:    "row",
	Column: "column",
}

func (k Kind) valid() bool {
	return k >= Point && k <= Column
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps "point", "row" or "column" (any case) to a Kind.
// The empty string means Point. Anything else is ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Point, nil
	}
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}

	return Point, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// MarshalYAML writes the kind as its name.
func (k Kind) MarshalYAML() ([]byte, error) {
	return k.MarshalText()
}

// UnmarshalYAML reads the kind from a YAML scalar such as `row` or "row".
func (k *Kind) UnmarshalYAML(b []byte) error {
	var s string
	if err := yaml.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("electrode: kind: %w", err)
	}

	return k.UnmarshalText([]byte(s))
}
