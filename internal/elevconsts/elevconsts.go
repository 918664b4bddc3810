package elevconsts

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_N_FLOORS      = 10
	DEFAULT_INITIAL_FLOOR = 1
	BOTTOM_FLOOR          = 1
)

// Dirn is both the button pressed at a floor and the direction of travel.
type Dirn int

const (
	Down Dirn = -1
	Up   Dirn = 1
)

func (d Dirn) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Undefined"
	}
}

func (d Dirn) Valid() bool {
	return d == Up || d == Down
}

func (d Dirn) Opposite() Dirn {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

func ParseDirn(s string) (Dirn, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d", "dn":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Dirn) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot marshal direction %d", int(d))
	}
	return []byte(strings.ToLower(d.String())), nil
}

func (d *Dirn) UnmarshalText(text []byte) error {
	parsed, err := ParseDirn(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Dirn) MarshalYAML() (any, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (d *Dirn) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// DirnTowards is Up when target lies above from, otherwise Down.
func DirnTowards(from int, target int) Dirn {
	if target > from {
		return Up
	}
	return Down
}
