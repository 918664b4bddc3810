package elevcmd

import (
	"fmt"

	"github.com/heislab/elevator-simulator/internal/elevconsts"
)

// FloorCommand is a hall call: the floor it was made from and the button
// pressed there. Treat it as immutable and compare with ==.
type FloorCommand struct {
	Floor     int             `json:"floor" yaml:"floor"`
	Direction elevconsts.Dirn `json:"direction" yaml:"direction"`
}

func NewFloorCommand(floor int, direction elevconsts.Dirn) FloorCommand {
	return FloorCommand{Floor: floor, Direction: direction}
}

func (fc FloorCommand) String() string {
	return fmt.Sprintf("(%d, %s)", fc.Floor, fc.Direction.String())
}

// Worklist is the ordered queue of floor commands consumed by a run.
// A nil *Worklist is an absent worklist.
type Worklist struct {
	commands []FloorCommand
}

func NewWorklist(commands ...FloorCommand) *Worklist {
	owned := make([]FloorCommand, len(commands))
	copy(owned, commands)
	return &Worklist{commands: owned}
}

func (w *Worklist) Len() int {
	return len(w.commands)
}

func (w *Worklist) Empty() bool {
	return len(w.commands) == 0
}

func (w *Worklist) Push(cmd FloorCommand) {
	w.commands = append(w.commands, cmd)
}

// PopFront removes and returns the head command. ok is false when empty.
func (w *Worklist) PopFront() (cmd FloorCommand, ok bool) {
	if len(w.commands) == 0 {
		return FloorCommand{}, false
	}
	cmd = w.commands[0]
	w.commands = w.commands[1:]
	return cmd, true
}

// Remove drops the first command equal to cmd and reports whether one was found.
func (w *Worklist) Remove(cmd FloorCommand) bool {
	for i, c := range w.commands {
		if c == cmd {
			w.commands = append(w.commands[:i:i], w.commands[i+1:]...)
			return true
		}
	}
	return false
}

// Filter returns the commands matching keep in queue order without removing them.
func (w *Worklist) Filter(keep func(FloorCommand) bool) []FloorCommand {
	var matched []FloorCommand
	for _, c := range w.commands {
		if keep(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

func (w *Worklist) Commands() []FloorCommand {
	commands := make([]FloorCommand, len(w.commands))
	copy(commands, w.commands)
	return commands
}

func (w *Worklist) Clone() *Worklist {
	return NewWorklist(w.commands...)
}
