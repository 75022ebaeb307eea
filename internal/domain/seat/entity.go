package seat

import (
	"errors"
	"strings"
)

var (
	ErrEmptySeatID = errors.New("seat id is empty")
	ErrEmptyLabel  = errors.New("seat label is empty")
)

// Seat is a reservable desk on the floor plan. X and Y are the marker
// position on the floor image, owned by the editor UI.
type Seat struct {
	id    string
	label string
	x     float64
	y     float64
}

func NewSeat(id, label string, x, y float64) (*Seat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptySeatID
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}

	return &Seat{id: id, label: label, x: x, y: y}, nil
}

func ReconstructSeat(id, label string, x, y float64) *Seat {
	return &Seat{id: id, label: label, x: x, y: y}
}

func (s *Seat) ID() string    { return s.id }
func (s *Seat) Label() string { return s.label }
func (s *Seat) X() float64    { return s.x }
func (s *Seat) Y() float64    { return s.y }
