package request

import "github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"

type CreateSeatRequest struct {
	ID    string  `json:"id,omitempty"`
	Label string  `json:"label" binding:"required"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func (r CreateSeatRequest) ToParams() commands.CreateSeatParams {
	return commands.CreateSeatParams{
		ID:    r.ID,
		Label: r.Label,
		X:     r.X,
		Y:     r.Y,
	}
}
