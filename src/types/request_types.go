package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Request is a single passenger trip. It is passed around by value and never mutated.
type Request struct {
	ID         uuid.UUID
	StartFloor int
	EndFloor   int
}

func NewRequest(startFloor, endFloor int) Request {
	return Request{
		ID:         uuid.New(),
		StartFloor: startFloor,
		EndFloor:   endFloor,
	}
}

// Dir is MD_Up when the trip goes up, MD_Down otherwise.
func (r Request) Dir() MotorDirection {
	if r.StartFloor < r.EndFloor {
		return MD_Up
	}
	return MD_Down
}

func (r Request) String() string {
	return fmt.Sprintf("%d->%d", r.StartFloor, r.EndFloor)
}

// FormatRequests renders a request list as "[0->5, 3->1]".
func FormatRequests(requests []Request) string {
	parts := make([]string, len(requests))
	for i, r := range requests {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
