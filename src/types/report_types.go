package types

import (
	"fmt"
	"strings"
)

// ElevReport is a point-in-time copy of one elevator.
type ElevReport struct {
	ID             int
	Floor          int
	Dir            MotorDirection
	Behaviour      ElevBehaviour
	Timer          int // ticks left in the current phase
	Onboard        []Request
	TakingRequests bool
}

func (r ElevReport) String() string {
	switch r.Behaviour {
	case OutOfService:
		return fmt.Sprintf("Out of Service[Floor %d]", r.Floor)
	case Moving:
		return fmt.Sprintf("Moving[Floor %d, %s, Time %d]", r.Floor, r.Dir, r.Timer)
	default:
		return fmt.Sprintf("%s[Floor %d, Time %d]", r.Behaviour, r.Floor, r.Timer)
	}
}

// BuildingReport is a point-in-time copy of the whole building.
type BuildingReport struct {
	NumFloors    int
	NumElevators int
	Capacity     int
	Elevators    []ElevReport
	UpRequests   []Request
	DownRequests []Request
	Status       SystemStatus
}

// PendingRequests is the number of requests not yet handed to an elevator.
func (r BuildingReport) PendingRequests() int {
	return len(r.UpRequests) + len(r.DownRequests)
}

func (r BuildingReport) String() string {
	var sb strings.Builder
	sb.WriteString("BuildingReport {\n")
	fmt.Fprintf(&sb, "\tNumber of Floors: %d\n", r.NumFloors)
	fmt.Fprintf(&sb, "\tNumber of Elevators: %d\n", r.NumElevators)
	fmt.Fprintf(&sb, "\tElevator Capacity: %d\n", r.Capacity)
	sb.WriteString("\tElevator Reports: \n")
	for _, elevReport := range r.Elevators {
		fmt.Fprintf(&sb, "\t\t%s\n", elevReport)
	}
	fmt.Fprintf(&sb, "\tUp Requests: %s\n", FormatRequests(r.UpRequests))
	fmt.Fprintf(&sb, "\tDown Requests: %s\n", FormatRequests(r.DownRequests))
	fmt.Fprintf(&sb, "\tSystem Status: %s\n", r.Status)
	sb.WriteString("}")
	return sb.String()
}
