package dispatcher

import (
	"fmt"

	"elevsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Report returns a snapshot of the building. Nothing in it aliases live state.
func (b *Building) Report() types.BuildingReport {
	live := types.BuildingReport{
		NumFloors:    b.numFloors,
		NumElevators: len(b.elevators),
		Capacity:     b.capacity,
		Elevators:    make([]types.ElevReport, len(b.elevators)),
		UpRequests:   b.queue.up,
		DownRequests: b.queue.down,
		Status:       b.status,
	}
	for i, elevator := range b.elevators {
		live.Elevators[i] = elevator.Report()
	}

	report := new(types.BuildingReport)
	if err := deepcopy.Copy(report, &live); err != nil {
		panic(err)
	}
	return *report
}

// ElevatorReport returns a snapshot of the elevator at index.
func (b *Building) ElevatorReport(index int) (types.ElevReport, error) {
	if index < 0 || index >= len(b.elevators) {
		return types.ElevReport{}, fmt.Errorf("%w: elevator index must be between 0 and %d, got %d",
			types.ErrInvalidArgument, len(b.elevators)-1, index)
	}
	return b.elevators[index].Report(), nil
}
