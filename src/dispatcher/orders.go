package dispatcher

import (
	"fmt"
	"log/slog"

	"elevsim/src/types"
)

// AddRequest validates a trip and queues it by direction.
func (b *Building) AddRequest(startFloor, endFloor int) (bool, error) {
	request := types.NewRequest(startFloor, endFloor)
	return b.Submit(&request)
}

// Submit queues an existing request. Rejected requests leave the queues untouched.
func (b *Building) Submit(request *types.Request) (bool, error) {
	if b.status != types.StatusRunning {
		return false, fmt.Errorf("%w: elevator system is not running", types.ErrInvalidState)
	}
	if request == nil {
		return false, fmt.Errorf("%w: request cannot be nil", types.ErrInvalidArgument)
	}
	if !b.validFloor(request.StartFloor) {
		return false, fmt.Errorf("%w: the start floor must be between 0 and %d, got %d",
			types.ErrInvalidArgument, b.numFloors-1, request.StartFloor)
	}
	if !b.validFloor(request.EndFloor) {
		return false, fmt.Errorf("%w: the end floor must be between 0 and %d, got %d",
			types.ErrInvalidArgument, b.numFloors-1, request.EndFloor)
	}
	if request.StartFloor == request.EndFloor {
		return false, fmt.Errorf("%w: start floor and end floor cannot be the same (%d)",
			types.ErrInvalidArgument, request.StartFloor)
	}

	b.queue.push(*request)
	slog.Debug("Request queued", "request", request.String(), "id", request.ID, "dir", request.Dir())
	return true, nil
}

// distributeRequests boards pending requests onto waiting elevators.
//   - elevators are visited in index order, so the lowest index wins ties
//   - a car at floor 0 draws from the up queue, a car at the top floor from the down queue
//   - each car takes requests strictly first-come first-served, up to its free capacity
//   - a car with nothing to take is still handed its empty batch, which sends it to the
//     opposite extremity where the other queue can board
func (b *Building) distributeRequests() {
	if b.queue.isEmpty() {
		return
	}

	for _, elevator := range b.elevators {
		if !elevator.IsTakingRequests() {
			continue
		}

		var dir types.MotorDirection
		switch elevator.Floor() {
		case 0:
			dir = types.MD_Up
		case b.numFloors - 1:
			dir = types.MD_Down
		default:
			continue
		}

		batch := b.queue.pop(dir, elevator.FreeCapacity())
		if err := elevator.ProcessRequests(batch); err != nil {
			// Unreachable while the queue only holds validated requests.
			slog.Error("Elevator rejected requests", "elevator", elevator.ID(), "error", err)
			b.requeueFront(dir, batch)
		}
	}
}

func (b *Building) requeueFront(dir types.MotorDirection, batch []types.Request) {
	if dir == types.MD_Up {
		b.queue.up = append(batch, b.queue.up...)
	} else {
		b.queue.down = append(batch, b.queue.down...)
	}
}

func (b *Building) validFloor(floor int) bool {
	return floor >= 0 && floor < b.numFloors
}
