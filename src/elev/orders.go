package elev

import "elevsim/src/types"

// dropAtCurrentFloor removes and returns the onboard requests that end at the current floor.
func (e *Elevator) dropAtCurrentFloor() []types.Request {
	var dropped []types.Request
	kept := e.onboard[:0]
	for _, request := range e.onboard {
		if request.EndFloor == e.floor {
			dropped = append(dropped, request)
		} else {
			kept = append(kept, request)
		}
	}
	// Zero the tail so dropped requests do not linger in the backing array.
	clear(e.onboard[len(kept):])
	e.onboard = kept
	return dropped
}

// Checks if a passenger already assigned to this car is waiting at the current floor.
func (e *Elevator) pickupAtCurrentFloor() bool {
	for _, request := range e.onboard {
		if request.StartFloor == e.floor {
			return true
		}
	}
	return false
}
