// Contains the per-tick state machine of a single elevator.
package elev

import (
	"log/slog"

	"elevsim/src/types"
)

// Step advances the elevator by one tick.
//   - idle cars count down their wait; at the top floor an expired wait sends the empty car home
//   - open doors close when the door timer runs out
//   - moving cars change floor when the move timer runs out, then decide whether to stop
//   - returning cars descend until they reach floor 0 and go out of service
func (e *Elevator) Step() {
	switch s := e.state.(type) {
	case outOfService:
		return

	case idle:
		s.wait--
		if s.wait > 0 {
			e.state = s
			return
		}
		if e.floor == e.topFloor() {
			slog.Debug("No boarders at top floor, heading down", "elevator", e.id)
			e.state = moving{dir: types.MD_Down, remaining: e.timing.MoveTicks}
			return
		}
		e.state = idle{wait: e.timing.WaitTicks}

	case loading:
		s.remaining--
		if s.remaining > 0 {
			e.state = s
			return
		}
		e.closeDoors(s.heading)

	case unloading:
		s.remaining--
		if s.remaining > 0 {
			e.state = s
			return
		}
		e.closeDoors(s.heading)

	case moving:
		s.remaining--
		if s.remaining > 0 {
			e.state = s
			return
		}
		e.floor += int(s.dir)
		e.handleFloorArrival(s.dir)

	case returning:
		s.remaining--
		if s.remaining > 0 {
			e.state = s
			return
		}
		e.floor--
		if e.floor == 0 {
			e.park()
			return
		}
		e.state = returning{remaining: e.timing.MoveTicks}
	}
}

// handleFloorArrival drops passengers whose trip ends here and decides whether to stop.
// A car reaching the end of its sweep without a stop is idle at once.
func (e *Elevator) handleFloorArrival(dir types.MotorDirection) {
	dropped := e.dropAtCurrentFloor()
	pickup := e.pickupAtCurrentFloor()

	switch {
	case len(dropped) > 0:
		slog.Info("Passengers leaving",
			"elevator", e.id,
			"floor", e.floor,
			"requests", types.FormatRequests(dropped),
			"onboard", len(e.onboard))
		e.state = unloading{heading: dir, remaining: e.timing.DoorTicks}
	case pickup:
		slog.Debug("Stopping for pickup", "elevator", e.id, "floor", e.floor)
		e.state = loading{heading: dir, remaining: e.timing.DoorTicks}
	case e.floor == e.sweepEnd(dir):
		e.state = idle{wait: e.timing.WaitTicks}
	default:
		e.state = moving{dir: dir, remaining: e.timing.MoveTicks}
	}
}

// closeDoors ends a door-open phase: the car either rests at the end of its sweep or continues.
func (e *Elevator) closeDoors(heading types.MotorDirection) {
	if e.floor == e.sweepEnd(heading) {
		e.state = idle{wait: e.timing.WaitTicks}
		return
	}
	e.state = moving{dir: heading, remaining: e.timing.MoveTicks}
}

func (e *Elevator) sweepEnd(dir types.MotorDirection) int {
	if dir == types.MD_Up {
		return e.topFloor()
	}
	return 0
}
