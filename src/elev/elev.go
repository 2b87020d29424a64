package elev

import (
	"fmt"
	"log/slog"

	"elevsim/src/config"
	"elevsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// New creates an out-of-service elevator parked at floor 0.
func New(id, numFloors, capacity int, timing config.Timing) *Elevator {
	elevator := &Elevator{
		id:        id,
		numFloors: numFloors,
		capacity:  capacity,
		timing:    timing,
		state:     outOfService{},
	}
	slog.Debug("Elevator initialized", "elevator", id, "floors", numFloors, "capacity", capacity)
	return elevator
}

func (e *Elevator) ID() int                                { return e.id }
func (e *Elevator) Floor() int                             { return e.floor }
func (e *Elevator) Behaviour() types.ElevBehaviour         { return e.state.behaviour() }
func (e *Elevator) FreeCapacity() int                      { return e.capacity - len(e.onboard) }
func (e *Elevator) topFloor() int                          { return e.numFloors - 1 }
func (e *Elevator) isBehaviour(b types.ElevBehaviour) bool { return e.state.behaviour() == b }

// Start puts an out-of-service elevator into service, waiting at floor 0.
func (e *Elevator) Start() error {
	if !e.isBehaviour(types.OutOfService) {
		return fmt.Errorf("%w: elevator %d is already in service (%s)", types.ErrInvalidState, e.id, e.Behaviour())
	}
	e.floor = 0
	e.onboard = nil
	e.state = idle{wait: e.timing.WaitTicks}
	slog.Debug("Elevator started", "elevator", e.id)
	return nil
}

// TakeOutOfService sends the elevator back to floor 0 without accepting new boarders.
// A car already at floor 0 is out of service immediately.
func (e *Elevator) TakeOutOfService() error {
	switch e.state.(type) {
	case outOfService:
		return fmt.Errorf("%w: elevator %d is already out of service", types.ErrInvalidState, e.id)
	case returning:
		return nil
	}

	if e.floor == 0 {
		e.park()
		return nil
	}
	e.state = returning{remaining: e.timing.MoveTicks}
	slog.Info("Elevator returning to ground floor", "elevator", e.id, "floor", e.floor, "onboard", len(e.onboard))
	return nil
}

// IsTakingRequests reports whether the elevator is waiting at an extremity and can board passengers.
func (e *Elevator) IsTakingRequests() bool {
	if !e.isBehaviour(types.Idle) {
		return false
	}
	return e.floor == 0 || e.floor == e.topFloor()
}

// ProcessRequests boards a batch of requests and opens the doors.
//   - the elevator must be taking requests
//   - the batch must fit in the free capacity
//   - every request must travel away from the extremity the elevator stands at
//   - an empty batch still starts a sweep towards the opposite extremity
func (e *Elevator) ProcessRequests(requests []types.Request) error {
	if !e.IsTakingRequests() {
		return fmt.Errorf("%w: elevator %d is not taking requests (%s at floor %d)",
			types.ErrInvalidState, e.id, e.Behaviour(), e.floor)
	}
	if len(requests) > e.FreeCapacity() {
		return fmt.Errorf("%w: %d requests exceed free capacity %d of elevator %d",
			types.ErrInvalidArgument, len(requests), e.FreeCapacity(), e.id)
	}

	heading := e.boardingDirection()
	for _, request := range requests {
		if request.Dir() != heading || !e.validFloor(request.StartFloor) || !e.validFloor(request.EndFloor) {
			return fmt.Errorf("%w: request %s cannot board elevator %d heading %s",
				types.ErrInvalidArgument, request, e.id, heading)
		}
	}

	e.onboard = append(e.onboard, requests...)
	e.state = loading{heading: heading, remaining: e.timing.DoorTicks}
	if len(requests) == 0 {
		slog.Debug("Sweep started without boarders", "elevator", e.id, "floor", e.floor, "heading", heading)
		return nil
	}
	slog.Info("Passengers boarding",
		"elevator", e.id,
		"floor", e.floor,
		"requests", types.FormatRequests(requests),
		"onboard", len(e.onboard))
	return nil
}

// Report returns a snapshot that shares no memory with the elevator.
func (e *Elevator) Report() types.ElevReport {
	report := types.ElevReport{
		ID:             e.id,
		Floor:          e.floor,
		Dir:            types.MD_Stop,
		Behaviour:      e.Behaviour(),
		TakingRequests: e.IsTakingRequests(),
	}
	switch s := e.state.(type) {
	case idle:
		report.Timer = s.wait
	case loading:
		report.Timer = s.remaining
	case unloading:
		report.Timer = s.remaining
	case moving:
		report.Timer = s.remaining
		report.Dir = s.dir
	case returning:
		report.Timer = s.remaining
		report.Dir = types.MD_Down
	}
	if err := deepcopy.Copy(&report.Onboard, e.onboard); err != nil {
		panic(err)
	}
	return report
}

// boardingDirection is the only direction a car can carry passengers in from where it stands.
func (e *Elevator) boardingDirection() types.MotorDirection {
	if e.floor == 0 {
		return types.MD_Up
	}
	return types.MD_Down
}

func (e *Elevator) validFloor(floor int) bool {
	return floor >= 0 && floor < e.numFloors
}

// park empties the car at floor 0 and takes it out of service.
func (e *Elevator) park() {
	if len(e.onboard) > 0 {
		slog.Info("Passengers leaving at ground floor", "elevator", e.id, "requests", types.FormatRequests(e.onboard))
	}
	e.onboard = nil
	e.state = outOfService{}
	slog.Info("Elevator out of service", "elevator", e.id)
}
