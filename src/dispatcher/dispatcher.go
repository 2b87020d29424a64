package dispatcher

import (
	"fmt"
	"log/slog"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/types"
)

const (
	minFloors    = 2
	minElevators = 1
	minCapacity  = 3
)

// NewBuilding creates a building with the default elevator timing.
func NewBuilding(numFloors, numElevators, capacity int) (*Building, error) {
	return New(config.Building{
		Floors:    numFloors,
		Elevators: numElevators,
		Capacity:  capacity,
		Timing:    config.DefaultTiming(),
	})
}

// New validates cfg and creates an out-of-service building with every elevator parked at floor 0.
func New(cfg config.Building) (*Building, error) {
	switch {
	case cfg.Floors < minFloors:
		return nil, fmt.Errorf("%w: number of floors must be no less than %d, got %d", types.ErrInvalidArgument, minFloors, cfg.Floors)
	case cfg.Elevators < minElevators:
		return nil, fmt.Errorf("%w: number of elevators must be a positive integer, got %d", types.ErrInvalidArgument, cfg.Elevators)
	case cfg.Capacity < minCapacity:
		return nil, fmt.Errorf("%w: elevator capacity must be no less than %d, got %d", types.ErrInvalidArgument, minCapacity, cfg.Capacity)
	}
	if err := cfg.Timing.Validate(); err != nil {
		return nil, err
	}

	building := &Building{
		numFloors: cfg.Floors,
		capacity:  cfg.Capacity,
		elevators: make([]*elev.Elevator, cfg.Elevators),
		status:    types.StatusOutOfService,
	}
	for i := range building.elevators {
		building.elevators[i] = elev.New(i, cfg.Floors, cfg.Capacity, cfg.Timing)
	}
	slog.Info("Building created", "floors", cfg.Floors, "elevators", cfg.Elevators, "capacity", cfg.Capacity)
	return building, nil
}

func (b *Building) NumFloors() int             { return b.numFloors }
func (b *Building) NumElevators() int          { return len(b.elevators) }
func (b *Building) Capacity() int              { return b.capacity }
func (b *Building) Status() types.SystemStatus { return b.status }

// Start puts every elevator into service. A stopping system must reach out of service first.
func (b *Building) Start() error {
	switch b.status {
	case types.StatusRunning:
		return fmt.Errorf("%w: elevator system is already running", types.ErrInvalidState)
	case types.StatusStopping:
		return fmt.Errorf("%w: elevator system cannot be started until it is stopped", types.ErrInvalidState)
	}

	for _, elevator := range b.elevators {
		if err := elevator.Start(); err != nil {
			// Every car is out of service whenever the building is.
			return fmt.Errorf("start elevator %d: %w", elevator.ID(), err)
		}
	}
	b.status = types.StatusRunning
	slog.Info("Elevator system started")
	return nil
}

// Stop sends every elevator home and discards requests not yet handed to an elevator.
// Passengers already on board stay with their elevator.
func (b *Building) Stop() error {
	if b.status != types.StatusRunning {
		return fmt.Errorf("%w: elevator system is not running (%s)", types.ErrInvalidState, b.status)
	}

	for _, elevator := range b.elevators {
		if err := elevator.TakeOutOfService(); err != nil {
			return fmt.Errorf("stop elevator %d: %w", elevator.ID(), err)
		}
	}
	discarded := len(b.queue.up) + len(b.queue.down)
	b.queue.clear()
	b.status = types.StatusStopping
	slog.Info("Elevator system stopping", "discardedRequests", discarded)
	return nil
}

// Step advances the whole building by one tick. It is a no-op while out of service.
//   - every elevator is stepped first, in index order
//   - a running system then boards pending requests
//   - a stopping system goes out of service once every elevator is at floor 0
func (b *Building) Step() {
	if b.status == types.StatusOutOfService {
		return
	}
	for _, elevator := range b.elevators {
		elevator.Step()
	}

	switch b.status {
	case types.StatusRunning:
		b.distributeRequests()
	case types.StatusStopping:
		if b.allAtGroundFloor() {
			b.status = types.StatusOutOfService
			slog.Info("Elevator system out of service")
		}
	}
}

func (b *Building) allAtGroundFloor() bool {
	for _, elevator := range b.elevators {
		if elevator.Floor() != 0 {
			return false
		}
	}
	return true
}
