// State types are defined in elev package to make method receivers possible in elev.go and fsm.go.
package elev

import (
	"elevsim/src/config"
	"elevsim/src/types"
)

// Elevator owns the state of a single elevator car. It is not safe for concurrent use;
// the building steps every car from one goroutine.
type Elevator struct {
	id        int
	numFloors int
	capacity  int
	timing    config.Timing
	floor     int
	state     state
	onboard   []types.Request
}

// state is exactly one of the phase types below.
type state interface {
	behaviour() types.ElevBehaviour
}

type outOfService struct{}

// idle waits at an extremity with doors closed, accepting boarders.
type idle struct {
	wait int
}

type loading struct {
	heading   types.MotorDirection
	remaining int
}

type moving struct {
	dir       types.MotorDirection
	remaining int
}

type unloading struct {
	heading   types.MotorDirection
	remaining int
}

// returning is the forced descent to floor 0 after the car was taken out of service.
type returning struct {
	remaining int
}

func (outOfService) behaviour() types.ElevBehaviour { return types.OutOfService }
func (idle) behaviour() types.ElevBehaviour         { return types.Idle }
func (loading) behaviour() types.ElevBehaviour      { return types.Loading }
func (moving) behaviour() types.ElevBehaviour       { return types.Moving }
func (unloading) behaviour() types.ElevBehaviour    { return types.Unloading }
func (returning) behaviour() types.ElevBehaviour    { return types.Returning }
