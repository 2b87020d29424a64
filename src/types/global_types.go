package types

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (dir MotorDirection) String() string {
	switch dir {
	case MD_Up:
		return "Up"
	case MD_Down:
		return "Down"
	default:
		return "Stopped"
	}
}

type ElevBehaviour int

const (
	OutOfService ElevBehaviour = iota
	Idle
	Loading
	Moving
	Unloading
	Returning
)

func (b ElevBehaviour) String() string {
	switch b {
	case OutOfService:
		return "Out of Service"
	case Idle:
		return "Waiting"
	case Loading:
		return "Loading"
	case Moving:
		return "Moving"
	case Unloading:
		return "Unloading"
	case Returning:
		return "Returning"
	}
	return "Unknown"
}

// SystemStatus is the building-wide lifecycle: OutOfService -> Running -> Stopping -> OutOfService.
type SystemStatus int

const (
	StatusOutOfService SystemStatus = iota
	StatusRunning
	StatusStopping
)

func (s SystemStatus) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusStopping:
		return "Stopping"
	default:
		return "Out of Service"
	}
}
