package dispatcher

import (
	"slices"

	"elevsim/src/elev"
	"elevsim/src/types"
)

// Building owns every elevator and the pending request queues.
// Elevators live in one fixed slice and are only ever addressed by index.
type Building struct {
	numFloors int
	capacity  int
	elevators []*elev.Elevator
	queue     requestQueue
	status    types.SystemStatus
}

// requestQueue holds requests that have not been handed to an elevator yet, FIFO per direction.
type requestQueue struct {
	up   []types.Request
	down []types.Request
}

func (q *requestQueue) push(request types.Request) {
	if request.Dir() == types.MD_Up {
		q.up = append(q.up, request)
	} else {
		q.down = append(q.down, request)
	}
}

// pop removes up to n requests from the front of the queue for dir.
func (q *requestQueue) pop(dir types.MotorDirection, n int) []types.Request {
	source := &q.down
	if dir == types.MD_Up {
		source = &q.up
	}
	n = min(n, len(*source))
	batch := slices.Clone((*source)[:n])
	*source = slices.Delete(*source, 0, n)
	return batch
}

func (q *requestQueue) isEmpty() bool {
	return len(q.up) == 0 && len(q.down) == 0
}

func (q *requestQueue) clear() {
	q.up = nil
	q.down = nil
}
