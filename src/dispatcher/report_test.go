package dispatcher

import (
	"errors"
	"testing"

	"elevsim/src/types"
)

func TestReportWithPendingRequests(t *testing.T) {
	b := newRunningBuilding(t, 10, 3, 8)
	mustAdd(t, b, 0, 5)
	mustAdd(t, b, 3, 1)

	report := b.Report()
	if report.NumFloors != 10 || report.NumElevators != 3 || report.Capacity != 8 {
		t.Errorf("report dimensions = %d/%d/%d", report.NumFloors, report.NumElevators, report.Capacity)
	}
	if report.Status != types.StatusRunning {
		t.Errorf("status = %s, want Running", report.Status)
	}
	if len(report.UpRequests) != 1 || len(report.DownRequests) != 1 || len(report.Elevators) != 3 {
		t.Errorf("report = %+v", report)
	}
}

func TestReportString(t *testing.T) {
	b := newRunningBuilding(t, 10, 3, 8)
	mustAdd(t, b, 0, 5)
	mustAdd(t, b, 3, 1)

	want := "BuildingReport {\n" +
		"\tNumber of Floors: 10\n" +
		"\tNumber of Elevators: 3\n" +
		"\tElevator Capacity: 8\n" +
		"\tElevator Reports: \n" +
		"\t\tWaiting[Floor 0, Time 5]\n" +
		"\t\tWaiting[Floor 0, Time 5]\n" +
		"\t\tWaiting[Floor 0, Time 5]\n" +
		"\tUp Requests: [0->5]\n" +
		"\tDown Requests: [3->1]\n" +
		"\tSystem Status: Running\n" +
		"}"
	if got := b.Report().String(); got != want {
		t.Errorf("Report().String() =\n%s\nwant\n%s", got, want)
	}
}

func TestReportIsolation(t *testing.T) {
	b := newRunningBuilding(t, 10, 2, 8)
	mustAdd(t, b, 0, 5)
	mustAdd(t, b, 3, 1)
	mustAdd(t, b, 4, 2)
	b.Step()

	report := b.Report()
	report.DownRequests[0] = types.NewRequest(9, 0)
	report.DownRequests = append(report.DownRequests, types.NewRequest(8, 0))
	report.UpRequests = append(report.UpRequests, types.NewRequest(0, 1))
	report.Elevators[0].Onboard[0] = types.NewRequest(0, 9)
	report.Elevators[1].Floor = 7

	fresh := b.Report()
	if got := types.FormatRequests(fresh.DownRequests); got != "[3->1, 4->2]" {
		t.Errorf("down queue = %s after mutating a report", got)
	}
	if len(fresh.UpRequests) != 0 {
		t.Errorf("up queue = %v after mutating a report", fresh.UpRequests)
	}
	if got := fresh.Elevators[0].Onboard[0].String(); got != "0->5" {
		t.Errorf("onboard = %s after mutating a report", got)
	}
	if fresh.Elevators[1].Floor != 0 {
		t.Errorf("elevator 1 floor = %d after mutating a report", fresh.Elevators[1].Floor)
	}
}

func TestElevatorReportIndex(t *testing.T) {
	b := newRunningBuilding(t, 10, 3, 8)
	for _, index := range []int{-1, 3} {
		if _, err := b.ElevatorReport(index); !errors.Is(err, types.ErrInvalidArgument) {
			t.Errorf("ElevatorReport(%d) = %v, want ErrInvalidArgument", index, err)
		}
	}
	report, err := b.ElevatorReport(2)
	if err != nil || report.ID != 2 {
		t.Errorf("ElevatorReport(2) = %+v, %v", report, err)
	}
}
