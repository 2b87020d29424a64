package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eiannone/keyboard"

	"elevsim/src/config"
	"elevsim/src/dispatcher"
	"elevsim/src/timer"
	"elevsim/src/types"
)

func newController(t *testing.T) (*Controller, *dispatcher.Building, *bytes.Buffer) {
	t.Helper()
	b, err := dispatcher.NewBuilding(10, 3, 8)
	if err != nil {
		t.Fatalf("NewBuilding: %v", err)
	}
	var out bytes.Buffer
	return New(b, &out, time.Second), b, &out
}

func typeKeys(c *Controller, keys string) {
	for _, r := range keys {
		c.HandleKey(r, 0)
	}
}

func TestHandleKeyBoardsTypedRequest(t *testing.T) {
	c, b, _ := newController(t)
	typeKeys(c, "s1>4")
	c.HandleKey(0, keyboard.KeyEnter)
	if got := b.Report().UpRequests; len(got) != 1 || got[0].StartFloor != 1 || got[0].EndFloor != 4 {
		t.Fatalf("up requests = %v, want [1->4]", got)
	}

	c.HandleKey('n', 0)
	report := b.Report()
	if report.PendingRequests() != 0 {
		t.Errorf("pending = %d, want 0", report.PendingRequests())
	}
	if report.Elevators[0].Behaviour != types.Loading || len(report.Elevators[0].Onboard) != 1 {
		t.Errorf("elevator 0 = %s, want Loading with one request", report.Elevators[0])
	}
}

func TestHandleKeyBackspaceEditsInput(t *testing.T) {
	c, b, _ := newController(t)
	typeKeys(c, "s12")
	c.HandleKey(0, keyboard.KeyBackspace2)
	typeKeys(c, "-3")
	c.HandleKey(0, keyboard.KeyEnter)
	if got := b.Report().UpRequests; len(got) != 1 || got[0].String() != "1->3" {
		t.Errorf("up requests = %v, want [1->3]", got)
	}
}

func TestHandleKeyErrorsAreNotFatal(t *testing.T) {
	c, b, out := newController(t)

	if c.HandleKey('x', 0) {
		t.Fatal("stop on an idle system quit the controller")
	}
	if !strings.Contains(out.String(), "error: stop") {
		t.Errorf("output %q does not report the failed stop", out.String())
	}

	typeKeys(c, "s5")
	c.HandleKey(0, keyboard.KeyEnter)
	typeKeys(c, "4>4")
	c.HandleKey(0, keyboard.KeyEnter)
	if b.Report().PendingRequests() != 0 {
		t.Errorf("invalid input was queued: %s", b.Report())
	}
	if b.Report().Status != types.StatusRunning {
		t.Errorf("status = %s, want Running", b.Report().Status)
	}
}

func TestHandleKeyQuit(t *testing.T) {
	c, _, _ := newController(t)
	for _, tc := range []struct {
		ch  rune
		key keyboard.Key
	}{
		{'q', 0},
		{0, keyboard.KeyEsc},
		{0, keyboard.KeyCtrlC},
	} {
		if !c.HandleKey(tc.ch, tc.key) {
			t.Errorf("HandleKey(%q, %d) did not quit", tc.ch, tc.key)
		}
	}
	if c.HandleKey('n', 0) {
		t.Error("step key quit the controller")
	}
}

func TestHandleKeyReportAndAutoStep(t *testing.T) {
	c, _, out := newController(t)
	actions := make(chan timer.TimerAction, 2)
	c.timerAction = actions

	c.HandleKey('s', 0)
	c.HandleKey('r', 0)
	if !strings.Contains(out.String(), "BuildingReport {") {
		t.Errorf("report not printed: %q", out.String())
	}

	c.HandleKey('a', 0)
	c.HandleKey('a', 0)
	if got := <-actions; got != timer.Start {
		t.Errorf("first toggle sent %d, want Start", got)
	}
	if got := <-actions; got != timer.Stop {
		t.Errorf("second toggle sent %d, want Stop", got)
	}
}

func TestParseRequest(t *testing.T) {
	tests := []struct {
		in         string
		start, end int
		ok         bool
	}{
		{"3>7", 3, 7, true},
		{"9-0", 9, 0, true},
		{" 2 > 5 ", 2, 5, true},
		{"5", 0, 0, false},
		{"1>2>3", 0, 0, false},
		{"a>2", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		start, end, err := ParseRequest(tt.in)
		if !tt.ok {
			if !errors.Is(err, types.ErrInvalidArgument) {
				t.Errorf("ParseRequest(%q) error = %v, want ErrInvalidArgument", tt.in, err)
			}
			continue
		}
		if err != nil || start != tt.start || end != tt.end {
			t.Errorf("ParseRequest(%q) = %d, %d, %v; want %d, %d", tt.in, start, end, err, tt.start, tt.end)
		}
	}
}

func TestRunScriptEndsOutOfService(t *testing.T) {
	b, err := dispatcher.NewBuilding(10, 3, 8)
	if err != nil {
		t.Fatalf("NewBuilding: %v", err)
	}
	script := config.Script{
		Requests: []config.ScriptedRequest{
			{Tick: 2, Start: 9, End: 0},
			{Tick: 0, Start: 0, End: 5},
			{Tick: 0, Start: 3, End: 1},
			{Tick: 40, Start: 0, End: 2},
		},
		StopTick: 30,
		MaxTicks: 200,
	}
	report, err := RunScript(b, script)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if report.Status != types.StatusOutOfService {
		t.Errorf("status = %s, want Out of Service", report.Status)
	}
	for _, elevReport := range report.Elevators {
		if elevReport.Floor != 0 || len(elevReport.Onboard) != 0 {
			t.Errorf("elevator %s not parked empty", elevReport)
		}
	}
}

func TestRunScriptWithoutStop(t *testing.T) {
	b, err := dispatcher.NewBuilding(5, 1, 4)
	if err != nil {
		t.Fatalf("NewBuilding: %v", err)
	}
	report, err := RunScript(b, config.Script{
		Requests: []config.ScriptedRequest{{Tick: 0, Start: 0, End: 3}},
		StopTick: -1,
		MaxTicks: 10,
	})
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if report.Status != types.StatusRunning {
		t.Errorf("status = %s, want Running", report.Status)
	}
}

func TestRunScriptStopNeverReached(t *testing.T) {
	b, err := dispatcher.NewBuilding(5, 1, 4)
	if err != nil {
		t.Fatalf("NewBuilding: %v", err)
	}
	_, err = RunScript(b, config.Script{StopTick: 50, MaxTicks: 5})
	if !errors.Is(err, types.ErrInvalidState) {
		t.Errorf("RunScript error = %v, want ErrInvalidState", err)
	}
}
