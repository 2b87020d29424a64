package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/eiannone/keyboard"

	"elevsim/src/timer"
	"elevsim/src/types"
	"elevsim/src/utils"
)

// Building is the part of the dispatcher the controller drives.
type Building interface {
	Start() error
	Stop() error
	Step()
	AddRequest(startFloor, endFloor int) (bool, error)
	Report() types.BuildingReport
}

type Controller struct {
	building    Building
	out         io.Writer
	interval    time.Duration
	input       []rune
	autoStep    bool
	timerAction chan<- timer.TimerAction
}

func New(building Building, out io.Writer, interval time.Duration) *Controller {
	return &Controller{building: building, out: out, interval: interval}
}

// Run reads keys and auto-step ticks in one loop until quit or ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	keyEvents, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	tickCh := make(chan bool, 1)
	timerAction := make(chan timer.TimerAction)
	go timer.Ticker(c.interval, tickCh, timerAction)
	defer close(timerAction)
	c.timerAction = timerAction

	c.printHelp()
	utils.PrintStatus(c.out, c.building.Report())

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-keyEvents:
			if event.Err != nil {
				return fmt.Errorf("read key: %w", event.Err)
			}
			if c.HandleKey(event.Rune, event.Key) {
				slog.Info("Controller quit")
				return nil
			}

		case <-tickCh:
			c.step()
		}
	}
}

// HandleKey applies one key press and reports whether the controller should quit.
func (c *Controller) HandleKey(ch rune, key keyboard.Key) (quit bool) {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return true
	case keyboard.KeyEnter:
		c.submitInput()
		return false
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		if len(c.input) > 0 {
			c.input = c.input[:len(c.input)-1]
		}
		c.printInput()
		return false
	case keyboard.KeySpace:
		c.step()
		return false
	}

	switch {
	case ch == 'q':
		return true
	case ch == 's':
		c.report(c.building.Start(), "start")
	case ch == 'x':
		c.report(c.building.Stop(), "stop")
	case ch == 'n':
		c.step()
	case ch == 'a':
		c.toggleAutoStep()
	case ch == 'r':
		fmt.Fprintf(c.out, "%s\r\n", c.building.Report())
	case ch >= '0' && ch <= '9', ch == '>', ch == '-':
		c.input = append(c.input, ch)
		c.printInput()
	}
	return false
}

func (c *Controller) step() {
	c.building.Step()
	utils.PrintStatus(c.out, c.building.Report())
}

func (c *Controller) submitInput() {
	text := string(c.input)
	c.input = c.input[:0]
	start, end, err := ParseRequest(text)
	if err != nil {
		c.report(err, "parse request")
		return
	}
	if _, err := c.building.AddRequest(start, end); err != nil {
		c.report(err, "add request")
		return
	}
	slog.Info("Request added", "start", start, "end", end)
	utils.PrintStatus(c.out, c.building.Report())
}

func (c *Controller) toggleAutoStep() {
	if c.timerAction == nil {
		return
	}
	c.autoStep = !c.autoStep
	if c.autoStep {
		c.timerAction <- timer.Start
	} else {
		c.timerAction <- timer.Stop
	}
	fmt.Fprintf(c.out, "Auto-step: %t\r\n", c.autoStep)
}

// Errors from the building are shown to the user and never end the session.
func (c *Controller) report(err error, action string) {
	if err != nil {
		slog.Warn("Command failed", "action", action, "error", err)
		fmt.Fprintf(c.out, "error: %s: %v\r\n", action, err)
		return
	}
	utils.PrintStatus(c.out, c.building.Report())
}

func (c *Controller) printInput() {
	fmt.Fprintf(c.out, "\rRequest: %s\x1b[K", string(c.input))
}

func (c *Controller) printHelp() {
	fmt.Fprint(c.out, "s start | x stop | n/space step | a auto-step | r report | <from>><to> Enter add request | q quit\r\n")
}
