package controller

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"elevsim/src/config"
	"elevsim/src/types"
)

// RunScript drives b headlessly. Requests are injected before the step of their tick and the
// stop is issued at the start of StopTick. A run with a StopTick must reach Out of Service
// within MaxTicks.
func RunScript(b Building, script config.Script) (types.BuildingReport, error) {
	if err := b.Start(); err != nil {
		return b.Report(), err
	}

	requests := slices.Clone(script.Requests)
	slices.SortStableFunc(requests, func(x, y config.ScriptedRequest) int {
		return cmp.Compare(x.Tick, y.Tick)
	})

	maxTicks := script.MaxTicks
	if maxTicks <= 0 {
		maxTicks = config.MaxScriptTicks
	}

	next := 0
	for tick := 0; tick < maxTicks; tick++ {
		if tick == script.StopTick {
			if err := b.Stop(); err != nil {
				return b.Report(), err
			}
			slog.Info("Script stop", "tick", tick)
		}
		for ; next < len(requests) && requests[next].Tick <= tick; next++ {
			request := requests[next]
			if _, err := b.AddRequest(request.Start, request.End); err != nil {
				slog.Warn("Scripted request rejected", "tick", tick, "start", request.Start, "end", request.End, "error", err)
			}
		}

		b.Step()
		report := b.Report()
		slog.Debug("Tick", "tick", tick, "status", report.Status, "pending", report.PendingRequests())
		if report.Status == types.StatusOutOfService {
			return report, nil
		}
	}

	report := b.Report()
	if script.StopTick >= 0 {
		return report, fmt.Errorf("%w: still %s after %d ticks", types.ErrInvalidState, report.Status, maxTicks)
	}
	return report, nil
}
