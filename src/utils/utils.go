package utils

import (
	"fmt"
	"io"

	"elevsim/src/types"
)

// StatusLine is a one-line summary of a building report for the console.
func StatusLine(report types.BuildingReport) string {
	line := fmt.Sprintf("Status: %-14s | Up: %d | Down: %d |", report.Status, len(report.UpRequests), len(report.DownRequests))
	for _, elevReport := range report.Elevators {
		line += fmt.Sprintf(" E%d %s %d", elevReport.ID, elevReport.Behaviour, elevReport.Floor)
	}
	return line
}

// PrintStatus is called after every command in the console controller
func PrintStatus(out io.Writer, report types.BuildingReport) {
	fmt.Fprintf(out, "\r%s\r\n", StatusLine(report))
}
