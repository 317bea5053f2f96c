// Package parse reads the steerctl stdin protocol: one configuration per
// line, "x y theta kappa d". It keeps the teacher parse package's
// bufio.Reader + fmt.Sscanf idiom, adapted from the teacher's vehicle
// State tuple (x, y, heading, speed, time) to the steer.State tuple
// (x, y, theta, kappa, driving direction).
package parse

import (
	"bufio"
	"fmt"

	. "github.com/Aand1/steering-functions/internal/logging"
	"github.com/Aand1/steering-functions/steer"
)

// GetLine reads one newline-terminated line, tolerating a missing final newline.
func GetLine(reader *bufio.Reader) string {
	l, _ := reader.ReadString('\n')
	return l
}

// ParseState parses a line in the format "x y theta kappa d".
func ParseState(line string) steer.State {
	var x, y, theta, kappa, d float64
	_, err := fmt.Sscanf(line, "%f %f %f %f %f", &x, &y, &theta, &kappa, &d)
	HandleError(err, ParseErr)
	return steer.State{X: x, Y: y, Theta: theta, Kappa: kappa, D: d}
}

// ReadState reads one state line from reader.
func ReadState(reader *bufio.Reader) steer.State {
	return ParseState(GetLine(reader))
}
