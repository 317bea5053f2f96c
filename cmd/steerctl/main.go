// Command steerctl drives a steer.StateSpace from the command line:
// start/goal pairs read from stdin (two lines per query, until input
// ends), or a -random batch. It keeps the teacher main.go's stdin-driven
// read loop for the stdin mode,
// reading "x y theta kappa d" lines with internal/parse the way the
// teacher read "x y heading speed time" lines with fmt.Scanf.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/Aand1/steering-functions/internal/config"
	. "github.com/Aand1/steering-functions/internal/logging"
	"github.com/Aand1/steering-functions/internal/parse"
	"github.com/Aand1/steering-functions/steer"
)

func main() {
	params := config.Default()
	flag.Float64Var(&params.KappaMax, "kappa_max", params.KappaMax, "maximum curvature")
	flag.Float64Var(&params.SigmaMax, "sigma_max", params.SigmaMax, "maximum curvature rate")
	flag.Float64Var(&params.Discretization, "discretization", params.Discretization, "sample step for -samples")
	randomN := flag.Int("random", 0, "generate and solve N random start/goal pairs instead of reading stdin")
	samples := flag.Bool("samples", false, "also print the discretized sample sequence")
	flag.BoolVar(&Verbose, "v", false, "verbose logging")
	flag.Parse()

	if err := params.Validate(); err != nil {
		PrintError(err)
	}
	ss, err := steer.NewStateSpace(params.KappaMax, params.SigmaMax, params.Discretization)
	if err != nil {
		PrintError(err)
	}

	if *randomN > 0 {
		runRandom(ss, *randomN, *samples)
		return
	}
	runStdin(ss, *samples)
}

func runRandom(ss *steer.StateSpace, n int, printSamples bool) {
	PrintVerbose(fmt.Sprintf("solving %d random start/goal pairs", n))
	for i := 0; i < n; i++ {
		s1 := randomState()
		s2 := randomState()
		report(ss, s1, s2, printSamples)
	}
}

func runStdin(ss *steer.StateSpace, printSamples bool) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("ready")
	PrintVerbose("ready to solve")
	for {
		line := parse.GetLine(reader)
		if line == "" {
			return
		}
		s1 := parse.ParseState(line)
		s2 := parse.ReadState(reader)
		report(ss, s1, s2, printSamples)
	}
}

func report(ss *steer.StateSpace, s1, s2 steer.State, printSamples bool) {
	p := ss.GetPath(s1, s2)
	fmt.Println(p.String())
	controls := ss.GetControls(s1, s2)
	for _, c := range controls {
		fmt.Printf("  control: delta_s=%.6f kappa0=%.6f sigma=%.6f\n", c.DeltaS, c.Kappa0, c.Sigma)
	}
	if printSamples {
		for _, s := range ss.GetSamples(s1, s2) {
			fmt.Printf("  sample: %.6f %.6f %.6f %.6f %.0f\n", s.X, s.Y, s.Theta, s.Kappa, s.D)
		}
	}
}

func randomState() steer.State {
	return steer.State{
		X:     rand.Float64()*20 - 10,
		Y:     rand.Float64()*20 - 10,
		Theta: rand.Float64() * 2 * math.Pi,
		Kappa: 0,
		D:     1,
	}
}
