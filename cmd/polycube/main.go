//
// polycube - 3D polycube packing solver
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/pkg/profile"

	"github.com/gopacker/polycube/internal/config"
	"github.com/gopacker/polycube/internal/logging"
	"github.com/gopacker/polycube/internal/problem"
	"github.com/gopacker/polycube/internal/render"
	"github.com/gopacker/polycube/internal/solver"
	"github.com/gopacker/polycube/internal/solverrun"
)

// exit codes, per the documented CLI contract: 0 a solution was found (or
// the full space was exhausted with stop-at-first-solution off and at
// least one solution emitted), 1 the search exhausted with none found, 2
// the problem definition was invalid, 130 the search was stopped by signal.
const (
	exitSolutionFound = 0
	exitNoSolution    = 1
	exitInvalidInput  = 2
	exitSignalStopped = 130
)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	solverLogLvl := flag.String("solverloglvl", "", "solver log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "./logs", "log path setting (log output itself always goes to stdout)")
	problemName := flag.String("problem", "real", "catalog problem to solve\n(line|six|unsolvable|real)")
	stopFirst := flag.Bool("first", false, "stop at the first solution found")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile of the search to ./profiles")
	renderSolutions := flag.Bool("render", true, "render every found solution as ASCII layers")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*solverLogLvl]; found {
		config.SolverLogLevel = lvl
	}
	if *stopFirst {
		config.Settings.Solver.StopAtFirstSolution = true
	}

	log := logging.GetLog()

	// stopped explicitly before the final os.Exit, which skips deferred calls
	var stopProfile func()
	if *cpuProfile {
		stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath("./profiles"), profile.NoShutdownHook).Stop
	}

	def, err := problem.ByName(*problemName)
	if err != nil {
		log.Errorf("unknown problem %q: %s", *problemName, err)
		os.Exit(exitInvalidInput)
	}

	p, err := problem.Load(def)
	if err != nil {
		log.Errorf("invalid problem %q: %s", *problemName, err)
		os.Exit(exitInvalidInput)
	}

	log.Infof("loaded problem %q: %dx%dx%d box, %d pieces", *problemName, p.Space.W, p.Space.H, p.Space.D, len(p.Pieces))

	run := solverrun.NewRun()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGUSR1)
	go func() {
		for sig := range sigs {
			switch sig {
			case syscall.SIGUSR1:
				run.RequestStatus()
			default:
				log.Info("received interrupt, stopping search")
				run.Stop()
				return
			}
		}
	}()

	solutionCount := 0
	run.Start(p, func(sol solver.Solution) {
		solutionCount++
		if *renderSolutions {
			fmt.Println(render.Solution(p, sol))
		}
	})
	run.Wait()
	signal.Stop(sigs)
	close(sigs)

	result := run.Result()
	log.Infof("search finished: %s", result.Stats.String())

	if stopProfile != nil {
		stopProfile()
	}

	switch {
	case result.Outcome == solver.OutcomeCancelled:
		os.Exit(exitSignalStopped)
	case solutionCount > 0:
		os.Exit(exitSolutionFound)
	default:
		os.Exit(exitNoSolution)
	}
}

func printVersionInfo() {
	fmt.Println("polycube 0.1.0")
	fmt.Println("Environment:")
	fmt.Printf("  Using GO version %s\n", runtime.Version())
	fmt.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	fmt.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	fmt.Printf("  Working directory: %s\n", cwd)
}
