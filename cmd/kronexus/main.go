/*
 * kronexus - deterministic parallel Kronecker-graph generator
 *
 * MIT License
 *
 * Copyright (c) 2018-2026 The kronexus authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kgen/kronexus/assert"
	"github.com/kgen/kronexus/config"
	"github.com/kgen/kronexus/kron"
	"github.com/kgen/kronexus/logging"
	"github.com/kgen/kronexus/permute"
	"github.com/kgen/kronexus/testsuite"
	"github.com/kgen/kronexus/types"
	"github.com/kgen/kronexus/util"
)

const version = "1.0"

var out = message.NewPrinter(language.English)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	genlogLvl := flag.String("genloglvl", "", "generator log level\n(critical|error|warning|notice|info|debug)")
	permlogLvl := flag.String("permloglvl", "", "permutation log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "", "path where to write log files to")
	workers := flag.Int("workers", 0, "number of simulated worker ranks for edge generation\noverrides the config file when > 0")
	permSize := flag.Uint64("permsize", 0, "size of the random permutation to generate\noverrides the config file when > 0")
	runSuite := flag.Bool("testsuite", false, "runs the built-in end-to-end scenario suite and exits")
	profileCPU := flag.Bool("profile", false, "writes a CPU profile for this run")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	// set config file
	// this needs to be set before config.Setup() is called. Otherwise the default will be used.
	// a relative path is resolved against the working directory, the
	// executable's directory and the user's home directory, in that order.
	if path, err := util.ResolveFile(*configFile); err == nil {
		config.ConfFile = path
	} else {
		config.ConfFile = *configFile
	}

	// read config file
	config.Setup()

	// After reading the configuration file and the defaults we can now
	// overwrite settings with command line options.
	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*genlogLvl]; found {
		config.GeneratorLogLevel = lvl
	}
	if lvl, found := config.LogLevels[*permlogLvl]; found {
		config.PermuteLogLevel = lvl
	}
	if *workers > 0 {
		config.Settings.Generator.Workers = *workers
	}
	if *permSize > 0 {
		config.Settings.Permutation.Size = *permSize
	}

	// resetting log level on the standard, generator and permute logs -
	// required as most packages include a logger as a global var and
	// therefore configure it before main() is called. These loggers start
	// with the default log level and must be reset to the actual level required.
	log := logging.GetLog()
	logging.GetGeneratorLog()
	logging.GetPermuteLog()

	if *profileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	// execute the scenario suite if the command line option is given
	if *runSuite {
		ts := testsuite.NewTestSuite()
		ts.RunTests()
		if len(ts.Failures()) > 0 {
			os.Exit(1)
		}
		return
	}

	gen := config.Settings.Generator
	mode, ok := types.ParseOutputMode(gen.OutputMode)
	assert.Fatal(ok, "unknown output mode %q", gen.OutputMode)

	log.Infof("kronexus %s: generating %d edges, logN=%d, %d workers", version, gen.Edges, gen.LogN, gen.Workers)

	// Fan one goroutine per simulated rank; each computes its own edge
	// slice without communicating, which is the whole point of the
	// position-addressable design.
	start := time.Now()
	results := make([]kron.Output, gen.Workers)
	g, _ := errgroup.WithContext(context.Background())
	for rank := 0; rank < gen.Workers; rank++ {
		rank := rank
		g.Go(func() error {
			results[rank] = kron.GenerateKronecker(rank, gen.Workers, gen.Seed, gen.LogN,
				gen.Edges, types.Initiator(gen.Initiator), gen.Undirected, mode)
			return nil
		})
	}
	assert.Fatal(g.Wait() == nil, "edge generation failed")
	genElapsed := time.Since(start)

	var totalMult, records uint64
	for _, res := range results {
		switch mode {
		case types.KeepMultiplicity:
			for _, e := range res.Edges {
				totalMult += e.Multiplicity
				if !e.Unwritten() {
					records++
				}
			}
		case types.TombstoneDuplicates:
			for i := 0; i < len(res.Pairs); i += 2 {
				if !res.Pairs[i].IsTombstone() {
					records++
				}
			}
			totalMult += uint64(len(res.Pairs)) / 2
		}
	}

	out.Printf("kronexus %s\n", version)
	out.Printf("Edge generation:\n")
	out.Printf("  Workers:        %d\n", gen.Workers)
	out.Printf("  logN:           %d\n", gen.LogN)
	out.Printf("  Edges:          %d\n", gen.Edges)
	out.Printf("  Distinct:       %d\n", records)
	out.Printf("  Multiplicities: %d\n", totalMult)
	out.Printf("  Time:           %d ms\n", genElapsed.Milliseconds())

	perm := config.Settings.Permutation
	start = time.Now()
	var permLen int
	if perm.Ranks > 1 {
		parts := permute.RandSortDistributed(gen.Seed, perm.Size, perm.Ranks)
		for _, p := range parts {
			permLen += len(p)
		}
	} else {
		permLen = len(permute.RandSortShared(gen.Seed, perm.Size, perm.PoolWorkers))
	}
	permElapsed := time.Since(start)

	out.Printf("Permutation:\n")
	out.Printf("  Size:           %d\n", permLen)
	out.Printf("  Ranks:          %d\n", perm.Ranks)
	out.Printf("  Time:           %d ms\n", permElapsed.Milliseconds())
}

func printVersionInfo() {
	out.Printf("kronexus %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
