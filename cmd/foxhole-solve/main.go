// Command foxhole-solve finds the minimal day schedule that guarantees
// catching every fox in a foxhole pursuit puzzle, per the CLI flags
// described in spec.md §6.1.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alfille/foxhole-solve/internal/cache"
	"github.com/alfille/foxhole-solve/internal/config"
	"github.com/alfille/foxhole-solve/internal/result"
	"github.com/alfille/foxhole-solve/internal/solver"
	"github.com/alfille/foxhole-solve/internal/topology"
)

var (
	xlength  = flag.Int("l", 5, "board xlength (3..64)")
	ylength  = flag.Int("w", 1, "board ylength (1..21), ignored for -t")
	visits   = flag.Int("v", 1, "visits per day (1..holes)")
	poison   = flag.Int("p", 0, "poison days (0..32)")
	circle   = flag.Bool("c", false, "geometry = circle (default)")
	grid     = flag.Bool("g", false, "geometry = grid")
	triangle = flag.Bool("t", false, "geometry = triangle (forces ylength=xlength)")
	rect     = flag.Bool("4", false, "rectangular adjacency (default)")
	hex      = flag.Bool("6", false, "hexagonal adjacency")
	oct      = flag.Bool("8", false, "octagonal adjacency")
	rigorous = flag.Bool("r", false, "rigorous transposition keys (full poison-history tail)")
	progress = flag.Bool("u", false, "periodic progress output")
	jsonPath = flag.String("j", "", "emit JSON result to this file, or stdout if omitted")
	noCache  = flag.Bool("no-cache", false, "skip the result cache")
	help     = flag.Bool("h", false, "print usage and exit")
)

func init() {
	// Uppercase aliases, per spec.md §6.1's flag table: each of these
	// letter flags accepts either case with identical effect. -j, -r and
	// -no-cache have no uppercase form.
	flag.IntVar(xlength, "L", 5, "same as -l")
	flag.IntVar(ylength, "W", 1, "same as -w")
	flag.IntVar(visits, "V", 1, "same as -v")
	flag.IntVar(poison, "P", 0, "same as -p")
	flag.BoolVar(circle, "C", false, "same as -c")
	flag.BoolVar(grid, "G", false, "same as -g")
	flag.BoolVar(triangle, "T", false, "same as -t")
	flag.BoolVar(progress, "U", false, "same as -u")
	flag.BoolVar(help, "H", false, "same as -h")
}

func main() {
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	raw := config.Raw{
		XLength:    *xlength,
		YLength:    *ylength,
		Visits:     *visits,
		Poison:     *poison,
		Geometry:   geometryFlag(),
		Connection: connectionFlag(),
		Rigorous:   *rigorous,
		Progress:   *progress,
	}

	cfg, err := config.Validate(raw)
	if err != nil {
		log.Printf("foxhole-solve: %v", err)
		os.Exit(1)
	}

	var c *cache.Cache
	if !*noCache {
		c = cache.Open("")
		defer c.Close()
	}
	key := cache.KeyFor(cfg)

	r, hit, err := c.Get(key)
	if err != nil {
		log.Printf("foxhole-solve: cache lookup failed, continuing without it: %v", err)
	}
	if !hit {
		dots := 0
		onProgress := func() {
			log.Writer().Write([]byte("."))
			dots++
		}
		e, err := solver.New(cfg, onProgress)
		if err != nil {
			log.Printf("foxhole-solve: %v", err)
			os.Exit(1)
		}
		r, err = e.Solve()
		if err != nil {
			log.Printf("foxhole-solve: %v", err)
			os.Exit(1)
		}
		if dots > 0 {
			fmt.Fprintln(os.Stderr)
		}
		if err := c.Put(key, r); err != nil {
			log.Printf("foxhole-solve: cache store failed: %v", err)
		}
	}

	if err := emit(r); err != nil {
		log.Printf("foxhole-solve: %v", err)
		os.Exit(1)
	}
}

func geometryFlag() topology.Geometry {
	switch {
	case *grid:
		return topology.Grid
	case *triangle:
		return topology.Triangle
	default:
		return topology.Circle
	}
}

func connectionFlag() topology.Connection {
	switch {
	case *hex:
		return topology.Hexagonal
	case *oct:
		return topology.Octagonal
	default:
		return topology.Rectangular
	}
}

func emit(r result.Result) error {
	data, err := result.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	data = append(data, '\n')

	if *jsonPath != "" {
		return os.WriteFile(*jsonPath, data, 0644)
	}
	_, err = os.Stdout.Write(data)
	return err
}
