// Command foxhole-view steps through a solved schedule day by day,
// drawing the foxes still alive on the board and the holes visited
// that day. It is a pure consumer of the JSON result.Result document
// cmd/foxhole-solve writes -- it never touches the search engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/alfille/foxhole-solve/internal/viewer"
)

const (
	screenWidth  = 720
	screenHeight = 720
	boardMargin  = 60
	holeRadius   = 14
)

var resultPath = flag.String("f", "", "path to a solved result JSON file")

func main() {
	flag.Parse()
	if *resultPath == "" {
		fmt.Fprintln(os.Stderr, "usage: foxhole-view -f result.json")
		os.Exit(1)
	}

	r, err := viewer.LoadResult(*resultPath)
	if err != nil {
		log.Fatalf("foxhole-view: %v", err)
	}
	replay, err := viewer.Build(r)
	if err != nil {
		log.Fatalf("foxhole-view: %v", err)
	}

	game := newGame(r, replay)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("foxhole-view: %s %s", r.Geometry, r.Connection))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
