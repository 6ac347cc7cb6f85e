package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/alfille/foxhole-solve/internal/result"
	"github.com/alfille/foxhole-solve/internal/topology"
	"github.com/alfille/foxhole-solve/internal/viewer"
)

var (
	holeColor    = color.RGBA{70, 74, 82, 255}
	foxHoleColor = color.RGBA{150, 60, 40, 255}
	visitColor   = color.RGBA{230, 200, 60, 255}
	background   = color.RGBA{30, 32, 38, 255}
	textColor    = color.RGBA{225, 225, 225, 255}
)

// game implements ebiten.Game. It owns the replay state and a board
// layout computed once from the result's geometry and dimensions.
type game struct {
	result *result.Result
	state  *viewer.State
	layout []viewer.Point
	sprite *viewer.FoxSprite
}

func newGame(r result.Result, replay viewer.Replay) *game {
	return &game{
		result: &r,
		state:  viewer.NewState(replay),
		layout: viewer.Layout(layoutGeometry(r.Geometry), r.Length, r.Width),
		sprite: viewer.NewFoxSprite(2 * holeRadius),
	}
}

// layoutGeometry mirrors result.GeometryName in reverse, for hole
// placement only. Build already rejected any result.Geometry string
// it could not parse, so by the time a game exists here the value is
// always one of these three.
func layoutGeometry(name string) topology.Geometry {
	switch name {
	case "grid":
		return topology.Grid
	case "triangle":
		return topology.Triangle
	default:
		return topology.Circle
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.state.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.state.Prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		for g.state.Day() > 0 {
			g.state.Prev()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		for !g.state.AtEnd() {
			g.state.Next()
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	gameBoard := g.state.Game()
	visited := g.state.Visited()

	for h, p := range g.layout {
		cx := boardMargin + p.X*float64(screenWidth-2*boardMargin)
		cy := boardMargin + p.Y*float64(screenHeight-2*boardMargin-60)

		c := holeColor
		if visited.Test(h) {
			c = visitColor
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), holeRadius, c, false)

		if gameBoard.Test(h) {
			if visited.Test(h) {
				vector.DrawFilledCircle(screen, float32(cx), float32(cy), holeRadius, foxHoleColor, false)
			}
			g.sprite.DrawAt(screen, int(cx), int(cy))
		}
	}

	g.drawLabel(screen)
}

func (g *game) drawLabel(screen *ebiten.Image) {
	face := viewer.LabelFace()
	if face == nil {
		return
	}
	status := "surviving"
	if g.state.AtEnd() {
		status = "all caught"
	}
	s := fmt.Sprintf("%s/%s  %dx%d  day %d / %d  (%s)  [space: next, left: back, home/end]",
		g.result.Geometry, g.result.Connection, g.result.Length, g.result.Width,
		g.state.Day(), g.state.Replay().Days, status)

	op := &text.DrawOptions{}
	op.GeoM.Translate(boardMargin, float64(screenHeight-40))
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, s, face, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
