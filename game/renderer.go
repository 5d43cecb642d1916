package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Scene colors
var (
	colorBackground   = color.NRGBA{R: 3, G: 5, B: 16, A: 255}
	colorShip         = color.NRGBA{R: 80, G: 255, B: 120, A: 255}
	colorEnemy        = color.NRGBA{R: 255, G: 70, B: 70, A: 255}
	colorPlayerBullet = color.NRGBA{R: 255, G: 255, B: 120, A: 255}
	colorEnemyBullet  = color.NRGBA{R: 255, G: 160, B: 40, A: 255}
	colorShield       = color.NRGBA{R: 90, G: 170, B: 255, A: 255}
	colorHUD          = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	colorGameOver     = color.NRGBA{R: 255, G: 80, B: 80, A: 255}
)

// Renderer draws one snapshot onto the screen. The scene is rebuilt in full
// every frame, so the Exited set needs no handling here; a retained-mode
// front end would use it to detach elements by (Kind, ID).
type Renderer struct {
	face font.Face
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// Render draws the whole snapshot: entities, score HUD and, when the game
// is over, the restart banner.
func (r *Renderer) Render(screen *ebiten.Image, s State) {
	screen.Fill(colorBackground)

	r.drawShip(screen, s.Ship)
	for _, e := range s.Enemies {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), colorEnemy, true)
	}
	for _, e := range s.Shields {
		half := float32(e.Radius)
		vector.DrawFilledRect(screen, float32(e.X)-half, float32(e.Y)-half, half*2, half*2, colorShield, true)
	}
	for _, e := range s.PlayerBullets {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), colorPlayerBullet, true)
	}
	for _, e := range s.EnemyBullets {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), colorEnemyBullet, true)
	}

	text.Draw(screen, fmt.Sprintf("SCORE %d", s.Score), r.face, 10, 20, colorHUD)
	if s.GameOver {
		r.drawCentered(screen, "GAME OVER - PRESS R", CanvasHeight/2, colorGameOver)
	}
}

// drawShip draws the player as a triangle pointing up, sized by its
// collision radius.
func (r *Renderer) drawShip(screen *ebiten.Image, ship Entity) {
	x := float32(ship.X)
	y := float32(ship.Y)
	rad := float32(ship.Radius)

	var path vector.Path
	path.MoveTo(x, y-rad)
	path.LineTo(x-rad, y+rad)
	path.LineTo(x+rad, y+rad)
	path.Close()

	verts, idxs := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range verts {
		verts[i].SrcX = 1
		verts[i].SrcY = 1
		verts[i].ColorR = float32(colorShip.R) / 255
		verts[i].ColorG = float32(colorShip.G) / 255
		verts[i].ColorB = float32(colorShip.B) / 255
		verts[i].ColorA = 1
	}
	screen.DrawTriangles(verts, idxs, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawCentered draws a line of HUD text horizontally centered at baseline y.
func (r *Renderer) drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	bounds := text.BoundString(r.face, s)
	x := (int(CanvasWidth) - bounds.Dx()) / 2
	text.Draw(screen, s, r.face, x, int(y), clr)
}

var whiteImage *ebiten.Image

// whiteSubImage returns the 1x1 white source used for solid triangles.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)
}
