package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"invaders/game"
)

func main() {
	config := game.DefaultConfig()

	if err := game.InitAudio(); err != nil {
		log.Printf("audio unavailable: %v", err)
		config.Mute = true
	}

	g := game.NewGame(config)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
