package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/tsukuyomi/internal/animator"
	"github.com/iburimskiy/tsukuyomi/internal/config"
	"github.com/iburimskiy/tsukuyomi/internal/game"
)

func main() {
	log.SetPrefix("tsukuyomi: ")
	log.SetFlags(log.LstdFlags)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.HostTPS)
	ebiten.SetWindowClosingHandled(true)

	g, err := game.New(animator.SystemClock{})
	if err != nil {
		fail(err)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fail(err)
	}
}

// fail reports a startup or host error in a native dialog and exits.
func fail(err error) {
	log.Printf("fatal: %v", err)
	if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
		log.Printf("error dialog: %v", derr)
	}
	os.Exit(1)
}
