// Package game hosts the animator in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/tsukuyomi/internal/animator"
	"github.com/iburimskiy/tsukuyomi/internal/config"
	"github.com/iburimskiy/tsukuyomi/internal/drone"
	"github.com/iburimskiy/tsukuyomi/internal/schedule"
)

type Game struct {
	clock animator.Clock
	list  *animator.DisplayList
	fonts *fontBook

	anim  *animator.Animator
	queue *schedule.Queue
	task  *schedule.Repeating

	player *drone.Player

	closed bool
}

// New builds the window contents and draws the first frame. Any error means
// the animation never started.
func New(clock animator.Clock) (*Game, error) {
	if clock == nil {
		return nil, errors.New("game: nil clock")
	}
	fonts, err := newFontBook()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		clock: clock,
		list:  animator.NewDisplayList(),
		fonts: fonts,
	}
	g.anim, err = animator.New(g.list, g, clock)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.queue = schedule.NewQueue(clock.Now)
	g.task = schedule.NewRepeating(g.queue, schedule.Interval(config.FPS), g.anim.OnTick, g.anim.Running)

	if config.DroneEnabled {
		g.startDrone()
	}

	log.Printf("canvas %dx%d, %d spokes at %d fps", config.WindowWidth, config.WindowHeight, config.SpokeCount, config.FPS)
	g.task.Start()
	return g, nil
}

func (g *Game) startDrone() {
	d := drone.New(beep.SampleRate(config.DroneSampleRate), config.DroneBaseHz, config.DroneVolume)
	p := drone.NewPlayer(d)
	if err := p.Start(); err != nil {
		log.Printf("audio disabled: %v", err)
		return
	}
	g.player = p
	g.anim.OnFrame(func(f animator.Frame) {
		d.SetLevel(f.Puls)
	})
}

// Close tears the window down. The animator calls it from Stop.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.task.Stop()
	if g.player != nil {
		g.player.Stop()
	}
	log.Printf("stopped after %d frames (%s)", g.anim.Frames(), formatDuration(g.anim.Elapsed()))
}

func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		g.anim.Stop()
	}
	g.queue.Run(g.clock.Now())
	if g.closed {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.list.Each(func(c animator.Command) {
		switch c.Kind {
		case animator.KindLine:
			vector.StrokeLine(screen, float32(c.X1), float32(c.Y1), float32(c.X2), float32(c.Y2), float32(c.Width), c.Color, true)
		case animator.KindCircle:
			vector.StrokeCircle(screen, float32(c.X1), float32(c.Y1), float32(c.Radius), float32(c.Width), c.Color, true)
		case animator.KindDisc:
			vector.DrawFilledCircle(screen, float32(c.X1), float32(c.Y1), float32(c.Radius), c.Color, true)
		case animator.KindText:
			g.drawText(screen, c)
		}
	})
}

func (g *Game) drawText(screen *ebiten.Image, c animator.Command) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(c.X1, c.Y1)
	op.ColorScale.ScaleWithColor(c.Color)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, c.Text, g.fonts.face(c.Font), op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
