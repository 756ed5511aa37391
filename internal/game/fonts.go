package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/tsukuyomi/internal/animator"
)

// fontBook maps overlay fonts to ebiten faces. Every family resolves to the
// Go fonts; only size and weight are honoured.
type fontBook struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[animator.Font]*text.GoTextFace
}

func newFontBook() (*fontBook, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &fontBook{
		regular: regular,
		bold:    bold,
		faces:   map[animator.Font]*text.GoTextFace{},
	}, nil
}

func (b *fontBook) face(f animator.Font) *text.GoTextFace {
	if face, ok := b.faces[f]; ok {
		return face
	}
	src := b.regular
	if f.Bold {
		src = b.bold
	}
	face := &text.GoTextFace{
		Source:    src,
		Size:      f.Size,
		Direction: text.DirectionLeftToRight,
	}
	b.faces[f] = face
	return face
}
