// internal/ui/status_bar.go
package ui

import (
	"fmt"
	"image/color"

	"go-path-defense/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// StatusBar — строка состояния под полем: время, счётчики, последнее сообщение.
type StatusBar struct {
	Y, Height  float32
	Width      float32
	Background color.Color
	TextColor  color.Color
	fontFace   font.Face
	message    string
}

func NewStatusBar(y, width, height float32, background, textColor color.Color) *StatusBar {
	return &StatusBar{
		Y:          y,
		Width:      width,
		Height:     height,
		Background: background,
		TextColor:  textColor,
		fontFace:   basicfont.Face7x13,
	}
}

// SetMessage задаёт короткое сообщение (например, причину отказа в постройке).
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// Line форматирует строку статуса; вынесено отдельно для тестов.
func Line(gameTime float64, stats app.Stats, enemies, bullets int, speed float64) string {
	return fmt.Sprintf("t=%.1fs x%g  enemies:%d bullets:%d turrets:%d  kills:%d escaped:%d",
		gameTime/1000, speed, enemies, bullets, stats.Turrets, stats.Kills, stats.Escapes)
}

func (s *StatusBar) Draw(screen *ebiten.Image, line string) {
	vector.DrawFilledRect(screen, 0, s.Y, s.Width, s.Height, s.Background, false)
	text.Draw(screen, line, s.fontFace, 8, int(s.Y)+13, s.TextColor)
	if s.message != "" {
		text.Draw(screen, s.message, s.fontFace, 8, int(s.Y)+27, s.TextColor)
	}
}
