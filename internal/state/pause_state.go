// internal/state/pause_state.go
package state

import (
	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: время не идёт, Tick не вызывается.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
	fontFace     font.Face
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{
		stateMachine: sm,
		game:         game,
		fontFace:     basicfont.Face7x13,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.game.pauseButton.IsClicked(float32(x), float32(y)) {
			unpause = true
		}
	}

	if unpause {
		s.game.pauseButton.TogglePause()
		s.stateMachine.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight-config.HUDHeight, config.OverlayColor, false)

	const pauseText = "PAUSED"
	bounds := text.BoundString(s.fontFace, pauseText)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := (config.ScreenHeight - config.HUDHeight) / 2
	text.Draw(screen, pauseText, s.fontFace, x, y, config.TextLightColor)
}

func (s *PauseState) Exit() {}
