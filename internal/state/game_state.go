// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/event"
	"go-path-defense/internal/snapshot"
	"go-path-defense/internal/ui"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Доля пути, на которую спрайт турели поворачивается к цели за кадр
const turretTurnRate = 0.35

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	renderer    *render.FieldRenderer
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	statusBar   *ui.StatusBar

	simTime       float64 // Время симуляции, мс
	lastClickTime time.Time
	frame         snapshot.Frame
	turretAngles  map[int]float64 // Отображаемый поворот турелей
}

var _ State = (*GameState)(nil)

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	s := game.Scenario
	renderer := render.NewFieldRenderer(config.ScreenWidth, config.ScreenHeight-config.HUDHeight, render.Options{
		Colors: render.FieldColors{
			Background:   config.BackgroundColor,
			BlockedCell:  config.BlockedCellColor,
			GridLine:     config.GridLineColor,
			Path:         config.PathColor,
			Enemy:        config.EnemyColor,
			Turret:       config.TurretColor,
			TurretBarrel: config.TurretBarrel,
			Bullet:       config.BulletColor,
			HealthBack:   config.HealthBackColor,
			HealthFill:   config.HealthFillColor,
		},
		Sizes: render.SpriteSizes{
			Enemy:  [2]float64{s.Enemy.Size.Width, s.Enemy.Size.Height},
			Turret: [2]float64{s.Turret.Size.Width, s.Turret.Size.Height},
			Bullet: [2]float64{s.Bullet.Size.Width, s.Bullet.Size.Height},
		},
		GridStroke:      config.GridStrokeWidth,
		PathStroke:      config.PathStrokeWidth,
		HealthBarHeight: config.HealthBarHeight,
		MaxHitPoints:    s.Enemy.HitPoints,
	})

	gs := &GameState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize,
			config.SpeedButtonColors, config.SpeedMultipliers),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize,
			config.PauseColor, config.PlayColor),
		statusBar: ui.NewStatusBar(config.ScreenHeight-config.HUDHeight, config.ScreenWidth, config.HUDHeight,
			config.HUDColor, config.TextLightColor),
		turretAngles: make(map[int]float64),
	}
	game.Events().Subscribe(event.PlacementRejected, gs)
	game.Events().Subscribe(event.TurretPlaced, gs)
	gs.frame = game.Snapshot()
	return gs
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

// OnEvent показывает в строке статуса результат последней постройки
func (g *GameState) OnEvent(e event.Event) {
	data, ok := e.Data.(event.PlacementData)
	if !ok {
		return
	}
	if data.Err != nil {
		g.statusBar.SetMessage(fmt.Sprintf("cannot build at (%d, %d): %v", data.Row, data.Col, data.Err))
		return
	}
	g.statusBar.SetMessage(fmt.Sprintf("turret #%d at (%d, %d)", data.Turret, data.Row, data.Col))
}

// Update получает шаг в секундах от хоста
func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(g.lastClickTime) >= config.ClickDebounceTime*time.Millisecond {
		g.lastClickTime = time.Now()
		x, y := ebiten.CursorPosition()
		if g.handleUIClick(float32(x), float32(y)) {
			return
		}
		if y < config.ScreenHeight-config.HUDHeight {
			// Ошибку увидит слушатель PlacementRejected
			_, _ = g.game.RequestPlacement(float64(x), float64(y))
		}
	}

	dt := deltaTime * 1000 * g.speedButton.Multiplier()
	g.simTime += dt
	g.game.Tick(g.simTime, dt)
	g.frame = g.game.Snapshot()
	g.smoothTurrets()
}

// handleUIClick возвращает true, если клик попал в кнопку
func (g *GameState) handleUIClick(x, y float32) bool {
	switch {
	case g.speedButton.IsClicked(x, y):
		g.speedButton.ToggleState()
		return true
	case g.pauseButton.IsClicked(x, y):
		g.pause()
		return true
	}
	return false
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// smoothTurrets поворачивает спрайты турелей к углу из кадра постепенно
func (g *GameState) smoothTurrets() {
	for i := range g.frame.Sprites {
		s := &g.frame.Sprites[i]
		if s.Kind != snapshot.SpriteTurret {
			continue
		}
		shown, ok := g.turretAngles[s.ID]
		if !ok {
			shown = s.Rotation
		}
		shown = utils.LerpAngle(shown, s.Rotation, turretTurnRate)
		g.turretAngles[s.ID] = shown
		s.Rotation = shown
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.frame)
	g.statusBar.Draw(screen, ui.Line(g.simTime, g.game.Stats(),
		g.frame.Count(snapshot.SpriteEnemy), g.frame.Count(snapshot.SpriteBullet), g.speedButton.Multiplier()))
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	// Debug text
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()), config.ScreenWidth-64, 0)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
