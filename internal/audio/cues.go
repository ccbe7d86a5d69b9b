// internal/audio/cues.go
package audio

import (
	"fmt"
	"sync"
	"time"

	"go-path-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// cue — короткий тон на событие
type cue struct {
	freq     float64
	duration time.Duration
}

var cues = map[event.EventType]cue{
	event.EnemyKilled:       {freq: 880, duration: 80 * time.Millisecond},
	event.EnemyEscaped:      {freq: 220, duration: 250 * time.Millisecond},
	event.TurretPlaced:      {freq: 660, duration: 40 * time.Millisecond},
	event.PlacementRejected: {freq: 150, duration: 120 * time.Millisecond},
}

// Cues проигрывает тоны на события симуляции. Слушатель вызывается из цикла
// симуляции, звук играет в потоке speaker.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Initialize открывает аудиоустройство. Без него OnEvent ничего не делает.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Attach подписывает Cues на все события, у которых есть тон.
func (c *Cues) Attach(d *event.Dispatcher) {
	for t := range cues {
		d.Subscribe(t, c)
	}
}

func (c *Cues) OnEvent(e event.Event) {
	cue, ok := cues[e.Type]
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	s, err := tone(cue.freq, cue.duration)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close глушит все звуки
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(d), sine), nil
}
