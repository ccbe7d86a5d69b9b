package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultScenario(t *testing.T) {
	s := DefaultScenario()
	if s.CellSize != 64 || len(s.Layout) != 8 || len(s.Layout[0]) != 10 {
		t.Errorf("grid = %v cells of %dx%d", s.CellSize, len(s.Layout), len(s.Layout[0]))
	}
	if s.Enemy.HitPoints != 100 || s.Enemy.Speed != 1.0/10000 {
		t.Errorf("enemy = %+v", s.Enemy)
	}
	if s.Bullet.Damage != 50 || s.Bullet.Lifespan != 1000 || s.Bullet.SpeedPerMs() != 0.6 {
		t.Errorf("bullet = %+v", s.Bullet)
	}
	if s.Turret.FireInterval != 1000 || s.Turret.Range != 200 {
		t.Errorf("turret = %+v", s.Turret)
	}
	if s.Spawn.Interval != 2000 {
		t.Errorf("spawn interval = %v", s.Spawn.Interval)
	}
	if len(s.Path) != 4 || s.Path[0] != (Vertex{96, -32}) {
		t.Errorf("path = %v", s.Path)
	}
}

func TestDefaultScenarioIsFreshCopy(t *testing.T) {
	a := DefaultScenario()
	a.Layout[0][0] = -1
	if b := DefaultScenario(); b.Layout[0][0] != 0 {
		t.Error("DefaultScenario shares state between calls")
	}
}

func TestValidate(t *testing.T) {
	s := DefaultScenario()
	s.Bullet.Damage = 0
	s.Spawn.Interval = -1
	err := s.Validate()
	if !errors.Is(err, ErrInvalidScenario) {
		t.Fatalf("got %v, want ErrInvalidScenario", err)
	}
}

func TestParseScenarioErrors(t *testing.T) {
	if _, err := ParseScenario([]byte("{")); err == nil {
		t.Error("broken json accepted")
	}
	if _, err := ParseScenario([]byte("{}")); !errors.Is(err, ErrInvalidScenario) {
		t.Errorf("empty scenario: got %v", err)
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	if err := os.WriteFile(path, defaultScenario, 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if s.Name != "reference" {
		t.Errorf("name = %q", s.Name)
	}
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}
