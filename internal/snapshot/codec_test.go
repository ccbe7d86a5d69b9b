package snapshot

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func sampleFrame(t float64) *Frame {
	return &Frame{
		Time: t,
		Field: Field{
			Rows:     2,
			Cols:     3,
			CellSize: 64,
			Cells:    [][]int8{{0, -1, 0}, {1, -1, 0}},
			Path:     [][2]float64{{96, -32}, {96, 164}},
		},
		Sprites: []Sprite{
			{Kind: SpriteEnemy, ID: 0, X: 96, Y: 10, HitPoints: 50},
			{Kind: SpriteTurret, ID: 0, X: 32, Y: 96, Rotation: 1.5},
			{Kind: SpriteBullet, ID: 3, X: 40, Y: 90},
		},
	}
}

func TestStreamRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for i := 0; i < 3; i++ {
		if err := w.WriteFrame(sampleFrame(float64(i * 16))); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if w.Frames() != 3 {
		t.Errorf("frames = %d", w.Frames())
	}

	r := NewReader(&buf)
	for i := 0; i < 3; i++ {
		f, err := r.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame %d: %v", i, err)
		}
		if f.Time != float64(i*16) {
			t.Errorf("frame %d time = %v", i, f.Time)
		}
		if f.Count(SpriteEnemy) != 1 || f.Sprites[0].HitPoints != 50 {
			t.Errorf("frame %d sprites = %+v", i, f.Sprites)
		}
		if f.Field.Cells[1][0] != 1 || f.Field.Path[1] != [2]float64{96, 164} {
			t.Errorf("frame %d field = %+v", i, f.Field)
		}
	}
	if _, err := r.ReadFrame(); !errors.Is(err, io.EOF) {
		t.Errorf("end of stream: got %v, want io.EOF", err)
	}
}

func TestTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteFrame(sampleFrame(1)); err != nil {
		t.Fatal(err)
	}
	w.Flush()
	data := buf.Bytes()[:buf.Len()-2]

	_, err := NewReader(bytes.NewReader(data)).ReadFrame()
	if err == nil || errors.Is(err, io.EOF) {
		t.Errorf("truncated body: got %v", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("garbage decoded")
	}
}
