// internal/snapshot/codec.go
package snapshot

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// MaxFrameSize ограничивает размер одного кадра при чтении потока.
const MaxFrameSize = 16 << 20

// Encode кодирует кадр в msgpack.
func Encode(f *Frame) ([]byte, error) {
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return data, nil
}

// Decode разбирает кадр из msgpack.
func Decode(data []byte) (*Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}
	return &f, nil
}

// Writer пишет поток кадров: 4 байта длины (big-endian), затем тело в msgpack.
type Writer struct {
	w      *bufio.Writer
	header [4]byte
	frames int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) WriteFrame(f *Frame) error {
	data, err := Encode(f)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(w.header[:], uint32(len(data)))
	if _, err := w.w.Write(w.header[:]); err != nil {
		return fmt.Errorf("failed to write frame header: %w", err)
	}
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("failed to write frame body: %w", err)
	}
	w.frames++
	return nil
}

// Frames — сколько кадров записано
func (w *Writer) Frames() int { return w.frames }

// Flush сбрасывает буфер в нижележащий writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Reader читает поток, записанный Writer.
type Reader struct {
	r      *bufio.Reader
	header [4]byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadFrame возвращает io.EOF, когда поток закончился ровно на границе кадра.
func (r *Reader) ReadFrame() (*Frame, error) {
	if _, err := io.ReadFull(r.r, r.header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read frame header: %w", err)
	}
	size := binary.BigEndian.Uint32(r.header[:])
	if size > MaxFrameSize {
		return nil, fmt.Errorf("frame of %d bytes exceeds limit", size)
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r.r, data); err != nil {
		return nil, fmt.Errorf("failed to read frame body: %w", err)
	}
	return Decode(data)
}
