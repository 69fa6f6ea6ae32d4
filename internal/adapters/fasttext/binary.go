package fasttext

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// fastText writes native little-endian values with no framing
// binReader keeps the first error so decoders can read a whole struct and check once
type binReader struct {
	r   *bufio.Reader
	buf [8]byte
	err error
}

func newBinReader(r io.Reader) *binReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &binReader{r: br}
	}
	return &binReader{r: bufio.NewReaderSize(r, 1<<16)}
}

func (b *binReader) fill(n int) []byte {
	if b.err != nil {
		return nil
	}
	if _, err := io.ReadFull(b.r, b.buf[:n]); err != nil {
		b.err = unexpected(err)
		return nil
	}
	return b.buf[:n]
}

func (b *binReader) i32() int32 {
	p := b.fill(4)
	if p == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(p))
}

func (b *binReader) i64() int64 {
	p := b.fill(8)
	if p == nil {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(p))
}

func (b *binReader) f64() float64 {
	p := b.fill(8)
	if p == nil {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(p))
}

func (b *binReader) u8() uint8 {
	p := b.fill(1)
	if p == nil {
		return 0
	}
	return p[0]
}

func (b *binReader) boolean() bool { return b.u8() != 0 }

// cstring reads a NUL terminated string
func (b *binReader) cstring() string {
	if b.err != nil {
		return ""
	}
	s, err := b.r.ReadString(0)
	if err != nil {
		b.err = unexpected(err)
		return ""
	}
	return s[:len(s)-1]
}

func (b *binReader) bytes(n int64) []byte {
	if b.err != nil {
		return nil
	}
	if n < 0 || n > maxElems {
		b.err = fmt.Errorf("%w: byte block of %d", ErrFormat, n)
		return nil
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(b.r, out); err != nil {
		b.err = unexpected(err)
		return nil
	}
	return out
}

func (b *binReader) f32s(n int64) []float32 {
	raw := b.bytes(n * 4)
	if raw == nil {
		return nil
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out
}

func unexpected(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %w", ErrFormat, err)
}
