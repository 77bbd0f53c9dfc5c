// Package pkg provides small utilities shared by the cmock packages.
package pkg

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer is the subset of [bytebufferpool.ByteBuffer] the renderers rely on.
type Buffer interface {
	io.Writer
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	Len() int
	Reset()
}

// BufferPool hands out reusable byte buffers.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type BufferPool interface {
	Get() Buffer
	Put(b Buffer)
}

type bufferPool struct{ p *bytebufferpool.Pool }

// Get returns an empty buffer from the pool.
func (p *bufferPool) Get() Buffer { return p.p.Get() }

// Put resets the buffer and returns it to the pool.
func (p *bufferPool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		buf.Reset()
		p.p.Put(buf)
	}
}

// DefaultBufferPool is shared by the rename-map and proxy renderers.
var DefaultBufferPool BufferPool = &bufferPool{p: new(bytebufferpool.Pool)}

// Render fills a pooled buffer with fn and returns a copy of the result.
// The buffer goes back to the pool on every path.
func Render(pool BufferPool, fn func(Buffer) error) ([]byte, error) {
	buf := pool.Get()
	defer pool.Put(buf)

	if err := fn(buf); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
