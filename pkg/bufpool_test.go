package pkg

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("returns rendered bytes", func(t *testing.T) {
		out, err := Render(DefaultBufferPool, func(b Buffer) error {
			_, err := b.WriteString("foo proxy_foo\n")
			return err
		})
		require.NoError(t, err)
		require.Equal(t, "foo proxy_foo\n", string(out))
	})

	t.Run("result survives buffer reuse", func(t *testing.T) {
		first, err := Render(DefaultBufferPool, func(b Buffer) error {
			_, err := b.WriteString("first")
			return err
		})
		require.NoError(t, err)

		_, err = Render(DefaultBufferPool, func(b Buffer) error {
			_, err := b.WriteString("second-and-longer")
			return err
		})
		require.NoError(t, err)

		require.Equal(t, "first", string(first))
	})

	t.Run("propagates callback error", func(t *testing.T) {
		boom := errors.New("boom")
		out, err := Render(DefaultBufferPool, func(b Buffer) error {
			_ = b.WriteByte('x')
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.Nil(t, out)
	})

	t.Run("pooled buffers start empty", func(t *testing.T) {
		buf := DefaultBufferPool.Get()
		_, _ = buf.WriteString("dirty")
		DefaultBufferPool.Put(buf)

		again := DefaultBufferPool.Get()
		defer DefaultBufferPool.Put(again)
		require.Equal(t, 0, again.Len())
	})
}

func TestRender_Concurrent(t *testing.T) {
	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			want := string(rune('a' + i))
			out, err := Render(DefaultBufferPool, func(b Buffer) error {
				_, err := b.WriteString(want)
				return err
			})
			if err != nil || string(out) != want {
				t.Errorf("Render() = %q, %v; want %q", out, err, want)
			}
		}()
	}

	wg.Wait()
}
