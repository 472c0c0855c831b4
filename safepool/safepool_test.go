package safepool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGetCreatesDistinctValues(t *testing.T) {
	pool := NewPool(func() *bytes.Buffer { return new(bytes.Buffer) }, nil)

	a := pool.Get()
	b := pool.Get()

	assert.NotNil(t, a)
	assert.NotSame(t, a, b)
}

func TestPutResets(t *testing.T) {
	var resets int

	pool := NewPool(
		func() *bytes.Buffer { return new(bytes.Buffer) },
		func(b *bytes.Buffer) {
			resets++
			b.Reset()
		},
	)

	buf := pool.Get()
	buf.WriteString("hello")
	pool.Put(buf)

	assert.Equal(t, 1, resets)
	assert.Zero(t, buf.Len())

	pool.Put(nil)
	assert.Equal(t, 1, resets)

	// Whatever comes back, fresh or recycled, is empty.
	assert.Zero(t, pool.Get().Len())
}
