package dining

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrySend(t *testing.T) {
	ch := make(chan int, 1)

	assert.True(t, TrySend(ch, 1))
	assert.False(t, TrySend(ch, 2)) // 已满
	assert.False(t, TrySend[int](nil, 3))

	v, ok := TryRecv(ch)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTryRecv(t *testing.T) {
	ch := make(chan string, 1)

	_, ok := TryRecv(ch)
	assert.False(t, ok) // 空通道

	_, ok = TryRecv[string](nil)
	assert.False(t, ok)

	ch <- "permit"
	v, ok := TryRecv(ch)
	assert.True(t, ok)
	assert.Equal(t, "permit", v)
}
