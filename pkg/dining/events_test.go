package dining

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventString(t *testing.T) {
	cases := []struct {
		name  string
		event Event
		want  string
	}{
		{"thinking", Event{Kind: KindThinking, Seat: 3, Duration: 400 * time.Millisecond}, "philosopher 3 is thinking for 400ms"},
		{"hungry", Event{Kind: KindHungry, Seat: 0}, "philosopher 0 is hungry"},
		{"eating", Event{Kind: KindEating, Seat: 2, Course: 2}, "philosopher 2 is eating course 2"},
		{"released", Event{Kind: KindForksReleased, Seat: 4}, "philosopher 4 put down the forks"},
		{"done", Event{Kind: KindDone, Seat: -1}, "all philosophers are done"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.event.String())
		})
	}
}

func TestConsoleSinkAtomicLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf)

	// 并发写入者不会产生交错的半行
	const writers = 20
	const perWriter = 100

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(seat int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				sink.Emit(Event{Kind: KindHungry, Seat: seat})
			}
		}(w)
	}
	wg.Wait()

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, writers*perWriter)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "philosopher "), "malformed line: %q", line)
		assert.True(t, strings.HasSuffix(line, " is hungry"), "malformed line: %q", line)
	}
}

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()
	sink.Emit(Event{Kind: KindHungry, Seat: 1})
	sink.Emit(Event{Kind: KindEating, Seat: 1, Course: 1})
	sink.Emit(Event{Kind: KindForksReleased, Seat: 1})

	assert.Equal(t, 3, sink.Count(""))
	assert.Equal(t, 1, sink.Count(KindEating))
	assert.Equal(t, 0, sink.Count(KindDone))

	// Events 返回快照，追加新事件不影响已取出的切片
	snap := sink.Events()
	sink.Emit(Event{Kind: KindDone, Seat: -1})
	assert.Len(t, snap, 3)
	assert.Len(t, sink.Events(), 4)
}

func TestMultiSink(t *testing.T) {
	a := NewMemorySink()
	b := NewMemorySink()
	m := NewMultiSink(a, nil, b)

	m.Emit(Event{Kind: KindHungry, Seat: 0})

	assert.Equal(t, 1, a.Count(""))
	assert.Equal(t, 1, b.Count(""))
}
