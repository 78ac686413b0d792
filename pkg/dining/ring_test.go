package dining

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborsFive(t *testing.T) {
	// N=5 时 0 号的邻居是 {4, 1}
	left, right := Neighbors(0, 5)
	assert.Equal(t, 4, left)
	assert.Equal(t, 1, right)
}

func TestRingMath(t *testing.T) {
	cases := []struct {
		name        string
		seat, n     int
		left, right int
	}{
		{"first seat", 0, 5, 4, 1},
		{"middle seat", 2, 5, 1, 3},
		{"last seat", 4, 5, 3, 0},
		{"minimum ring", 0, 3, 2, 1},
		{"minimum ring last", 2, 3, 1, 0},
		{"large ring", 24, 25, 23, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.left, LeftOf(c.seat, c.n))
			assert.Equal(t, c.right, RightOf(c.seat, c.n))
		})
	}
}

func TestRingIsUndirectedCycle(t *testing.T) {
	// 任意座位 i：左邻的右邻是自己，右邻的左邻也是自己
	for n := 3; n <= 25; n += 2 {
		for i := 0; i < n; i++ {
			assert.Equal(t, i, RightOf(LeftOf(i, n), n))
			assert.Equal(t, i, LeftOf(RightOf(i, n), n))
		}
	}
}
