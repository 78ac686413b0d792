package dining

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsCollector(t *testing.T) {
	s := newStats(5)

	s.recordServed(0)
	s.recordServed(0)
	s.recordServed(3)
	s.recordDenied()

	snap := s.Snapshot()
	assert.Equal(t, int64(3), snap.CoursesServed)
	assert.Equal(t, int64(1), snap.GrantsDenied)
	assert.Equal(t, []int64{2, 0, 0, 1, 0}, snap.PerSeat)
	assert.False(t, snap.StartedAt.IsZero())
}

func TestStatsSnapshotIsCopy(t *testing.T) {
	s := newStats(3)
	s.recordServed(1)

	snap := s.Snapshot()
	s.recordServed(1)

	// 快照不随后续记录变化
	assert.Equal(t, int64(1), snap.CoursesServed)
	assert.Equal(t, int64(1), snap.PerSeat[1])
	assert.Equal(t, int64(2), s.Snapshot().CoursesServed)
}
