package dining

import (
	"sync/atomic"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════
// 运行统计
// ═══════════════════════════════════════════════════════════════════════════

// Stats 餐桌运行时统计收集器
//
// 热路径（授予判定）上只做原子自增，快照在 Snapshot 中汇总。
type Stats struct {
	coursesServed atomic.Int64
	grantsDenied  atomic.Int64
	perSeat       []atomic.Int64

	startedAt  time.Time
	finishedAt atomic.Int64 // UnixNano，0 表示尚未结束
}

// StatsSnapshot 统计快照
type StatsSnapshot struct {
	// CoursesServed 全桌完成的进餐总轮数
	CoursesServed int64
	// GrantsDenied 授予检查被拒绝的次数（诊断用）
	GrantsDenied int64
	// PerSeat 各座位完成的轮数
	PerSeat []int64
	// StartedAt 开始时间
	StartedAt time.Time
	// Elapsed 运行时长；运行中为距今时长
	Elapsed time.Duration
}

// newStats 创建统计收集器
func newStats(seats int) *Stats {
	return &Stats{
		perSeat:   make([]atomic.Int64, seats),
		startedAt: time.Now(),
	}
}

// recordServed 记录一次进餐授予
func (s *Stats) recordServed(seat int) {
	s.coursesServed.Add(1)
	s.perSeat[seat].Add(1)
}

// recordDenied 记录一次授予拒绝
func (s *Stats) recordDenied() {
	s.grantsDenied.Add(1)
}

// recordFinished 记录运行结束
func (s *Stats) recordFinished() {
	s.finishedAt.Store(time.Now().UnixNano())
}

// Snapshot 返回统计快照
func (s *Stats) Snapshot() StatsSnapshot {
	per := make([]int64, len(s.perSeat))
	for i := range s.perSeat {
		per[i] = s.perSeat[i].Load()
	}

	elapsed := time.Since(s.startedAt)
	if ns := s.finishedAt.Load(); ns != 0 {
		elapsed = time.Unix(0, ns).Sub(s.startedAt)
	}

	return StatsSnapshot{
		CoursesServed: s.coursesServed.Load(),
		GrantsDenied:  s.grantsDenied.Load(),
		PerSeat:       per,
		StartedAt:     s.startedAt,
		Elapsed:       elapsed,
	}
}
