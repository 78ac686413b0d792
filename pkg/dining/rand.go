package dining

import (
	"math/rand"
	"sync"
	"time"
)

// DurationSource 思考/进餐时长的来源
type DurationSource interface {
	// Next 返回下一个时长
	Next() time.Duration
}

// UniformSource 在闭区间 [min, max] 上均匀取整数并乘以单位时长
//
// Thread Safety: 多个哲学家共享同一个源，内部用互斥锁保护 *rand.Rand。
type UniformSource struct {
	mu   sync.Mutex
	rng  *rand.Rand
	min  int
	max  int
	unit time.Duration
}

// NewUniformSource 创建按当前时间播种的时长源
func NewUniformSource(min, max int, unit time.Duration) *UniformSource {
	return NewSeededUniformSource(time.Now().UnixNano(), min, max, unit)
}

// NewSeededUniformSource 创建确定性种子的时长源（测试用）
func NewSeededUniformSource(seed int64, min, max int, unit time.Duration) *UniformSource {
	return &UniformSource{
		rng:  rand.New(rand.NewSource(seed)),
		min:  min,
		max:  max,
		unit: unit,
	}
}

// Next 实现 DurationSource 接口
func (s *UniformSource) Next() time.Duration {
	s.mu.Lock()
	n := s.min + s.rng.Intn(s.max-s.min+1)
	s.mu.Unlock()
	return time.Duration(n) * s.unit
}
