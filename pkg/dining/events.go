package dining

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// ============== 事件类型 ==============

// 事件种类标识，用于路由和监控
const (
	KindThinking      = "dining.thinking"
	KindHungry        = "dining.hungry"
	KindEating        = "dining.eating"
	KindForksReleased = "dining.forks_released"
	KindDone          = "dining.done"
)

// Event 餐桌事件
//
// Hungry/Eating/ForksReleased 事件在持有 gate 时发出，
// 因此 MemorySink 记录的事件序列是状态变更的全序，
// 可以直接用于相邻进餐不变量的轨迹检查。
type Event struct {
	// Kind 事件种类（Kind* 常量之一）
	Kind string
	// Seat 座位号；KindDone 事件为 -1
	Seat int
	// Course 本次进餐的轮次，仅 KindEating 有效
	Course int
	// Duration 本次思考的时长，仅 KindThinking 有效
	Duration time.Duration
	// At 事件发生时间
	At time.Time
}

// String 返回单行人类可读的事件描述
func (e Event) String() string {
	switch e.Kind {
	case KindThinking:
		return fmt.Sprintf("philosopher %d is thinking for %v", e.Seat, e.Duration)
	case KindHungry:
		return fmt.Sprintf("philosopher %d is hungry", e.Seat)
	case KindEating:
		return fmt.Sprintf("philosopher %d is eating course %d", e.Seat, e.Course)
	case KindForksReleased:
		return fmt.Sprintf("philosopher %d put down the forks", e.Seat)
	case KindDone:
		return "all philosophers are done"
	default:
		return fmt.Sprintf("philosopher %d: %s", e.Seat, e.Kind)
	}
}

// EventSink 事件输出接口
//
// Emit 可能在持有 gate 时被调用，实现必须快速返回，
// 不得阻塞在 I/O 或其他锁上超过常数时间。
type EventSink interface {
	Emit(e Event)
}

// ============== 控制台输出 ==============

// ConsoleSink 人类可读的单行事件输出
//
// 每个事件恰好一次 Write，由互斥锁串行化，
// 并发写入者不会产生交错的半行。
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink 创建控制台输出
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

// Emit 实现 EventSink 接口
func (s *ConsoleSink) Emit(e Event) {
	line := []byte(e.String() + "\n")
	s.mu.Lock()
	_, _ = s.w.Write(line)
	s.mu.Unlock()
}

// ============== 结构化日志输出 ==============

// SlogSink 通过 log/slog 输出结构化事件
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink 创建 slog 输出，logger 为 nil 时使用 slog.Default()
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Emit 实现 EventSink 接口
func (s *SlogSink) Emit(e Event) {
	switch e.Kind {
	case KindThinking:
		s.logger.Info(e.Kind, "seat", e.Seat, "duration", e.Duration)
	case KindEating:
		s.logger.Info(e.Kind, "seat", e.Seat, "course", e.Course)
	case KindDone:
		s.logger.Info(e.Kind)
	default:
		s.logger.Info(e.Kind, "seat", e.Seat)
	}
}

// ============== 内存记录 ==============

// MemorySink 把事件记录在内存里，供测试和轨迹检查使用
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink 创建内存记录
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Emit 实现 EventSink 接口
func (s *MemorySink) Emit(e Event) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

// Events 返回已记录事件的快照
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Count 返回指定种类的事件数，kind 为空串时返回全部事件数
func (s *MemorySink) Count(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kind == "" {
		return len(s.events)
	}
	n := 0
	for _, e := range s.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// ============== 组合输出 ==============

// MultiSink 把事件扇出到多个 sink
type MultiSink struct {
	sinks []EventSink
}

// NewMultiSink 创建扇出 sink，nil 成员会被忽略
func NewMultiSink(sinks ...EventSink) *MultiSink {
	m := &MultiSink{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Emit 实现 EventSink 接口
func (m *MultiSink) Emit(e Event) {
	for _, s := range m.sinks {
		s.Emit(e)
	}
}
