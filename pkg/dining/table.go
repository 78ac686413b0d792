package dining

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Table 餐桌，哲学家仿真的协调者
//
// 负责构建 N 个哲学家、按环拓扑接线、为每个座位启动一个
// goroutine、释放启动屏障、回收完成信号并汇合所有 goroutine。
type Table struct {
	id     string
	cfg    *Config
	logger *slog.Logger
	sink   EventSink
	source DurationSource

	// gate 全局仲裁锁（Dijkstra 方案）：串行化所有座位的状态
	// 读写与授予判定。只在短临界区内持有，绝不跨越 sleep 或
	// 阻塞等待。
	gate  sync.Mutex
	seats []*Philosopher

	// start 一次性启动屏障，close 后所有哲学家同时开始
	start chan struct{}
	// finished 完成计数：每个哲学家退出时投递一次自己的座位号
	finished chan int

	served atomic.Bool
	stats  *Stats
}

// New 创建餐桌
func New(opts ...Option) (*Table, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig 使用配置创建餐桌
func NewWithConfig(cfg *Config) (*Table, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table config: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	source := cfg.Source
	if source == nil {
		if cfg.Seed != 0 {
			source = NewSeededUniformSource(cfg.Seed, cfg.MinDelay, cfg.MaxDelay, cfg.Unit)
		} else {
			source = NewUniformSource(cfg.MinDelay, cfg.MaxDelay, cfg.Unit)
		}
	}

	t := &Table{
		id:       uuid.NewString(),
		cfg:      cfg,
		logger:   logger,
		sink:     cfg.Sink,
		source:   source,
		start:    make(chan struct{}),
		finished: make(chan int, cfg.Seats),
		stats:    newStats(cfg.Seats),
	}

	// 先建满所有座位，邻居引用由环下标隐式确定
	t.seats = make([]*Philosopher, cfg.Seats)
	for i := range t.seats {
		t.seats[i] = newPhilosopher(i, t)
	}

	return t, nil
}

// ID 返回本场晚宴的运行标识
func (t *Table) ID() string {
	return t.id
}

// Seats 返回座位数
func (t *Table) Seats() int {
	return len(t.seats)
}

// Philosopher 返回指定座位的哲学家
func (t *Table) Philosopher(seat int) (*Philosopher, bool) {
	if seat < 0 || seat >= len(t.seats) {
		return nil, false
	}
	return t.seats[seat], true
}

// States 返回全桌状态的 gate 串行化快照
func (t *Table) States() []State {
	t.gate.Lock()
	defer t.gate.Unlock()

	out := make([]State, len(t.seats))
	for i, p := range t.seats {
		out[i] = p.state
	}
	return out
}

// Stats 返回运行统计快照
func (t *Table) Stats() StatsSnapshot {
	return t.stats.Snapshot()
}

// Run 运行一场晚宴直到所有哲学家离席
//
// Courses > 0 时每个哲学家吃满轮数后自行退出；Courses == 0 时
// 一直运行，直到 ctx 取消后各哲学家在 Thinking 状态协作式退出。
// 一张 Table 只能 Run 一次。
func (t *Table) Run(ctx context.Context) error {
	if !t.served.CompareAndSwap(false, true) {
		return fmt.Errorf("table %s has already been served", t.id)
	}
	if err := t.checkWiring(); err != nil {
		return fmt.Errorf("table startup failed: %w", err)
	}

	t.logger.Info("dinner started",
		"table", t.id,
		"seats", len(t.seats),
		"courses", t.cfg.Courses)

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range t.seats {
		p := p
		g.Go(func() error {
			// 所有哲学家先在启动屏障上集合，消除启动顺序偏差
			<-t.start
			defer func() { t.finished <- p.seat }()
			return p.run(gctx)
		})
	}

	close(t.start)

	// 逐席回收完成信号，退出只会发生在 Thinking 状态
	for range t.seats {
		seat := <-t.finished
		t.logger.Debug("philosopher left the table", "table", t.id, "seat", seat)
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("dinner aborted: %w", err)
	}

	t.stats.recordFinished()
	t.emit(Event{Kind: KindDone, Seat: -1})
	t.logger.Info("dinner finished",
		"table", t.id,
		"courses_served", t.stats.Snapshot().CoursesServed,
		"elapsed", t.stats.Snapshot().Elapsed)
	return nil
}

// checkWiring 启动前校验所有座位已接线
//
// goroutine 的创建本身不会失败，这里等价的失败类别是
// 未接线或接错线的席位（手工构造的 Table）。带座位号报错。
func (t *Table) checkWiring() error {
	if len(t.seats) < MinSeats {
		return fmt.Errorf("table has %d seats, need at least %d", len(t.seats), MinSeats)
	}
	for i, p := range t.seats {
		if p == nil || p.ready == nil || p.table != t || p.seat != i {
			return fmt.Errorf("seat %d is not wired", i)
		}
	}
	return nil
}

// emit 发出事件，sink 为 nil 时丢弃
func (t *Table) emit(e Event) {
	if t.sink == nil {
		return
	}
	e.At = time.Now()
	t.sink.Emit(e)
}
