package dining

import (
	"log/slog"
	"time"
)

// State 哲学家状态
// 只能在持有 Table.gate 的情况下读写
type State int32

const (
	// Thinking 思考中（初始状态，不持有任何叉子）
	Thinking State = iota
	// Hungry 饥饿，已举手等待叉子
	Hungry
	// Eating 进餐中（逻辑上持有左右两把叉子）
	Eating
)

// String 返回状态的字符串表示
func (s State) String() string {
	switch s {
	case Thinking:
		return "thinking"
	case Hungry:
		return "hungry"
	case Eating:
		return "eating"
	default:
		return "unknown"
	}
}

// Config 餐桌配置
type Config struct {
	// Seats 座位数（环的大小），最小 3
	Seats int
	// Courses 每个哲学家的进餐轮数
	// 0 表示一直运行，直到 Run 的 context 被取消
	// 大于 0 时要求 Seats 为奇数
	Courses int
	// MinDelay/MaxDelay 思考与进餐时长的闭区间（以 Unit 为单位）
	MinDelay int
	MaxDelay int
	// Unit 时长单位
	Unit time.Duration
	// Seed 随机种子，0 表示按当前时间播种
	Seed int64
	// Logger 自定义日志器，nil 则使用 slog.Default()
	Logger *slog.Logger
	// Sink 事件输出，nil 则不输出事件
	Sink EventSink
	// Source 自定义时长源，优先于 MinDelay/MaxDelay/Unit/Seed
	Source DurationSource
}

// DefaultConfig 默认配置：5 个哲学家，各吃 3 轮，时长 2..5 个 100ms
func DefaultConfig() *Config {
	return &Config{
		Seats:    5,
		Courses:  3,
		MinDelay: 2,
		MaxDelay: 5,
		Unit:     100 * time.Millisecond,
	}
}

// Option Table 配置选项
type Option func(*Config)

// WithSeats 设置座位数
func WithSeats(n int) Option {
	return func(c *Config) {
		c.Seats = n
	}
}

// WithCourses 设置每人的进餐轮数，0 表示无限运行
func WithCourses(k int) Option {
	return func(c *Config) {
		c.Courses = k
	}
}

// WithDelayRange 设置思考/进餐时长区间（闭区间，以 unit 为单位）
func WithDelayRange(min, max int, unit time.Duration) Option {
	return func(c *Config) {
		c.MinDelay = min
		c.MaxDelay = max
		c.Unit = unit
	}
}

// WithSeed 设置确定性随机种子
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithLogger 设置日志器
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithSink 设置事件输出
func WithSink(sink EventSink) Option {
	return func(c *Config) {
		c.Sink = sink
	}
}

// WithSource 设置自定义时长源（测试用）
func WithSource(src DurationSource) Option {
	return func(c *Config) {
		c.Source = src
	}
}
