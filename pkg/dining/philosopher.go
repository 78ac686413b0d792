package dining

import (
	"context"
	"time"
)

// Philosopher 环上的一个哲学家
//
// 左右邻居不持有指针，通过环下标在餐桌的座位表里查找，
// 避免环形引用。state 和 courses 只在持有 Table 的 gate 时读写。
type Philosopher struct {
	seat  int
	table *Table

	state   State
	courses int

	// ready 二元许可：授予 Eating 时由自己或某个邻居投递恰好
	// 一个许可，哲学家在进餐前消费恰好一个许可
	ready chan struct{}
}

// newPhilosopher 创建哲学家，邻居关系由座位表下标隐式确定
func newPhilosopher(seat int, table *Table) *Philosopher {
	return &Philosopher{
		seat:  seat,
		table: table,
		ready: make(chan struct{}, 1),
	}
}

// Seat 返回座位号
func (p *Philosopher) Seat() int {
	return p.seat
}

// State 返回当前状态（gate 串行化的快照）
func (p *Philosopher) State() State {
	p.table.gate.Lock()
	defer p.table.gate.Unlock()
	return p.state
}

// Courses 返回已完成的进餐轮数
func (p *Philosopher) Courses() int {
	p.table.gate.Lock()
	defer p.table.gate.Unlock()
	return p.courses
}

func (p *Philosopher) left() *Philosopher {
	return p.table.seats[LeftOf(p.seat, len(p.table.seats))]
}

func (p *Philosopher) right() *Philosopher {
	return p.table.seats[RightOf(p.seat, len(p.table.seats))]
}

// ============== 状态机 ==============

// run 哲学家主循环
//
// 退出条件只在 Thinking 状态检查：吃满轮数（Courses > 0），
// 或 ctx 被取消。一个吃满轮数的哲学家总是先回到 Thinking
// 才允许退出，不会带着未释放的叉子离席。
func (p *Philosopher) run(ctx context.Context) error {
	for !p.done(ctx) {
		p.think()
		p.takeForks()
		p.eat()
		p.releaseForks()
	}
	return nil
}

// done 退出条件，仅在 Thinking 状态调用
func (p *Philosopher) done(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	k := p.table.cfg.Courses
	return k > 0 && p.Courses() >= k
}

// think 思考一段随机时长，不持有任何资源，无需 gate
func (p *Philosopher) think() {
	d := p.table.source.Next()
	p.table.emit(Event{Kind: KindThinking, Seat: p.seat, Duration: d})
	time.Sleep(d)
}

// takeForks 举手要叉子
//
// gate 只保护状态变更和授予判定本身，随后立即释放；
// 对许可的阻塞等待发生在互斥区外，否则一个哲学家的等待
// 会锁死整张餐桌。
func (p *Philosopher) takeForks() {
	t := p.table

	t.gate.Lock()
	p.state = Hungry
	t.emit(Event{Kind: KindHungry, Seat: p.seat})
	t.tryEating(p)
	t.gate.Unlock()

	// 许可来自刚才的自查，或之后某个邻居的 releaseForks
	<-p.ready
}

// eat 进餐一段随机时长，逻辑上持有左右叉子，睡眠本身无需 gate
func (p *Philosopher) eat() {
	time.Sleep(p.table.source.Next())
}

// releaseForks 放下叉子并依次复查左、右邻居
//
// 先左后右是固定的平局裁决顺序。每次释放恰好复查可能被
// 本座位阻塞的两个邻居，被拒绝的请求由此被隐式重试。
func (p *Philosopher) releaseForks() {
	t := p.table

	t.gate.Lock()
	p.state = Thinking
	t.emit(Event{Kind: KindForksReleased, Seat: p.seat})
	t.tryEating(p.left())
	t.tryEating(p.right())
	t.gate.Unlock()
}

// tryEating 授予检查，只能在持有 gate 时调用，target 可以是任意座位
//
// 授予条件：target 处于 Hungry 且左右邻居都不在 Eating。
// 授予时置为 Eating、递增轮数并投递一个许可；否则不做任何
// 状态变更。判定是 (self, left, right) 状态快照的确定性函数。
func (t *Table) tryEating(target *Philosopher) {
	if target.state != Hungry {
		return
	}
	if target.left().state == Eating || target.right().state == Eating {
		t.stats.recordDenied()
		t.logger.Debug("grant denied",
			"table", t.id,
			"seat", target.seat,
			"left", target.left().state,
			"right", target.right().state)
		return
	}

	target.state = Eating
	target.courses++
	t.stats.recordServed(target.seat)
	t.emit(Event{Kind: KindEating, Seat: target.seat, Course: target.courses})

	// 每个 Hungry 周期最多授予一次，容量 1 的许可通道必然可写
	TrySend(target.ready, struct{}{})
}
