// Package dining 提供哲学家就餐问题的并发仿真实现
//
// # Overview
//
// dining 包将 N 个哲学家围成一个环，相邻哲学家共享一把叉子，
// 每个哲学家需要同时拿到左右两把叉子才能进餐。包内提供：
//   - [Philosopher]: 单个哲学家的状态机（Thinking/Hungry/Eating）
//   - [Table]: 协调者，负责构建环、启动并回收所有哲学家
//   - [DurationSource]: 思考/进餐时长的随机源
//   - [EventSink]: 事件输出接口（控制台、slog、内存）
//   - [Stats]: 运行统计
//
// # Design Philosophy
//
// 采用 Dijkstra 仲裁者方案：一把全局互斥锁（gate）串行化所有
// 状态判定，"检查前置条件并授予进餐" 是一个不可分割的操作，
// 从结构上消除了循环等待死锁：
//   - gate 只保护状态读写和授予判定，临界区短且有界
//   - gate 绝不跨越 sleep 或阻塞等待持有
//   - 思考/进餐的延时在互斥区外完全并行
//
// 核心安全不变量：环上相邻的两个哲学家不会同时处于 Eating 状态。
//
// # Event-Driven Grants
//
// 授予检查只发生在两个时刻：
//
//	takeForks    - 哲学家举手（Hungry）后立即自查一次
//	releaseForks - 放下叉子后依次复查左、右邻居
//
// 没有轮询。每次释放恰好复查可能被它阻塞的两个邻居，
// 被拒绝的请求会在某个邻居释放时被隐式重试。
//
// # Usage
//
//	table, err := dining.New(
//	    dining.WithSeats(5),
//	    dining.WithCourses(3),
//	    dining.WithSink(dining.NewConsoleSink(os.Stdout)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := table.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(table.Stats().CoursesServed)
//
// # Stop Conditions
//
// 两种停止方式，哲学家都只在 Thinking 状态检查退出条件：
//
//	Courses > 0  - 每人吃满 K 轮后自行退出（要求座位数为奇数）
//	Courses == 0 - 一直运行，直到 Run 的 context 被取消
package dining
