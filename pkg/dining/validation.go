package dining

import "fmt"

// MinSeats 最小座位数
// 少于 3 个座位时 "左右邻居" 会退化（两人共享两把叉子）
const MinSeats = 3

// Validate 校验配置
//
// 规则：
//   - Seats >= MinSeats
//   - Courses >= 0；Courses > 0 时 Seats 必须为奇数
//     （偶数环上有限轮次的公平性论证不成立）
//   - 0 <= MinDelay <= MaxDelay
//   - 未提供自定义 Source 时 Unit > 0
func (c *Config) Validate() error {
	if c.Seats < MinSeats {
		return fmt.Errorf("seats %d is below the minimum %d", c.Seats, MinSeats)
	}
	if c.Courses < 0 {
		return fmt.Errorf("courses %d cannot be negative", c.Courses)
	}
	if c.Courses > 0 && c.Seats%2 == 0 {
		return fmt.Errorf("bounded run requires an odd number of seats, got %d", c.Seats)
	}
	if c.MinDelay < 0 {
		return fmt.Errorf("min delay %d cannot be negative", c.MinDelay)
	}
	if c.MaxDelay < c.MinDelay {
		return fmt.Errorf("max delay %d is below min delay %d", c.MaxDelay, c.MinDelay)
	}
	if c.Source == nil && c.Unit <= 0 {
		return fmt.Errorf("delay unit %v must be positive", c.Unit)
	}
	return nil
}
