package dining

// LeftOf 返回环上座位 seat 的左邻座位号
func LeftOf(seat, n int) int {
	return (seat + n - 1) % n
}

// RightOf 返回环上座位 seat 的右邻座位号
func RightOf(seat, n int) int {
	return (seat + 1) % n
}

// Neighbors 返回座位 seat 的左右邻居座位号
func Neighbors(seat, n int) (left, right int) {
	return LeftOf(seat, n), RightOf(seat, n)
}
