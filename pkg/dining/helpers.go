package dining

// ═══════════════════════════════════════════════════════════════════════════
// 通道工具函数
// ═══════════════════════════════════════════════════════════════════════════

// TrySend 尝试非阻塞发送到通道
// 如果通道为 nil 或已满，返回 false
func TrySend[T any](ch chan<- T, value T) bool {
	if ch == nil {
		return false
	}
	select {
	case ch <- value:
		return true
	default:
		return false
	}
}

// TryRecv 尝试非阻塞接收
// 如果通道为 nil 或为空，返回零值和 false
func TryRecv[T any](ch <-chan T) (T, bool) {
	var zero T
	if ch == nil {
		return zero, false
	}
	select {
	case v := <-ch:
		return v, true
	default:
		return zero, false
	}
}
