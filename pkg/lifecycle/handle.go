package lifecycle

import (
	"context"
	"time"
)

// Handle 是Manager分发给单个后台服务的生命周期句柄。
// 服务通过它感知停机信号，并在退出前上报自己已经关闭。
type Handle struct {
	ctx context.Context
	// Close 通知Manager本服务已经退出，应在服务Goroutine中defer调用。
	Close func()
}

// Done 返回一个channel，管理器广播停机信号时该channel会关闭。
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Err 在停机信号发出后返回取消原因，信号未发出时返回nil。
func (h *Handle) Err() error {
	return h.ctx.Err()
}

// Sleep 休眠指定时长；若期间收到停机信号则提前醒来并返回取消原因。
// 后台循环应使用它代替time.Sleep，否则停机会被阻塞一个完整周期。
func (h *Handle) Sleep(duration time.Duration) error {
	timer := time.NewTimer(duration)

	select {
	case <-h.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return h.Err()
	case <-timer.C:
		return nil
	}
}
