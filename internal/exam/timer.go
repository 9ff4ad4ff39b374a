package exam

import (
	"sync"
	"time"
)

// Countdown 整场测验共用的倒计时。每秒递减一次；归零时恰好触发一次
// onExpire，然后自行停止。Stop 幂等，随时可调用以取消后续触发
// （手动交卷或会话销毁时必须调用，防止迟到的自动交卷）。
type Countdown struct {
	mu        sync.Mutex
	total     int
	remaining int
	expired   bool
	onExpire  func()

	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewCountdown(totalSeconds int, onExpire func()) *Countdown {
	return &Countdown{
		total:     totalSeconds,
		remaining: totalSeconds,
		onExpire:  onExpire,
		stopCh:    make(chan struct{}),
	}
}

// Start 启动每秒一次的后台走表。Stop 后退出。
func (c *Countdown) Start() {
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-c.stopCh:
				return
			case <-ticker.C:
				if c.Tick() == 0 {
					return
				}
			}
		}
	}()
}

// Tick 递减一秒并返回剩余秒数。归零的那一次在锁外调用 onExpire，
// 之后不再递减。
func (c *Countdown) Tick() int {
	c.mu.Lock()
	if c.expired || c.remaining == 0 {
		c.mu.Unlock()
		return 0
	}
	c.remaining--
	fire := c.remaining == 0
	if fire {
		c.expired = true
	}
	c.mu.Unlock()

	if fire {
		c.Stop()
		if c.onExpire != nil {
			c.onExpire()
		}
		return 0
	}
	return c.Remaining()
}

// Stop 取消后续所有触发。可重复调用。
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// PercentRemaining 进度环展示用：剩余时间占总时长的百分比。
func (c *Countdown) PercentRemaining() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.total == 0 {
		return 0
	}
	return float64(c.remaining) / float64(c.total) * 100
}
