package exam

import (
	"fmt"
	"time"
)

// FormatClock 渲染剩余时间为 HH:MM:SS（补零）。
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatElapsed 渲染答题耗时为 MMm SSs（补零，无小时位；
// 超过一小时的部分并入分钟）。
func FormatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02dm %02ds", total/60, total%60)
}
