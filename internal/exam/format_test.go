package exam

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{61, "00:01:01"},
		{3599, "00:59:59"},
		{7200, "02:00:00"},
		{-5, "00:00:00"},
	}
	for _, tc := range tests {
		if got := FormatClock(tc.seconds); got != tc.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{125 * time.Second, "02m 05s"},
		{0, "00m 00s"},
		{9 * time.Second, "00m 09s"},
		{60 * time.Second, "01m 00s"},
		// 无小时位：溢出并入分钟
		{61 * time.Minute, "61m 00s"},
	}
	for _, tc := range tests {
		if got := FormatElapsed(tc.elapsed); got != tc.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tc.elapsed, got, tc.want)
		}
	}
}
