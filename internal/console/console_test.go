package console_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"zctadb/internal/console"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestHMS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{-time.Second, "00:00:00"},
		{59*time.Second + 900*time.Millisecond, "00:00:59"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
		{100 * time.Hour, "100:00:00"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, console.HMS(tt.in))
	}
}

func TestClockAndSeconds(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 7, 25, 9, 5, 7, 123456789, time.UTC)
	require.Equal(t, "09:05:07:12", console.Clock(ts))
	require.Len(t, console.Clock(ts), console.ValueWidth)
	require.Equal(t, "03.50", console.Seconds(3500*time.Millisecond))
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := console.New(&buf)

	p.Active("Shape File:", "zcta.shp")
	p.Done("Total Rows:", "42")
	p.Line(true, "Rows Exported:", "7", "Time Remaining:", "00:00:01")
	p.End()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Shape File:         zcta.shp", lines[0])
	require.Equal(t, "Total Rows:         42", lines[1])
	require.Equal(t, "\rRows Exported:      7          Time Remaining:     00:00:01   ", lines[2])
}

func TestPrinter_Nil(t *testing.T) {
	t.Parallel()

	var p *console.Printer
	require.NotPanics(t, func() {
		p.Active("a", "b")
		p.Begin("a", "b")
		p.Redraw("b", "c")
		p.Failed("boom %d", 1)
		p.End()
	})
}
