// Package tui runs games in a terminal through Bubble Tea, locally or over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step of the loop identified by Loop.
type TickMsg struct {
	Time time.Time
	Loop int64
}

var loopIDs atomic.Int64

// nextLoopID returns an identifier for a new tick loop. A model only reacts
// to ticks of its own loop, so a tick still in flight from a finished game
// cannot double the speed of the next one.
func nextLoopID() int64 {
	return loopIDs.Add(1)
}

// tickCmd schedules the next tick of loop at tickRate ticks per second.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
