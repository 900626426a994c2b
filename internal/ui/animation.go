package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	animationFPS = 60

	// a critically damped spring is within 1% of its target after
	// about 6.6/ω seconds
	settleFactor = 6.6
	epsilon      = 0.01
)

// popupAnimation drives the popup height between 0 (hidden) and 1 (fully
// revealed). A new target replaces the one in flight.
type popupAnimation struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64

	running   bool
	gen       int // ticks from an older run carry a stale gen and are dropped
	frames    int
	maxFrames int
}

// animateTo moves the popup towards target over roughly d. A non-positive
// duration snaps immediately.
func (a *popupAnimation) animateTo(target float64, d time.Duration) tea.Cmd {
	a.target = target
	if d <= 0 {
		a.snap(target)
		return nil
	}

	a.spring = harmonica.NewSpring(harmonica.FPS(animationFPS), settleFactor/d.Seconds(), 1.0)
	a.frames = 0
	a.maxFrames = 2*int(d.Seconds()*animationFPS) + 1

	if a.running {
		return nil
	}
	a.running = true
	a.gen++
	return a.tick()
}

// snap jumps to target and stops any running animation
func (a *popupAnimation) snap(target float64) {
	a.target = target
	a.pos = target
	a.vel = 0
	if a.running {
		a.running = false
		a.gen++
	}
}

// step advances one frame and schedules the next one while unsettled
func (a *popupAnimation) step(msg animationTickMsg) tea.Cmd {
	if !a.running || msg.gen != a.gen {
		return nil
	}

	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	a.frames++

	if a.settled() || a.frames >= a.maxFrames {
		a.snap(a.target)
		return nil
	}
	return a.tick()
}

func (a *popupAnimation) settled() bool {
	return math.Abs(a.pos-a.target) < epsilon
}

func (a *popupAnimation) tick() tea.Cmd {
	gen := a.gen
	return tea.Tick(time.Second/animationFPS, func(time.Time) tea.Msg {
		return animationTickMsg{gen: gen}
	})
}

// rows converts the current height into a row count out of n
func (a *popupAnimation) rows(n int) int {
	r := int(math.Round(a.pos * float64(n)))
	if r < 0 {
		return 0
	}
	if r > n {
		return n
	}
	return r
}
