package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const fps = 60

// Spring parameters matching a medium-bouncy, low-stiffness spring.
var (
	springDamping   = 0.5
	springFrequency = math.Sqrt(200)
)

type frameMsg struct{}

func nextFrame() tea.Cmd {
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg { return frameMsg{} })
}

type motion struct {
	pos, vel, target float64
}

// animator tweens each row's extra padding towards the target the
// controller hands out. Rows at rest are not tracked.
type animator struct {
	spring harmonica.Spring
	active map[string]*motion
}

func newAnimator() *animator {
	return &animator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		active: make(map[string]*motion),
	}
}

// retarget starts (or redirects) the motion of id from its current value.
func (a *animator) retarget(id string, from, to float64) {
	if m, ok := a.active[id]; ok {
		m.target = to
		return
	}
	a.active[id] = &motion{pos: from, target: to}
}

// value is the padding to draw for id; ok is false when id is at rest.
func (a *animator) value(id string) (int, bool) {
	m, ok := a.active[id]
	if !ok {
		return 0, false
	}
	v := int(math.Round(m.pos))
	if v < 0 {
		v = 0
	}
	return v, true
}

// step advances every motion one frame and returns the ids that moved.
// Motions that settle are dropped.
func (a *animator) step() []string {
	moved := make([]string, 0, len(a.active))
	for id, m := range a.active {
		m.pos, m.vel = a.spring.Update(m.pos, m.vel, m.target)
		moved = append(moved, id)
		if math.Abs(m.pos-m.target) < 0.01 && math.Abs(m.vel) < 0.01 {
			delete(a.active, id)
		}
	}
	return moved
}

func (a *animator) running() bool { return len(a.active) > 0 }

func (a *animator) remove(id string) { delete(a.active, id) }
