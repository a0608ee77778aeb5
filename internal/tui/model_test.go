package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/greetings/internal/model"
	"github.com/Makepad-fr/greetings/internal/store"
	"github.com/Makepad-fr/greetings/internal/store/jsonstore"
	"github.com/Makepad-fr/greetings/internal/ui"
)

func init() { ui.SetTheme("mono") }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func newTestModel(t *testing.T, items []model.Item, mutate func(*Options)) *Model {
	t.Helper()
	opt := Options{
		Items:     items,
		State:     &store.UIState{Onboarded: true},
		Style:     "plain",
		Collapsed: 0,
		Expanded:  2,
		More:      "Show more",
		Less:      "Show less",
	}
	if mutate != nil {
		mutate(&opt)
	}
	m := New(opt)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m.View()
	return m
}

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestOnboardingThenList(t *testing.T) {
	t.Parallel()
	m := New(Options{Items: model.DefaultItems(3), Style: "plain", More: "Show more", Less: "Show less"})
	assert.Contains(t, m.View(), "Welcome to the Basics Codelab!")

	send(m, space)
	assert.True(t, m.State().Onboarded)
	assert.True(t, m.Changed())
	v := m.View()
	assert.Contains(t, v, "Hello,")
	assert.Contains(t, v, "Show more")
}

func TestToggle_ScenarioAB(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, []model.Item{{ID: "A", Label: "A"}, {ID: "B", Label: "B"}}, nil)
	c := m.Controller()
	state := func() [2]bool { return [2]bool{c.IsExpanded("A"), c.IsExpanded("B")} }

	send(m, space)
	assert.Equal(t, [2]bool{true, false}, state())
	send(m, runes("j"), space)
	assert.Equal(t, [2]bool{true, true}, state())
	send(m, runes("k"), enter)
	assert.Equal(t, [2]bool{false, true}, state())
	assert.Contains(t, m.View(), "Show less")
}

func TestToggle_RerendersOnlyThatRow(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, model.DefaultItems(5), nil)
	before := map[string]int{}
	for k, v := range m.rows.renders {
		before[k] = v
	}
	require.Equal(t, 1, before["3"], "row 3 should be drawn once on first view")

	// Toggle row 3 from outside the key handler: only its observer fires.
	m.Controller().Toggle("3")
	m.View()

	assert.Equal(t, before["3"]+1, m.rows.renders["3"])
	for _, id := range []string{"0", "1", "2", "4"} {
		assert.Equal(t, before[id], m.rows.renders[id], "row %s re-rendered", id)
	}
}

func TestLazyRows_OnlyVisibleAreDrawn(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, model.DefaultItems(1000), nil)
	assert.Less(t, len(m.rows.renders), 50)
	assert.False(t, m.Controller().Watched("999"))

	send(m, runes("G"))
	m.View()
	assert.True(t, m.Controller().Watched("999"))
	assert.Less(t, len(m.rows.renders), 100)
	assert.Contains(t, m.View(), "999")
}

func TestPaddingFollowsController(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, model.DefaultItems(2), nil)
	assert.Equal(t, 0, m.padding("0"))
	send(m, space)
	assert.Equal(t, 2, m.padding("0"))
	assert.Equal(t, 0, m.padding("1"))
}

func TestAnimationSettlesOnTarget(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, model.DefaultItems(2), func(o *Options) {
		o.Animate = true
		o.Expanded = 6
	})

	_, cmd := m.Update(space)
	require.NotNil(t, cmd, "toggle should start the frame loop")
	v, moving := m.anim.value("0")
	require.True(t, moving)
	assert.Equal(t, 0, v)

	frames := 0
	for cmd != nil && frames < 10*fps {
		_, cmd = m.Update(frameMsg{})
		frames++
	}
	assert.Less(t, frames, 10*fps)
	assert.False(t, m.anim.running())
	assert.Equal(t, 6, m.padding("0"))
	_, moving = m.anim.value("1")
	assert.False(t, moving)
}

func TestDeleteForgetsStateAndUndoRestoresCollapsed(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, model.NamedItems([]string{"World", "Compose", "Go"}), nil)
	send(m, runes("j"), space)
	require.True(t, m.Controller().IsExpanded("1"))

	send(m, runes("d"))
	assert.Equal(t, []string{"0", "2"}, model.IDs(m.items))
	assert.False(t, m.Controller().IsExpanded("1"))
	assert.False(t, m.Controller().Watched("1"))

	send(m, runes("u"))
	assert.Equal(t, []string{"0", "1", "2"}, model.IDs(m.items))
	assert.False(t, m.Controller().IsExpanded("1"))
	assert.NotNil(t, m.State().Items)
}

func TestAddGreeting(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, model.NamedItems([]string{"World"}), nil)
	send(m, runes("a"))
	require.True(t, m.adding)

	send(m, enter)
	assert.Equal(t, "Name cannot be empty", m.addErr)

	send(m, runes("Gopher"), enter)
	assert.False(t, m.adding)
	require.Len(t, m.items, 2)
	assert.Equal(t, model.Item{ID: "n1", Label: "Gopher"}, m.items[1])
	assert.Equal(t, 1, m.cursor)
}

func TestExpandAndCollapseVisible(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, model.DefaultItems(4), nil)
	send(m, runes("E"))
	assert.Equal(t, []string{"0", "1", "2", "3"}, m.Controller().Expanded())
	send(m, runes("C"))
	assert.Empty(t, m.Controller().Expanded())
}

func TestStateSurvivesRestart(t *testing.T) {
	t.Parallel()
	items := model.DefaultItems(10)
	m := newTestModel(t, items, nil)
	send(m, space, runes("j"), runes("j"), runes("j"), space, runes("v"))
	saved := m.State()

	resumed := New(Options{Items: items, State: saved, Style: "card", More: "Show more", Less: "Show less"})
	assert.Equal(t, saved.Expanded, resumed.Controller().Snapshot())
	assert.Equal(t, saved, resumed.State())
	assert.Equal(t, "card", resumed.style)
	assert.Equal(t, 3, resumed.cursor)
}

func TestRestoreDropsUnknownIDs(t *testing.T) {
	t.Parallel()
	st := &store.UIState{Onboarded: true}
	st.Expanded.Expanded = []string{"1", "gone"}
	m := New(Options{Items: model.DefaultItems(2), State: st})
	assert.Equal(t, []string{"1"}, m.Controller().Expanded())
}

func TestDeletingEveryRowSurvivesRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	defaults := model.NamedItems([]string{"A", "B"})
	m := newTestModel(t, defaults, nil)
	send(m, runes("d"), runes("d"))
	require.Empty(t, m.items)

	s := jsonstore.New(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, s.Save(ctx, m.State()))
	st, err := s.Load(ctx)
	require.NoError(t, err)

	resumed := New(Options{Items: defaults, State: st, Style: "plain"})
	assert.Empty(t, resumed.items)
	assert.True(t, resumed.State().CustomItems)
}

func TestRestoredCursorIsOnScreen(t *testing.T) {
	t.Parallel()
	m := New(Options{
		Items: model.DefaultItems(1000),
		State: &store.UIState{Onboarded: true, Cursor: 500},
		Style: "plain",
	})
	m.View()
	assert.Equal(t, 500, m.cursor)
	assert.LessOrEqual(t, m.offset, 500)
	assert.Greater(t, m.offset, 0)
	assert.Greater(t, m.visibleEnd, 500)
}
