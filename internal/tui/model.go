package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/greetings/internal/expand"
	"github.com/Makepad-fr/greetings/internal/model"
	"github.com/Makepad-fr/greetings/internal/store"
	"github.com/Makepad-fr/greetings/internal/ui"
)

// Options configure a Model.
type Options struct {
	Items     []model.Item // default rows when the saved state has none
	State     *store.UIState
	Style     string // plain|card, used when the saved state has none
	Collapsed int    // extra padding rows when collapsed
	Expanded  int    // extra padding rows when expanded
	More      string
	Less      string
	Animate   bool
	Logger    *slog.Logger
}

// removed remembers the last deleted row for a single-level undo.
type removed struct {
	index int
	item  model.Item
}

// Model is the Bubble Tea model for the greetings screen.
type Model struct {
	opt  Options
	keys keyMap
	help help.Model
	log  *slog.Logger

	ctrl    *expand.Controller
	rows    *rowCache
	anim    *animator
	cancels map[string]func()
	ticking bool

	items       []model.Item
	customItems bool
	nextSeq     int
	style       string
	onboarded   bool

	cursor, offset int
	visibleEnd     int
	width, height  int

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	undo *removed

	changed bool
}

// New builds a Model, restoring opt.State when given.
func New(opt Options) *Model {
	st := opt.State
	if st == nil {
		st = store.Default()
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		opt:       opt,
		keys:      defaultKeys(),
		help:      help.New(),
		log:       opt.Logger,
		rows:      newRowCache(),
		anim:      newAnimator(),
		cancels:   make(map[string]func()),
		items:     opt.Items,
		nextSeq:   st.NextSeq,
		style:     opt.Style,
		onboarded: st.Onboarded,
		cursor:    st.Cursor,
		width:     80,
		height:    24,
	}
	if st.CustomItems || len(st.Items) > 0 {
		m.items = append([]model.Item(nil), st.Items...)
		m.customItems = true
	}
	if st.Style != "" {
		m.style = st.Style
	}
	if m.style != "plain" && m.style != "card" {
		m.style = "card"
	}
	m.ctrl = expand.Restored(st.Expanded)
	m.ctrl.Retain(model.IDs(m.items))
	m.clampCursor()

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "Name to greet..."
	m.ti.CharLimit = 80
	m.scrollToCursor()
	return m
}

// Controller exposes the expand state, e.g. for tests and callers that
// drive toggles from outside the key handler.
func (m *Model) Controller() *expand.Controller { return m.ctrl }

// Changed reports whether anything worth saving happened.
func (m *Model) Changed() bool { return m.changed }

// State captures what must survive a restart.
func (m *Model) State() *store.UIState {
	st := &store.UIState{
		Version:   store.CurrentVersion,
		Onboarded: m.onboarded,
		Style:     m.style,
		Cursor:    m.cursor,
		NextSeq:   m.nextSeq,
		Expanded:  m.ctrl.Snapshot(),
	}
	if m.customItems {
		st.CustomItems = true
		st.Items = append([]model.Item(nil), m.items...)
	}
	return st
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rows.clear()
		m.scrollToCursor()
		return m, nil
	case frameMsg:
		return m, m.stepAnimation()
	}

	if !m.onboarded {
		return m.updateOnboarding(msg)
	}
	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Up):
		m.moveCursor(m.cursor - 1)
	case key.Matches(km, m.keys.Down):
		m.moveCursor(m.cursor + 1)
	case key.Matches(km, m.keys.Home):
		m.moveCursor(0)
	case key.Matches(km, m.keys.End):
		m.moveCursor(len(m.items) - 1)
	case key.Matches(km, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.ctrl.Toggle(it.ID)
			m.changed = true
			m.scrollToCursor()
		}
	case key.Matches(km, m.keys.ExpandAll):
		m.setVisible(true)
	case key.Matches(km, m.keys.CollapseAll):
		m.setVisible(false)
	case key.Matches(km, m.keys.Style):
		m.style = map[string]string{"card": "plain", "plain": "card"}[m.style]
		m.rows.clear()
		m.changed = true
		m.scrollToCursor()
	case key.Matches(km, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		return m, m.ti.Focus()
	case key.Matches(km, m.keys.Delete):
		m.deleteSelected()
	case key.Matches(km, m.keys.Undo):
		m.undoDelete()
	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, m.startAnimation()
}

func (m *Model) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "enter", " ":
		m.onboarded = true
		m.changed = true
		m.log.Info("onboarding dismissed")
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			name := strings.TrimSpace(m.ti.Value())
			if name == "" {
				m.addErr = "Name cannot be empty"
				return m, nil
			}
			m.nextSeq++
			it := model.Item{ID: fmt.Sprintf("n%d", m.nextSeq), Label: name}
			at := m.cursor + 1
			if len(m.items) == 0 {
				at = 0
			}
			m.items = append(m.items[:at:at], append([]model.Item{it}, m.items[at:]...)...)
			m.customItems = true
			m.changed = true
			m.adding = false
			m.ti.Blur()
			m.log.Debug("row added", slog.String("id", it.ID))
			m.moveCursor(at)
			return m, nil
		case "esc":
			m.adding = false
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) selected() (model.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return model.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// moveCursor selects row i. Only the rows gaining and losing the cursor
// are re-rendered.
func (m *Model) moveCursor(i int) {
	if it, ok := m.selected(); ok {
		m.rows.invalidate(it.ID)
	}
	m.cursor = i
	m.clampCursor()
	if it, ok := m.selected(); ok {
		m.rows.invalidate(it.ID)
	}
	m.scrollToCursor()
}

func (m *Model) setVisible(expanded bool) {
	end := m.visibleEnd
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.offset; i < end; i++ {
		m.ctrl.Set(m.items[i].ID, expanded)
	}
	m.changed = true
	m.scrollToCursor()
}

func (m *Model) deleteSelected() {
	it, ok := m.selected()
	if !ok {
		return
	}
	m.undo = &removed{index: m.cursor, item: it}
	m.items = append(m.items[:m.cursor:m.cursor], m.items[m.cursor+1:]...)
	m.forget(it.ID)
	m.customItems = true
	m.changed = true
	m.log.Debug("row removed", slog.String("id", it.ID))
	m.moveCursor(m.cursor)
}

func (m *Model) undoDelete() {
	if m.undo == nil {
		return
	}
	idx := m.undo.index
	if idx > len(m.items) {
		idx = len(m.items)
	}
	m.items = append(m.items[:idx:idx], append([]model.Item{m.undo.item}, m.items[idx:]...)...)
	m.undo = nil
	m.changed = true
	m.moveCursor(idx)
}

// forget tears down everything held for a row that left the list.
func (m *Model) forget(id string) {
	if cancel, ok := m.cancels[id]; ok {
		cancel()
		delete(m.cancels, id)
	}
	m.ctrl.Forget(id)
	m.anim.remove(id)
	m.rows.invalidate(id)
}

// watch subscribes to a row's flag the first time the row is drawn.
func (m *Model) watch(id string) {
	if _, ok := m.cancels[id]; ok {
		return
	}
	m.cancels[id] = m.ctrl.Watch(id, m.onExpandChanged)
}

func (m *Model) onExpandChanged(id string, expanded bool) {
	m.log.Debug("row toggled", slog.String("id", id), slog.Bool("expanded", expanded))
	m.rows.invalidate(id)
	if !m.opt.Animate || m.style != "plain" {
		return
	}
	from := float64(expand.Pick(!expanded, m.opt.Collapsed, m.opt.Expanded))
	if v, ok := m.anim.value(id); ok {
		from = float64(v)
	}
	m.anim.retarget(id, from, float64(m.ctrl.Padding(id, m.opt.Collapsed, m.opt.Expanded)))
}

func (m *Model) startAnimation() tea.Cmd {
	if m.ticking || !m.anim.running() {
		return nil
	}
	m.ticking = true
	return nextFrame()
}

func (m *Model) stepAnimation() tea.Cmd {
	for _, id := range m.anim.step() {
		m.rows.invalidate(id)
	}
	if !m.anim.running() {
		m.ticking = false
		return nil
	}
	return nextFrame()
}

// padding is the extra space to draw under row id right now.
func (m *Model) padding(id string) int {
	if m.style != "plain" {
		return 0
	}
	if v, ok := m.anim.value(id); ok {
		return v
	}
	return m.ctrl.Padding(id, m.opt.Collapsed, m.opt.Expanded)
}

// row returns the rendering of row i, drawing it only if it is not cached.
func (m *Model) row(i int) string {
	it := m.items[i]
	if s, ok := m.rows.get(it.ID); ok {
		return s
	}
	m.watch(it.ID)
	st := ui.RowState{
		Expanded:     m.ctrl.IsExpanded(it.ID),
		ExtraPadding: m.padding(it.ID),
		Label:        m.ctrl.Label(it.ID, m.opt.More, m.opt.Less),
		Selected:     i == m.cursor,
		Width:        m.width - 4,
	}
	var s string
	if m.style == "plain" {
		s = ui.GreetingRow(it, st) + "\n"
	} else {
		s = ui.GreetingCard(it, st)
	}
	m.rows.put(it.ID, s)
	return s
}

func (m *Model) listHeight() int {
	h := m.height - 4
	if m.adding {
		h -= 4
	}
	if m.help.ShowAll {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	return h
}

// scrollToCursor moves the window so the cursor row is fully visible. Only
// rows between the new top and the cursor are drawn to measure them.
func (m *Model) scrollToCursor() {
	if len(m.items) == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
		return
	}
	lh := m.listHeight()
	top, h := m.cursor, 0
	for i := m.cursor; i >= m.offset; i-- {
		h += lipgloss.Height(m.row(i))
		if h > lh {
			break
		}
		top = i
	}
	if top > m.offset {
		m.offset = top
	}
}

func (m *Model) View() string {
	if !m.onboarded {
		return ui.Onboarding(m.width, m.height)
	}
	t := ui.Current()

	header := fmt.Sprintf("%s   %s %d  %s %d",
		t.Title.Render("Greetings"),
		t.Accent.Render(t.IconLess), m.ctrl.Len(),
		t.Muted.Render("Total"), len(m.items),
	)

	lh := m.listHeight()
	var body []string
	h := 0
	m.visibleEnd = m.offset
	for i := m.offset; i < len(m.items); i++ {
		r := m.row(i)
		rh := lipgloss.Height(r)
		if h+rh > lh && i > m.offset {
			break
		}
		body = append(body, r)
		h += rh
		m.visibleEnd = i + 1
	}
	if len(m.items) == 0 {
		body = append(body, t.Muted.Render("no greetings, press a to add one"))
	}

	out := []string{header, "", strings.TrimRight(strings.Join(body, "\n"), "\n")}
	if m.adding {
		title := "Add greeting"
		if m.addErr != "" {
			title += " · " + t.Error.Render(m.addErr)
		}
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		out = append(out, bar.Render(title+"\n"+m.ti.View()))
	}
	out = append(out, "", m.help.View(m.keys))
	return strings.Join(out, "\n")
}
