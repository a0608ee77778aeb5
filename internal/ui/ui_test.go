package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/greetings/internal/model"
)

// Tests render with the mono theme so output is free of colour codes.
func init() { SetTheme("mono") }

func TestGreetingRow_PaddingAndLabel(t *testing.T) {
	it := model.Item{ID: "0", Label: "World"}

	collapsed := GreetingRow(it, RowState{Label: "Show more", Width: 40})
	assert.Contains(t, collapsed, "Hello,")
	assert.Contains(t, collapsed, "World")
	assert.Contains(t, collapsed, "Show more")
	assert.Equal(t, 2, lipgloss.Height(collapsed))

	expanded := GreetingRow(it, RowState{Expanded: true, ExtraPadding: 3, Label: "Show less", Width: 40})
	assert.Contains(t, expanded, "Show less")
	assert.Equal(t, 5, lipgloss.Height(expanded))
}

func TestGreetingCard_BodyOnlyWhenExpanded(t *testing.T) {
	it := model.Item{ID: "7", Label: "7"}

	collapsed := GreetingCard(it, RowState{Width: 60})
	assert.NotContains(t, collapsed, "Composem")
	assert.Contains(t, collapsed, Current().IconMore)

	expanded := GreetingCard(it, RowState{Expanded: true, Width: 60})
	assert.Contains(t, expanded, "Composem")
	assert.Contains(t, expanded, Current().IconLess)
	assert.Greater(t, lipgloss.Height(expanded), lipgloss.Height(collapsed))
}

func TestSelectedRowHasCursor(t *testing.T) {
	it := model.Item{ID: "1", Label: "Compose"}
	sel := GreetingRow(it, RowState{Label: "Show more", Selected: true, Width: 40})
	assert.True(t, strings.HasPrefix(sel, Current().Cursor))
	unsel := GreetingRow(it, RowState{Label: "Show more", Width: 40})
	assert.False(t, strings.HasPrefix(unsel, Current().Cursor))
}

func TestWateringText(t *testing.T) {
	assert.Equal(t, "every day", WateringText(1))
	assert.Equal(t, "every 7 days", WateringText(7))
}

func TestPlantDetail(t *testing.T) {
	out, err := PlantDetail(model.Plant{Name: "Apple", Description: "HTML<br><br>description", WateringInterval: 30}, 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Apple")
	assert.Contains(t, out, "Watering needs")
	assert.Contains(t, out, "every 30 days")
	assert.Contains(t, out, "description")
	assert.NotContains(t, out, "<br")
}

func TestOnboarding(t *testing.T) {
	out := Onboarding(60, 10)
	assert.Contains(t, out, "Welcome to the Basics Codelab!")
	assert.Contains(t, out, "Continue")
	assert.Equal(t, 10, lipgloss.Height(out))
}

func TestOutputHelpers(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "saved")
	Fail(&buf, "broken")
	assert.Equal(t, "ok saved\nx broken\n", buf.String())

	assert.Equal(t, "[██░░] 1/2", ProgressBar(1, 2, 4))
	assert.Equal(t, "[░░░░] 0/0", ProgressBar(0, 0, 4))
	assert.Contains(t, Panel([]string{"a", "bb"}), "bb")
}
