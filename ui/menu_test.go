package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/dixieflatline76/PictureFrame/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(m *fyne.Menu) []string {
	var out []string
	for _, item := range m.Items {
		if item.IsSeparator {
			out = append(out, "---")
			continue
		}
		out = append(out, item.Label)
	}
	return out
}

func findItem(t *testing.T, m *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range m.Items {
		if item.Label == label {
			return item
		}
	}
	require.Failf(t, "menu item not found", "%q", label)
	return nil
}

func TestMenuLayout(t *testing.T) {
	t.Run("WithoutFrames", func(t *testing.T) {
		c, _ := newTestController(t, nil)
		m := newMenu(c, func() {}, func() {})
		assert.Equal(t, []string{
			menuNextPicture, menuSetFolder, "---",
			menuAlwaysOnTop, menuLockPosition, menuClickThrough, menuAttachDesktop, "---",
			menuExit,
		}, labels(m))
	})

	t.Run("WithFrames", func(t *testing.T) {
		c, _ := newTestController(t, []string{"f.png"})
		m := newMenu(c, func() {}, func() {})
		assert.Equal(t, []string{
			menuNextPicture, menuSetFolder, "---",
			menuNextFrame, menuUseCustomFrame, "---",
			menuAlwaysOnTop, menuLockPosition, menuClickThrough, menuAttachDesktop, "---",
			menuExit,
		}, labels(m))
		assert.True(t, findItem(t, m, menuUseCustomFrame).Checked)
	})
}

func TestMenuChecks(t *testing.T) {
	c, _ := newTestController(t, nil)
	c.SetLocked(true)

	m := newMenu(c, func() {}, func() {})
	assert.True(t, findItem(t, m, menuAlwaysOnTop).Checked)
	assert.True(t, findItem(t, m, menuLockPosition).Checked)
	assert.False(t, findItem(t, m, menuClickThrough).Checked)
	assert.False(t, findItem(t, m, menuAttachDesktop).Checked)
	assert.True(t, findItem(t, m, menuExit).IsQuit)
}

func TestMenuActions(t *testing.T) {
	c, m := newTestController(t, nil)
	m.On("SetTopmost", false).Return(nil)
	m.On("SetClickThrough", true).Return(nil)

	chose, exited := false, false
	menu := newMenu(c, func() { chose = true }, func() { exited = true })

	findItem(t, menu, menuLockPosition).Action()
	assert.True(t, c.State().Locked)

	findItem(t, menu, menuAlwaysOnTop).Action()
	assert.False(t, c.State().Topmost)

	findItem(t, menu, menuClickThrough).Action()
	assert.True(t, c.State().ClickThrough)

	findItem(t, menu, menuSetFolder).Action()
	findItem(t, menu, menuExit).Action()
	assert.True(t, chose)
	assert.True(t, exited)

	// A rebuilt menu reflects the new state.
	menu = newMenu(c, func() {}, func() {})
	assert.True(t, findItem(t, menu, menuLockPosition).Checked)
	assert.False(t, findItem(t, menu, menuAlwaysOnTop).Checked)
	m.AssertExpectations(t)
}

func TestStateFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Locked = true
	cfg.Width, cfg.Height = 640, 480

	st := StateFromConfig(cfg)
	assert.True(t, st.Locked)
	assert.True(t, st.Topmost)
	assert.True(t, st.UseCustomFrame)
	assert.False(t, st.ClickThrough)
	assert.Equal(t, 640, st.Width)
	assert.Equal(t, 480, st.Height)
	assert.Contains(t, st.String(), "640x480")
}

func TestFitScreen(t *testing.T) {
	st := WidgetState{Width: 800, Height: 600}

	assert.Equal(t, st, st.FitScreen(1920, 1080))
	assert.Equal(t, st, st.FitScreen(0, 0))

	fit := st.FitScreen(400, 600)
	assert.Equal(t, 400, fit.Width)
	assert.Equal(t, 300, fit.Height)

	tiny := st.FitScreen(100, 100)
	assert.Equal(t, config.MinWidth, tiny.Width)
	assert.Equal(t, config.MinHeight, tiny.Height)
}
