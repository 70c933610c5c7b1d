package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/village-noise/internal/assets"
	"github.com/ytget/village-noise/internal/config"
	"github.com/ytget/village-noise/internal/model"
	"github.com/ytget/village-noise/internal/playback"
)

type stubHandle struct {
	name    string
	stopped bool
}

func (h *stubHandle) Name() string { return h.name }
func (h *stubHandle) Stop() error  { h.stopped = true; return nil }

// stubEngine plays nothing; it only records which sounds were looped
type stubEngine struct {
	missing map[string]bool
	failure error
	handles []*stubHandle
}

func (e *stubEngine) Loop(name string) (playback.Handle, error) {
	if e.missing[name] {
		return nil, fmt.Errorf("sound %q: %w", name, assets.ErrNotFound)
	}
	if e.failure != nil {
		return nil, e.failure
	}
	h := &stubHandle{name: name}
	e.handles = append(e.handles, h)
	return h, nil
}

func (e *stubEngine) playing() []string {
	var names []string
	for _, h := range e.handles {
		if !h.stopped {
			names = append(names, h.name)
		}
	}
	return names
}

func newTestRootUI(t *testing.T, prepare func(fyne.App)) (*RootUI, *stubEngine) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	if prepare != nil {
		prepare(app)
	}

	engine := &stubEngine{missing: map[string]bool{}}
	window := test.NewWindow(nil)
	ui := NewRootUI(window, app, model.DefaultPageSet(), assets.NewCatalog(), engine)
	return ui, engine
}

func swipe(ui *RootUI, dx float32) {
	ui.carouselView.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(dx, 0)})
	ui.carouselView.DragEnd()
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _ := newTestRootUI(t, nil)

	assert.Equal(t, 0, ui.carousel.Index())
	assert.True(t, ui.prevBtn.Hidden, "left arrow hidden on first page")
	assert.False(t, ui.nextBtn.Hidden)
	assert.Equal(t, "Start", ui.toggleBtn.Text)
	assert.Equal(t, widget.MediumImportance, ui.toggleBtn.Importance)
	assert.Equal(t, "VillageNoise", ui.titleLabel.Text)
	assert.Equal(t, "drink1.png", ui.carouselView.Resource().Name())
	assert.Equal(t, LightGreen, ui.dots[0].FillColor)
	assert.Equal(t, DotGray, ui.dots[1].FillColor)
}

func TestRootUI_ArrowsFollowBounds(t *testing.T) {
	ui, _ := newTestRootUI(t, nil)

	for i := 1; i < 6; i++ {
		test.Tap(ui.nextBtn)
		assert.Equal(t, i, ui.carousel.Index())
		assert.False(t, ui.prevBtn.Hidden)
		assert.Equal(t, i == 5, ui.nextBtn.Hidden, "right arrow at %d", i)
	}

	// A stray tap at the boundary is ignored
	test.Tap(ui.nextBtn)
	assert.Equal(t, 5, ui.carousel.Index())

	for i := 4; i >= 0; i-- {
		test.Tap(ui.prevBtn)
		assert.Equal(t, i, ui.carousel.Index())
	}
	assert.True(t, ui.prevBtn.Hidden)
}

func TestRootUI_SwipeNavigation(t *testing.T) {
	ui, _ := newTestRootUI(t, nil)

	swipe(ui, -80) // content dragged left: next page
	assert.Equal(t, 1, ui.carousel.Index())
	assert.Equal(t, "drink2.png", ui.carouselView.Resource().Name())
	assert.Equal(t, LightGreen, ui.dots[1].FillColor)
	assert.Equal(t, DotGray, ui.dots[0].FillColor)

	swipe(ui, 80) // content dragged right: previous page
	assert.Equal(t, 0, ui.carousel.Index())

	swipe(ui, 80) // already first page
	assert.Equal(t, 0, ui.carousel.Index())

	swipe(ui, -10) // below threshold
	assert.Equal(t, 0, ui.carousel.Index())
}

func TestRootUI_EndToEnd(t *testing.T) {
	ui, engine := newTestRootUI(t, nil)

	for i := 0; i < 5; i++ {
		swipe(ui, -100)
	}
	require.Equal(t, 5, ui.carousel.Index())
	assert.True(t, ui.nextBtn.Hidden)

	test.Tap(ui.toggleBtn)
	assert.Equal(t, []string{"sound6"}, engine.playing())
	assert.True(t, ui.player.IsPlaying())
	assert.Equal(t, "Stop", ui.toggleBtn.Text)
	assert.Equal(t, widget.DangerImportance, ui.toggleBtn.Importance)

	test.Tap(ui.toggleBtn)
	assert.Empty(t, engine.playing())
	assert.False(t, ui.player.IsPlaying())
	assert.Equal(t, "Start", ui.toggleBtn.Text)
	assert.Equal(t, widget.MediumImportance, ui.toggleBtn.Importance)
}

func TestRootUI_PageChangeKeepsPlayingByDefault(t *testing.T) {
	ui, engine := newTestRootUI(t, nil)

	test.Tap(ui.toggleBtn)
	test.Tap(ui.nextBtn)

	assert.Equal(t, []string{"sound1"}, engine.playing())
	assert.Equal(t, "Stop", ui.toggleBtn.Text)
}

func TestRootUI_FollowPolicyFromSettings(t *testing.T) {
	ui, engine := newTestRootUI(t, func(app fyne.App) {
		config.NewSettings(app).SetPageChangePolicy(model.PolicyFollow)
	})

	test.Tap(ui.toggleBtn)
	test.Tap(ui.nextBtn)

	assert.Equal(t, []string{"sound2"}, engine.playing())
}

func TestRootUI_StopPolicyFromSettings(t *testing.T) {
	ui, engine := newTestRootUI(t, func(app fyne.App) {
		config.NewSettings(app).SetPageChangePolicy(model.PolicyStop)
	})

	test.Tap(ui.toggleBtn)
	swipe(ui, -100)

	assert.Empty(t, engine.playing())
	assert.Equal(t, "Start", ui.toggleBtn.Text)
}

func TestRootUI_MissingSoundIsReported(t *testing.T) {
	ui, engine := newTestRootUI(t, nil)
	engine.missing["sound1"] = true

	test.Tap(ui.toggleBtn)

	assert.False(t, ui.player.IsPlaying())
	assert.Equal(t, "Start", ui.toggleBtn.Text)
	assert.True(t, ui.notificationContainer.Visible())
	assert.Equal(t, "Sound file not found", ui.notificationLabel.Text)

	// A later successful start clears the notification
	test.Tap(ui.nextBtn)
	test.Tap(ui.toggleBtn)
	assert.True(t, ui.player.IsPlaying())
	assert.False(t, ui.notificationContainer.Visible())
}

func TestRootUI_PlaybackFailureIsReported(t *testing.T) {
	ui, engine := newTestRootUI(t, nil)
	engine.failure = errors.New("init speaker: device busy")

	test.Tap(ui.toggleBtn)

	assert.False(t, ui.player.IsPlaying())
	assert.Equal(t, "Start", ui.toggleBtn.Text)
	assert.True(t, ui.notificationContainer.Visible())
	assert.True(t, strings.HasPrefix(ui.notificationLabel.Text, "Could not play sound"), ui.notificationLabel.Text)
	assert.Contains(t, ui.notificationLabel.Text, "device busy")

	// The device came back: the next tap plays
	engine.failure = nil
	test.Tap(ui.toggleBtn)
	assert.Equal(t, []string{"sound1"}, engine.playing())
	assert.Equal(t, "Stop", ui.toggleBtn.Text)
}

func TestRootUI_LanguageMenuOrder(t *testing.T) {
	ui, _ := newTestRootUI(t, nil)

	labels := func() []string {
		menus := ui.window.MainMenu().Items
		require.Len(t, menus, 2)
		var out []string
		for _, item := range menus[1].Items {
			out = append(out, item.Label)
		}
		return out
	}

	first := labels()
	assert.Equal(t, []string{"English", "Português", "Русский"}, first)
	for i := 0; i < 5; i++ {
		ui.onLanguageChange("pt")
		assert.Equal(t, first, labels())
	}
}

func TestRootUI_Keyboard(t *testing.T) {
	ui, engine := newTestRootUI(t, nil)

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	assert.Equal(t, 1, ui.carousel.Index())

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.Equal(t, []string{"sound2"}, engine.playing())
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.Empty(t, engine.playing())
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestRootUI(t, nil)

	ui.onLanguageChange("ru")
	assert.Equal(t, "Старт", ui.toggleBtn.Text)
	assert.Equal(t, "ru", ui.settings.GetLanguage())

	test.Tap(ui.toggleBtn)
	assert.Equal(t, "Стоп", ui.toggleBtn.Text)
}

func TestRootUI_WindowCloseStopsPlayback(t *testing.T) {
	ui, engine := newTestRootUI(t, nil)

	test.Tap(ui.toggleBtn)
	require.True(t, ui.player.IsPlaying())

	ui.window.Close()
	assert.Empty(t, engine.playing())
}
