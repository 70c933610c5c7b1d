package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/village-noise/internal/assets"
	"github.com/ytget/village-noise/internal/config"
	"github.com/ytget/village-noise/internal/model"
	"github.com/ytget/village-noise/internal/playback"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	images   ImageSource
	carousel *model.Carousel
	player   *playback.Controller

	carouselView *CarouselView
	prevBtn      *widget.Button
	nextBtn      *widget.Button
	dots         []*canvas.Circle
	toggleBtn    *widget.Button
	titleLabel   *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, pages *model.PageSet, images ImageSource, engine playback.Engine) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	player := playback.NewController(pages, engine)
	player.SetPageChangePolicy(settings.GetPageChangePolicy())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		images:       images,
		carousel:     model.NewCarousel(pages),
		player:       player,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Re-render the button on every playback transition
	ui.player.OnChange(ui.onPlaybackChange)

	ui.setupUI()

	window.Canvas().SetOnTypedKey(ui.onTypedKey)
	window.SetOnClosed(ui.player.Close)

	log.Printf("RootUI initialized with %d pages, page change policy: %s", pages.Len(), player.PageChangePolicy())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Carousel image with swipe support
	ui.carouselView = NewCarouselView(ui.mobile.CarouselImageSize(), ui.onSwipe)

	// Arrow buttons keep their slot when hidden so the image does not jump
	ui.prevBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { ui.onArrow(model.Previous) })
	ui.prevBtn.Importance = widget.LowImportance
	ui.nextBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { ui.onArrow(model.Next) })
	ui.nextBtn.Importance = widget.LowImportance

	carouselRow := container.NewBorder(
		nil,
		nil,
		container.NewCenter(arrowSlot(ui.prevBtn)),
		container.NewCenter(arrowSlot(ui.nextBtn)),
		ui.carouselView,
	)

	// Page indicator dots
	ui.dots = make([]*canvas.Circle, ui.carousel.Len())
	dotObjects := make([]fyne.CanvasObject, len(ui.dots))
	for i := range ui.dots {
		ui.dots[i] = canvas.NewCircle(DotGray)
		dotObjects[i] = ui.dots[i]
	}
	dotCell := fyne.NewSize(DotSize+DotSpacing, DotSize+DotSpacing)
	dotsRow := container.NewCenter(container.NewGridWrap(dotCell, dotObjects...))

	// Notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignCenter
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	// Start/Stop button
	ui.toggleBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeyStart), ui.onToggle)

	// Settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.titleLabel.Importance = widget.LowImportance

	padding := ui.mobile.GetMobilePadding()
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(padding, padding))

	bottom := container.NewVBox(
		dotsRow,
		ui.notificationContainer,
		ui.toggleBtn,
		container.NewBorder(nil, nil, nil, settingsBtn, ui.titleLabel),
		spacer,
	)

	content := container.NewBorder(
		nil,         // top
		bottom,      // bottom
		nil,         // left
		nil,         // right
		carouselRow, // center - carousel
	)

	ui.window.SetContent(container.NewPadded(content))

	ui.showPage(false)
	ui.refreshToggle(ui.player.State())

	log.Printf("UI setup completed successfully")
}

// arrowSlot wraps an arrow button in a fixed-size area
func arrowSlot(btn *widget.Button) fyne.CanvasObject {
	placeholder := canvas.NewRectangle(color.Transparent)
	placeholder.SetMinSize(fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize))
	return container.NewStack(placeholder, btn)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.refreshToggle(ui.player.State())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings pushes saved settings into the running UI and player
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.player.SetPageChangePolicy(ui.settings.GetPageChangePolicy())
	ui.refreshUITexts()
	ui.createMenu()

	dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
}

// onSwipe handles a horizontal swipe on the carousel image
func (ui *RootUI) onSwipe(d model.Direction) {
	if ui.carousel.Swipe(d) {
		ui.onPageChanged()
	}
}

// onArrow handles taps on the left/right arrows
func (ui *RootUI) onArrow(d model.Direction) {
	if ui.carousel.TapArrow(d) {
		ui.onPageChanged()
	}
}

// onTypedKey handles desktop keyboard navigation
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyLeft:
		ui.onArrow(model.Previous)
	case fyne.KeyRight:
		ui.onArrow(model.Next)
	case fyne.KeySpace:
		ui.onToggle()
	}
}

// onPageChanged re-renders the page and lets the player react
func (ui *RootUI) onPageChanged() {
	ui.showPage(true)

	if err := ui.player.PageChanged(ui.carousel.Index()); err != nil {
		ui.reportPlaybackError(err)
	}
}

// showPage renders the current page image, arrows and dots
func (ui *RootUI) showPage(animate bool) {
	page := ui.carousel.Current()
	ui.carouselView.SetImage(LoadPageImage(ui.images, page.Image), animate)

	if ui.carousel.CanMove(model.Previous) {
		ui.prevBtn.Show()
	} else {
		ui.prevBtn.Hide()
	}
	if ui.carousel.CanMove(model.Next) {
		ui.nextBtn.Show()
	} else {
		ui.nextBtn.Hide()
	}

	for i, dot := range ui.dots {
		if i == ui.carousel.Index() {
			dot.FillColor = LightGreen
		} else {
			dot.FillColor = DotGray
		}
		dot.Refresh()
	}
}

// onToggle handles the Start/Stop button
func (ui *RootUI) onToggle() {
	if err := ui.player.Toggle(ui.carousel.Index()); err != nil {
		ui.reportPlaybackError(err)
		return
	}
	ui.hideNotification()
}

// onPlaybackChange is called by the player after every transition
func (ui *RootUI) onPlaybackChange(state playback.State) {
	ui.refreshToggle(state)
}

// refreshToggle updates the Start/Stop button label and color
func (ui *RootUI) refreshToggle(state playback.State) {
	if state.Status().IsActive() {
		ui.toggleBtn.SetText(ui.localization.GetText(KeyStop))
		ui.toggleBtn.SetIcon(theme.MediaStopIcon())
		ui.toggleBtn.Importance = widget.DangerImportance
	} else {
		ui.toggleBtn.SetText(ui.localization.GetText(KeyStart))
		ui.toggleBtn.SetIcon(theme.MediaPlayIcon())
		ui.toggleBtn.Importance = widget.MediumImportance
	}
	ui.toggleBtn.Refresh()
}

// reportPlaybackError tells the user why playback did not start
func (ui *RootUI) reportPlaybackError(err error) {
	if errors.Is(err, assets.ErrNotFound) {
		message := ui.localization.GetText(KeySoundNotFound)
		ui.showNotification(message)
		dialog.ShowError(fmt.Errorf("%s%s%w", message, NotificationSeparator, err), ui.window)
		return
	}
	ui.showNotification(ui.localization.GetText(KeyPlaybackFailed) + NotificationSeparator + err.Error())
}

// showNotification displays a message in the notification panel above the button
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	ui.notificationContainer.Hide()
}
