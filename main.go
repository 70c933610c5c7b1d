package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/village-noise/internal/assets"
	"github.com/ytget/village-noise/internal/model"
	"github.com/ytget/village-noise/internal/playback"
	"github.com/ytget/village-noise/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.village-noise"
	AppName = "VillageNoise"

	WindowWidth  = 420
	WindowHeight = 720
)

func main() {
	// Log version information
	log.Printf("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply light green theme
	myApp.Settings().SetTheme(ui.NewVillageTheme())

	catalog := assets.NewCatalog()
	if icon := catalog.Icon(); icon != nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	pages := model.DefaultPageSet()
	engine := playback.NewSpeakerEngine(catalog)
	defer engine.Close()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, pages, catalog, engine)

	// Show and run
	myWindow.ShowAndRun()
}
