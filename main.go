package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/joho/godotenv"

	"github.com/aperricio/qt-dlp/internal/config"
	"github.com/aperricio/qt-dlp/internal/mux"
	"github.com/aperricio/qt-dlp/internal/platform"
	"github.com/aperricio/qt-dlp/internal/ui"
	"github.com/aperricio/qt-dlp/internal/ytdlp"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.aperricio.qt-dlp"
	AppName = "qt-dlp"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Optional .env for YTDLP_PATH / FFMPEG_PATH overrides
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewAppTheme(settings.GetTheme()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	muxSvc := mux.NewService()
	downloadSvc := ytdlp.NewService(downloadsDir, muxSvc)
	prober := ytdlp.NewProber()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, downloadSvc, prober)

	// The app is unusable without the external tools; say so up front
	if err := platform.CheckTools(); err != nil {
		log.Printf("Tool check failed: %v", err)
		dialog.ShowError(err, myWindow)
	}

	// Show and run
	myWindow.ShowAndRun()
}
