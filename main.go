package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	goruntime "runtime"
	"time"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/awsl-project/entrainde/internal/config"
	"github.com/awsl-project/entrainde/internal/core"
	"github.com/awsl-project/entrainde/internal/desktop"
	"github.com/awsl-project/entrainde/internal/logging"
	"github.com/awsl-project/entrainde/internal/repository"
	"github.com/awsl-project/entrainde/internal/repository/cached"
	"github.com/awsl-project/entrainde/internal/tray"
	"github.com/awsl-project/entrainde/internal/version"
	"github.com/awsl-project/entrainde/internal/visibility"
	"github.com/awsl-project/entrainde/internal/watcher"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	dataDir := flag.String("data", "", "Data directory for settings, tasks and logs (default: ~/.config/entrainde)")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("entrainde", version.Full())
		os.Exit(0)
	}

	// Determine data directory: CLI flag > env var > default
	dataDirPath := config.ResolveDataDir(*dataDir)
	if err := os.MkdirAll(dataDirPath, 0755); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", dataDirPath, err)
	}

	settings, err := config.Load(dataDirPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	logWriter, err := logging.Setup(settings.LogPath())
	if err != nil {
		log.Printf("Warning: Failed to open log file: %v", err)
	} else {
		defer logWriter.Close()
	}
	log.Printf("[Main] %s %s starting, data dir: %s", version.Name, version.Info(), dataDirPath)

	// Task store
	repo, err := repository.Open(settings.Store.DSN, settings.TasksPath())
	if err != nil {
		log.Fatalf("Failed to open task store: %v", err)
	}
	store := cached.NewTaskStore(repo)
	if err := store.Load(); err != nil {
		log.Fatalf("Failed to load tasks: %v", err)
	}
	defer store.Close()

	if n, err := core.CleanupOldTasks(store, time.Now()); err != nil {
		log.Printf("[Task] Startup cleanup failed: %v", err)
	} else if n > 0 {
		log.Printf("[Task] Removed %d tasks from previous days", n)
	}

	// Pick up edits made by the CLI while the app runs
	var fileWatcher *watcher.Watcher
	if settings.Store.DSN == "" {
		fileWatcher, err = watcher.New(settings.TasksPath(), watcher.DefaultDelay, func() {
			if err := store.Reload(); err != nil {
				log.Printf("[Watcher] Reload failed: %v", err)
			}
		})
		if err != nil {
			log.Printf("[Watcher] Disabled: %v", err)
			fileWatcher = nil
		} else {
			defer fileWatcher.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g := core.StartBackgroundTasks(ctx, core.BackgroundTaskDeps{
		Store:   store,
		Watcher: fileWatcher,
	})

	// Window, tray and the visibility controller between them
	// Without a tray icon a hidden window could never come back
	startHidden := settings.Window.StartHidden && tray.Supported
	if !tray.Supported {
		log.Printf("[Main] No system tray on %s, closing the window exits", goruntime.GOOS)
	}
	window := desktop.NewMainWindow(desktop.ParseAnchor(settings.Tray.Anchor, goruntime.GOOS), !startHidden)
	app := desktop.NewApp(window, tray.Supported)
	trayEvents := desktop.NewTrayEvents()
	trayIcon := tray.New(trayEvents)

	ctrl := visibility.NewController(&visibility.DebounceClock{}, store, app.Quit)
	dispatcher := visibility.NewDispatcher(ctrl, window, settings.ClickPolicy())
	dispatcher.Register(app, trayEvents)
	log.Printf("[Main] Tray click policy: %s", settings.ClickPolicy())

	// 初始化托盘（在 goroutine 中运行，避免阻塞主线程）
	go func() {
		select {
		case <-app.Ready():
			trayIcon.Start()
		case <-ctx.Done():
		}
	}()

	app.OnShutdown(func() {
		dispatcher.Quit()
		trayIcon.Quit()
		cancel()
	})

	err = wails.Run(&options.App{
		Title:         version.Name,
		Width:         420,
		Height:        520,
		MinWidth:      320,
		MinHeight:     360,
		StartHidden:   startHidden,
		DisableResize: false,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.Startup,
		OnDomReady:       app.DomReady,
		OnBeforeClose:    app.BeforeClose,
		OnShutdown:       app.Shutdown,
		Bind: []interface{}{
			desktop.NewTaskBinding(store),
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
		},
		Mac: &mac.Options{
			Appearance: mac.NSAppearanceNameDarkAqua,
			About: &mac.AboutInfo{
				Title:   version.Name,
				Message: "Suivi des tâches de la journée\n" + version.Info(),
			},
		},
	})
	if err != nil {
		log.Printf("Error: %v", err)
	}

	cancel()
	if err := g.Wait(); err != nil {
		log.Printf("[Task] Background task error: %v", err)
	}
	log.Println("[Main] Exited")
}
