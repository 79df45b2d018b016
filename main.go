package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"gitscribe/internal/database"
	"gitscribe/internal/events"
	"gitscribe/internal/services"
	"gitscribe/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Optional .env for local development; absence is not an error.
	_ = utils.LoadEnv()

	app := NewApp()

	db, err := database.Init(database.Config{
		LogLevel: logger.Info,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	modelService, err := services.NewModelService()
	if err != nil {
		fmt.Println("Error loading model catalog:", err)
		return
	}

	//Create each service
	gitService := services.NewGitService()
	keyringService := services.NewKeyringService()
	historyService := services.NewHistoryService()
	dbService := services.NewDbServices(db, modelService)
	panelService := services.NewPanelService(dbService.Settings, dbService.Templates, keyringService, modelService, historyService)
	workflowService := services.NewWorkflowService(
		dbService.Settings,
		dbService.Templates,
		keyringService,
		gitService,
		gitService,
		services.NewGeminiGenerator(),
		modelService,
		historyService,
		services.NewDialogPrompter(),
		services.NewRuntimeClipboard(),
		services.NewPanelCommitSink(),
	)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "GitScribe",
		Width:  420,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "GitScribe",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			events.EnableRuntimeEmitter()
			gitService.Startup(ctx)
			dbService.Settings.Startup(ctx)
			dbService.Templates.Startup(ctx)
			panelService.Startup(ctx)

			if err := workflowService.Startup(ctx); err != nil {
				fmt.Println("Error starting workflow service:", err)
			}
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			dbService.Settings,
			dbService.Templates,
			panelService,
			workflowService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
