package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"ribbon/config"
	"ribbon/database"
	"ribbon/router"

	"ribbon/pkg/ai"
	"ribbon/pkg/extract"
	"ribbon/pkg/line"

	kbRepoImp "ribbon/pkg/kb/repositoryImp"
	kbServiceImp "ribbon/pkg/kb/serviceImp"

	chatCtrlImp "ribbon/pkg/chat/controllerImp"
	chatServiceImp "ribbon/pkg/chat/serviceImp"

	adminCtrlImp "ribbon/pkg/admin/controllerImp"
	authCtrlImp "ribbon/pkg/auth/controllerImp"
	healthCtrlImp "ribbon/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + first-run FAQ seed
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Completion provider (mock fallback when unconfigured)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("[main] no LLM configured, using mock client")
		llm = ai.NewMock()
	}

	// 5) Knowledge base
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbServiceImp.New(kbRepo, extract.Default())

	// 6) Chat pipeline + LINE transport
	chatSvc := chatServiceImp.New(kbSvc, llm)
	bot := line.NewClient(cfg.ChannelAccessToken)
	webhookCtrl := chatCtrlImp.New(chatSvc, bot, cfg.ChannelSecret)

	// 7) Admin surface
	adminCtrl := adminCtrlImp.New(kbSvc)
	authCtrl := authCtrlImp.NewAuthController(cfg.AdminPassword, cfg.SessionSecret)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(e, webhookCtrl, authCtrl, adminCtrl, hCtrl, cfg.SessionSecret)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
