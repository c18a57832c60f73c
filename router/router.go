package router

import (
	"github.com/labstack/echo/v4"

	"ribbon/pkg/middleware"
)

func New(
	e *echo.Echo,
	webhookCtrl interface{ Callback(echo.Context) error },
	authCtrl interface{ Login(echo.Context) error },
	adminCtrl interface {
		ListFAQ(echo.Context) error
		PutFAQ(echo.Context) error
		ReplaceFAQ(echo.Context) error
		DeleteFAQ(echo.Context) error
		Questions(echo.Context) error
		DeleteQuestion(echo.Context) error
		Document(echo.Context) error
		Upload(echo.Context) error
		IngestURL(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
	sessionSecret string,
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	// LINE webhook (signature-checked inside the controller)
	e.POST("/callback", webhookCtrl.Callback)

	e.POST("/admin/login", authCtrl.Login)

	admin := e.Group("/admin", middleware.AdminSession(sessionSecret))
	admin.GET("/faq", adminCtrl.ListFAQ)
	admin.POST("/faq", adminCtrl.PutFAQ)
	admin.PUT("/faq/:keyword", adminCtrl.ReplaceFAQ)
	admin.DELETE("/faq/:keyword", adminCtrl.DeleteFAQ)

	admin.GET("/questions", adminCtrl.Questions)
	admin.DELETE("/questions/:id", adminCtrl.DeleteQuestion)

	admin.GET("/document", adminCtrl.Document)
	admin.POST("/document", adminCtrl.Upload)
	admin.POST("/document/url", adminCtrl.IngestURL)

	return e
}
