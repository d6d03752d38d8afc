package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	farmCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		Options(echo.Context) error
	},
	recCtrl interface {
		Show(echo.Context) error
		List(echo.Context) error
		Summary(echo.Context) error
		Export(echo.Context) error
	},
	contactCtrl interface{ Create(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	// static paths win over /:id in echo's router
	fi := e.Group("/farm-inputs")
	fi.POST("", farmCtrl.Create)
	fi.GET("/options", farmCtrl.Options)
	fi.GET("/:id", farmCtrl.Get)

	rg := e.Group("/recommendations")
	rg.GET("", recCtrl.List)
	rg.GET("/summary", recCtrl.Summary)
	rg.GET("/export.xlsx", recCtrl.Export)
	rg.GET("/:id", recCtrl.Show)

	e.POST("/contact", contactCtrl.Create)
	return e
}
