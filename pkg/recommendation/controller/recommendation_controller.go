package controller

import "github.com/labstack/echo/v4"

type RecommendationController interface {
	Show(c echo.Context) error
	List(c echo.Context) error
	Summary(c echo.Context) error
	Export(c echo.Context) error
}
