package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jetforge/fadecd/internal/controller"
)

type FadecState struct {
	Enabled bool `json:"enabled"`
}

func registerFadecEndpoints(rest *echo.Echo, driver *controller.Driver) {
	group := rest.Group("/fadec")

	group.GET("/", func(c echo.Context) error {
		return getFadecState(c, driver)
	})
	group.POST("/enable/", func(c echo.Context) error {
		return setFadecEnabled(c, driver, true)
	})
	group.POST("/disable/", func(c echo.Context) error {
		return setFadecEnabled(c, driver, false)
	})
}

func getFadecState(c echo.Context, driver *controller.Driver) error {
	return c.JSONPretty(http.StatusOK, &FadecState{Enabled: driver.FadecEnabled()}, indentationChar)
}

// switches both engines between closed-loop control and passthrough
func setFadecEnabled(c echo.Context, driver *controller.Driver, enabled bool) error {
	driver.SetFadecEnabled(enabled)
	return c.JSONPretty(http.StatusOK, &FadecState{Enabled: driver.FadecEnabled()}, indentationChar)
}
