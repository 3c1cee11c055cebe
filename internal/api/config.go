package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"

	"github.com/jetforge/fadecd/internal/configuration"
)

func registerConfigEndpoints(rest *echo.Echo) {
	group := rest.Group("/config")

	group.GET("/", getConfig)
}

// returns a deep copy of the active configuration, so callers can
// never mutate the running daemon through shared pointers
func getConfig(c echo.Context) error {
	var config configuration.Configuration
	if err := reprint.FromTo(&configuration.CurrentConfig, &config); err != nil {
		return c.JSONPretty(http.StatusInternalServerError, &Result{
			Name:    "Unknown Error",
			Message: err.Error(),
		}, indentationChar)
	}
	return c.JSONPretty(http.StatusOK, config, indentationChar)
}
