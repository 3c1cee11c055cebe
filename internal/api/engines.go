package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jetforge/fadecd/internal/controller"
	"github.com/jetforge/fadecd/internal/engines"
)

func registerEngineEndpoints(rest *echo.Echo, driver *controller.Driver) {
	group := rest.Group("/engine")

	group.GET("/", func(c echo.Context) error {
		return getEngines(c, driver)
	})
	group.GET("/:"+urlParamId+"/", func(c echo.Context) error {
		return getEngine(c, driver)
	})
}

// returns the current control state of both engines
func getEngines(c echo.Context, driver *controller.Driver) error {
	snapshot := driver.Snapshot()
	data := map[string]controller.EngineState{}
	snapshot.Engines.ForEach(func(n engines.Number, state controller.EngineState) {
		data[strconv.Itoa(n.SimIndex())] = state
	})
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getEngine(c echo.Context, driver *controller.Driver) error {
	id := c.Param(urlParamId)
	index, err := strconv.Atoi(id)
	if err != nil || (index != engines.Engine1.SimIndex() && index != engines.Engine2.SimIndex()) {
		return returnNotFound(c, id)
	}

	state := driver.Snapshot().Engines.Get(engines.Number(index))
	return c.JSONPretty(http.StatusOK, state, indentationChar)
}
