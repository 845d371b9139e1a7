package route

import (
	controllerEvent "WhaleBot/internal/controller/event"
	controllerHealth "WhaleBot/internal/controller/health"

	"github.com/labstack/echo/v4"
)

func Route(e *echo.Echo, parser controllerEvent.MessageParser) {
	getRoute(e)
	postRoute(e, parser)
}

func getRoute(e *echo.Echo) {
	e.GET("/start", controllerHealth.Start)
}

func postRoute(e *echo.Echo, parser controllerEvent.MessageParser) {
	e.POST("/event", controllerEvent.SolveEvent(parser))
}
