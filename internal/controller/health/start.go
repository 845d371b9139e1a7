package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func Start(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"reply": "Hello, here is WhaleBot!",
	})
}
