package service

import (
	"WhaleBot/internal/log"
	"WhaleBot/internal/model"
	"WhaleBot/internal/util"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// GetEvent 读取并解析上报事件
func GetEvent(c echo.Context) (*model.Event, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		log.Log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("读取请求体失败")
		return nil, err
	}
	event, err := util.ParseEvent(body)
	if err != nil {
		log.Log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("解析事件失败")
		return nil, err
	}
	return event, nil
}
