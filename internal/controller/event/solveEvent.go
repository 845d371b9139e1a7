package controller

import (
	"WhaleBot/internal/log"
	"WhaleBot/internal/model"
	eventService "WhaleBot/internal/service/event"
	"WhaleBot/internal/util"
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// MessageParser 指令分发，由 message.Dispatcher 实现
type MessageParser interface {
	MessageParse(ctx context.Context, content string) (model.Reply, bool)
}

// SolveEvent 处理 OneBot 上报，只回复命中指令的消息事件
func SolveEvent(parser MessageParser) echo.HandlerFunc {
	return func(c echo.Context) error {
		event, err := eventService.GetEvent(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": err.Error(),
			})
		}
		if event.PostType != "message" {
			return c.NoContent(http.StatusNoContent)
		}
		eventId := uuid.NewString()
		entry := log.Log.WithFields(logrus.Fields{
			"event_id":     eventId,
			"message_type": event.MessageType,
			"user_id":      event.UserId,
			"group_id":     event.GroupId,
		})
		reply, ok := parser.MessageParse(c.Request().Context(), util.StripAtSelf(event.Text(), event.SelfId))
		if !ok {
			return c.NoContent(http.StatusNoContent)
		}
		entry.WithFields(logrus.Fields{
			"kind": reply.Kind.String(),
		}).Info("回复消息")
		return c.JSON(http.StatusOK, map[string]interface{}{
			"reply":       util.CQCode(reply),
			"auto_escape": reply.Kind == model.ReplyText,
		})
	}
}
