package service

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/log"
	"WhaleBot/internal/model"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// VvhanMoyuResponse vvhan 摸鱼日历
type VvhanMoyuResponse struct {
	Success bool   `json:"success"`
	Url     string `json:"url"`
}

// QqsuuResponse dayu.qqsuu.cn 系列接口的通用结构，data 为媒体链接
type QqsuuResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data string `json:"data"`
}

const (
	WeekendMessage     = "周末无需摸鱼，愉快玩耍吧"
	UnavailableMessage = "暂无可用“摸鱼”服务，认真上班"
	NoVideoMessage     = "视频版没了，看看文字版吧"
)

// GetMoyuCalendar 先取 vvhan，失败后取 qqsuu 并对图片探活
func GetMoyuCalendar(ctx context.Context, c *client.Client) (string, error) {
	form := map[string]string{"format": "json"}
	var primary VvhanMoyuResponse
	err := c.DoJSON(ctx, client.Request{
		Method: http.MethodPost,
		URL:    client.Join(c.Endpoints.Vvhan, "moyu?type=json"),
		Form:   form,
	}, &primary)
	if err == nil && primary.Success {
		return primary.Url, nil
	}
	log.Log.WithFields(logrus.Fields{
		"error": fmt.Sprint(err),
	}).Warn("摸鱼日历主接口失败，切换备用接口")

	secondary, err := fetchQqsuu(ctx, c, "moyuribao/apis.php?type=json")
	if err != nil {
		return "", model.NewFetchError(model.ReasonUnavailable, UnavailableMessage, err)
	}
	if !c.IsAlive(ctx, secondary) {
		return "", model.NewFetchError(model.ReasonDeadLink, WeekendMessage, nil)
	}
	return secondary, nil
}

// GetMoyuCalendarVideo 视频版没有备用接口
func GetMoyuCalendarVideo(ctx context.Context, c *client.Client) (string, error) {
	video, err := fetchQqsuu(ctx, c, "moyuribaoshipin/apis.php?type=json")
	if err != nil {
		return "", model.NewFetchError(model.ReasonUnavailable, NoVideoMessage, err)
	}
	if !c.IsAlive(ctx, video) {
		return "", model.NewFetchError(model.ReasonDeadLink, NoVideoMessage, nil)
	}
	return video, nil
}

var errQqsuuFailed = errors.New("qqsuu returned non-200 code")

func fetchQqsuu(ctx context.Context, c *client.Client, path string) (string, error) {
	var resp QqsuuResponse
	err := c.DoJSON(ctx, client.Request{
		Method: http.MethodPost,
		URL:    client.Join(c.Endpoints.Qqsuu, path),
		Form:   map[string]string{"format": "json"},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Code != http.StatusOK {
		return "", fmt.Errorf("%w: %d %s", errQqsuuFailed, resp.Code, resp.Msg)
	}
	return resp.Data, nil
}
