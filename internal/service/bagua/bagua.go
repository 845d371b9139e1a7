package service

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/model"
	"context"
	"fmt"
	"net/http"
)

type baguaResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data string `json:"data"`
}

const (
	DeadLinkMessage    = "周末不更新，请微博吃瓜"
	UnavailableMessage = "暂无明星八卦，吃瓜莫急"
)

// GetBagua 明星八卦图片，图片链接需要探活
func GetBagua(ctx context.Context, c *client.Client) (string, error) {
	var resp baguaResponse
	err := c.DoJSON(ctx, client.Request{
		Method: http.MethodPost,
		URL:    client.Join(c.Endpoints.Qqsuu, "mingxingbagua/apis.php?type=json"),
		Form:   map[string]string{"format": "json"},
	}, &resp)
	if err != nil {
		return "", model.NewFetchError(model.ReasonTransport, UnavailableMessage, err)
	}
	if resp.Code != http.StatusOK {
		return "", model.NewFetchError(model.ReasonUpstream, UnavailableMessage, fmt.Errorf("code %d: %s", resp.Code, resp.Msg))
	}
	if !c.IsAlive(ctx, resp.Data) {
		return "", model.NewFetchError(model.ReasonDeadLink, DeadLinkMessage, nil)
	}
	return resp.Data, nil
}
