package service

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/model"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/mo"
)

// FreeNewsResponse vvhan 60s 接口，data 最后一条是微语
type FreeNewsResponse struct {
	Success bool     `json:"success"`
	Time    []string `json:"time"`
	Data    []string `json:"data"`
	ImgUrl  string   `json:"imgUrl"`
}

// PaidNewsResponse alapi zaobao 接口
type PaidNewsResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Date  string   `json:"date"`
		News  []string `json:"news"`
		Weiyu string   `json:"weiyu"`
		Image string   `json:"image"`
	} `json:"data"`
}

const (
	freeFailMessage      = `早报信息获取失败，可配置"alapi token"切换至 Alapi 服务，或者稍后再试`
	paidFailMessage      = "早报获取失败，请检查 token 是否有误"
	paidTransportMessage = "早报获取失败"
)

// GetMorningNews 有 token 走 alapi，没有走 vvhan；textEnabled 时返回文字版加图片链接
func GetMorningNews(ctx context.Context, c *client.Client, token mo.Option[string], textEnabled bool) (string, error) {
	if t, ok := token.Get(); ok {
		return getPaidNews(ctx, c, t, textEnabled)
	}
	return getFreeNews(ctx, c, textEnabled)
}

func getFreeNews(ctx context.Context, c *client.Client, textEnabled bool) (string, error) {
	var resp FreeNewsResponse
	err := c.DoJSON(ctx, client.Request{
		Method: http.MethodPost,
		URL:    client.Join(c.Endpoints.Vvhan, "60s?type=json"),
		Form:   map[string]string{"format": "json"},
	}, &resp)
	if err != nil {
		return "", model.NewFetchError(model.ReasonTransport, model.DefaultFailureMessage, err)
	}
	if !resp.Success {
		return "", model.NewFetchError(model.ReasonUpstream, freeFailMessage, nil)
	}
	if !textEnabled {
		return resp.ImgUrl, nil
	}
	date := time.Now().Format("2006年01月02日")
	if len(resp.Time) > 0 {
		date = resp.Time[0]
	}
	var items []string
	var weiyu string
	if n := len(resp.Data); n > 0 {
		items = resp.Data[:n-1]
		weiyu = strings.TrimSpace(resp.Data[n-1])
	}
	lines := make([]string, 0, len(items))
	for idx, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", idx+1, item))
	}
	return renderNews(date, lines, weiyu, resp.ImgUrl), nil
}

func getPaidNews(ctx context.Context, c *client.Client, token string, textEnabled bool) (string, error) {
	var resp PaidNewsResponse
	err := c.DoJSON(ctx, client.Request{
		Method: http.MethodPost,
		URL:    client.Join(c.Endpoints.Alapi, "zaobao"),
		Form: map[string]string{
			"token":  token,
			"format": "json",
		},
	}, &resp)
	if err != nil {
		return "", model.NewFetchError(model.ReasonTransport, paidTransportMessage, err)
	}
	if resp.Code != http.StatusOK {
		return "", model.NewFetchError(model.ReasonUpstream, paidFailMessage, fmt.Errorf("code %d: %s", resp.Code, resp.Msg))
	}
	if !textEnabled {
		return resp.Data.Image, nil
	}
	// alapi 的新闻条目自带序号
	return renderNews(resp.Data.Date, resp.Data.News, resp.Data.Weiyu, resp.Data.Image), nil
}

func renderNews(date string, lines []string, weiyu, image string) string {
	header := fmt.Sprintf("☕ %s  今日早报\n", date)
	return fmt.Sprintf("%s%s\n\n%s\n\n 图片url：%s", header, strings.Join(lines, "\n"), weiyu, image)
}
