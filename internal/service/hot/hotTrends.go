package service

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/model"
	"WhaleBot/internal/util"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/samber/lo"
)

type hotTrendType struct {
	Name  string
	Param string
}

// 顺序即帮助文案中的展示顺序
var hotTrendTypes = []hotTrendType{
	{"微博", "wbHot"},
	{"虎扑", "huPu"},
	{"知乎", "zhihuHot"},
	{"知乎日报", "zhihuDay"},
	{"哔哩哔哩", "bili"},
	{"36氪", "36Ke"},
	{"抖音", "douyinHot"},
	{"IT", "itNews"},
	{"虎嗅", "huXiu"},
	{"产品经理", "woShiPm"},
	{"头条", "toutiao"},
	{"百度", "baiduRD"},
	{"豆瓣", "douban"},
}

var hotTrendParams = lo.SliceToMap(hotTrendTypes, func(t hotTrendType) (string, string) {
	return t.Name, t.Param
})

const maxTopics = 15

// HotTrendResponse vvhan 热榜
type HotTrendResponse struct {
	Success    bool   `json:"success"`
	UpdateTime string `json:"update_time"`
	Data       []struct {
		Title string           `json:"title"`
		Hot   *util.FlexString `json:"hot"`
		Url   string           `json:"url"`
	} `json:"data"`
}

// CategoryParam 热榜中文类目转接口参数
func CategoryParam(name string) (string, bool) {
	param, ok := hotTrendParams[name]
	return param, ok
}

// SupportedHelp 类目不支持时的提示
func SupportedHelp() string {
	names := lo.Map(hotTrendTypes, func(t hotTrendType, _ int) string {
		return t.Name
	})
	return fmt.Sprintf("👉 已支持的类型有：\n\n    %s\n\n📝 请按照以下格式发送：\n    类型+热榜  例如：微博热榜",
		strings.Join(names, "/"))
}

// GetHotTrends param 必须来自 CategoryParam
func GetHotTrends(ctx context.Context, c *client.Client, param string) (string, error) {
	var resp HotTrendResponse
	err := c.DoJSON(ctx, client.Request{
		Method:  http.MethodGet,
		URL:     client.Join(c.Endpoints.Vvhan, "hotlist/"+param),
		Headers: map[string]string{"User-Agent": client.BrowserUserAgent},
	}, &resp)
	if err != nil {
		return "", model.NewFetchError(model.ReasonTransport, model.DefaultFailureMessage, err)
	}
	if !resp.Success {
		return "", model.NewFetchError(model.ReasonUpstream, "热榜获取失败，请稍后再试", nil)
	}
	output := []string{fmt.Sprintf("更新时间：%s\n", resp.UpdateTime)}
	topics := resp.Data
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	for i, topic := range topics {
		hot := "无热度参数, 0"
		if topic.Hot != nil {
			hot = topic.Hot.String()
		}
		output = append(output, fmt.Sprintf("%d. %s (%s 浏览)\nURL: %s\n", i+1, topic.Title, hot, topic.Url))
	}
	return strings.Join(output, "\n"), nil
}
