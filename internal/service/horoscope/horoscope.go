package service

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/model"
	"WhaleBot/internal/util"
	"context"
	"fmt"
	"net/http"

	"github.com/samber/mo"
)

type fiveIndex struct {
	All    util.FlexString `json:"all"`
	Love   util.FlexString `json:"love"`
	Work   util.FlexString `json:"work"`
	Money  util.FlexString `json:"money"`
	Health util.FlexString `json:"health"`
}

// FreeHoroscopeResponse vvhan 星座运势
type FreeHoroscopeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Title string `json:"title"`
		Time  string `json:"time"`
		Todo  struct {
			Yi string `json:"yi"`
			Ji string `json:"ji"`
		} `json:"todo"`
		Index              fiveIndex       `json:"index"`
		LuckyNumber        util.FlexString `json:"luckynumber"`
		LuckyColor         string          `json:"luckycolor"`
		LuckyConstellation string          `json:"luckyconstellation"`
		ShortComment       string          `json:"shortcomment"`
		FortuneText        fiveIndex       `json:"fortunetext"`
	} `json:"data"`
}

// PaidHoroscopeDay alapi star 接口 data.day 的内容
type PaidHoroscopeDay struct {
	Date        string          `json:"date"`
	Yi          string          `json:"yi"`
	Ji          string          `json:"ji"`
	All         util.FlexString `json:"all"`
	Love        util.FlexString `json:"love"`
	Work        util.FlexString `json:"work"`
	Money       util.FlexString `json:"money"`
	Health      util.FlexString `json:"health"`
	Notice      string          `json:"notice"`
	LuckyNumber util.FlexString `json:"lucky_number"`
	LuckyColor  string          `json:"lucky_color"`
	LuckyStar   string          `json:"lucky_star"`
	AllText     string          `json:"all_text"`
	LoveText    string          `json:"love_text"`
	WorkText    string          `json:"work_text"`
	MoneyText   string          `json:"money_text"`
	HealthText  string          `json:"health_text"`
}

// PaidHoroscopeResponse alapi star 接口
type PaidHoroscopeResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Day PaidHoroscopeDay `json:"day"`
	} `json:"data"`
}

const (
	freeFailMessage = `星座信息获取失败，可配置"alapi token"切换至 Alapi 服务，或者稍后再试`
	paidFailMessage = "星座获取信息获取失败，请检查 token 是否有误"
)

// GetHoroscope signID 为 SignID 返回的英文参数
func GetHoroscope(ctx context.Context, c *client.Client, token mo.Option[string], signID string) (string, error) {
	if t, ok := token.Get(); ok {
		return getPaidHoroscope(ctx, c, t, signID)
	}
	return getFreeHoroscope(ctx, c, signID)
}

func getFreeHoroscope(ctx context.Context, c *client.Client, signID string) (string, error) {
	var resp FreeHoroscopeResponse
	err := c.DoJSON(ctx, client.Request{
		Method: http.MethodGet,
		URL:    client.Join(c.Endpoints.Vvhan, "horoscope"),
		Query: map[string]string{
			"type": signID,
			"time": "today",
		},
	}, &resp)
	if err != nil {
		return "", model.NewFetchError(model.ReasonTransport, model.DefaultFailureMessage, err)
	}
	if !resp.Success {
		return "", model.NewFetchError(model.ReasonUpstream, freeFailMessage, nil)
	}
	d := resp.Data
	return fmt.Sprintf("%s (%s):\n\n"+
		"💡【每日建议】\n宜：%s\n忌：%s\n\n"+
		"📊【运势指数】\n总运势：%s\n爱情：%s\n工作：%s\n财运：%s\n健康：%s\n\n"+
		"🍀【幸运提示】\n数字：%s\n颜色：%s\n星座：%s\n\n"+
		"✍【简评】\n%s\n\n"+
		"📜【详细运势】\n总运：%s\n爱情：%s\n工作：%s\n财运：%s\n健康：%s\n",
		d.Title, d.Time,
		d.Todo.Yi, d.Todo.Ji,
		d.Index.All, d.Index.Love, d.Index.Work, d.Index.Money, d.Index.Health,
		d.LuckyNumber, d.LuckyColor, d.LuckyConstellation,
		d.ShortComment,
		d.FortuneText.All, d.FortuneText.Love, d.FortuneText.Work, d.FortuneText.Money, d.FortuneText.Health,
	), nil
}

func getPaidHoroscope(ctx context.Context, c *client.Client, token, signID string) (string, error) {
	var resp PaidHoroscopeResponse
	err := c.DoJSON(ctx, client.Request{
		Method: http.MethodPost,
		URL:    client.Join(c.Endpoints.Alapi, "star"),
		Form: map[string]string{
			"token": token,
			"star":  signID,
		},
	}, &resp)
	if err != nil {
		return "", model.NewFetchError(model.ReasonTransport, model.DefaultFailureMessage, err)
	}
	if resp.Code != http.StatusOK {
		return "", model.NewFetchError(model.ReasonUpstream, paidFailMessage, fmt.Errorf("code %d: %s", resp.Code, resp.Msg))
	}
	d := resp.Data.Day
	return fmt.Sprintf("📅 日期：%s\n\n"+
		"💡【每日建议】\n宜：%s\n忌：%s\n\n"+
		"📊【运势指数】\n总运势：%s\n爱情：%s\n工作：%s\n财运：%s\n健康：%s\n\n"+
		"🔔【提醒】：%s\n\n"+
		"🍀【幸运提示】\n数字：%s\n颜色：%s\n星座：%s\n\n"+
		"✍【简评】\n总运：%s\n爱情：%s\n工作：%s\n财运：%s\n健康：%s\n",
		d.Date,
		d.Yi, d.Ji,
		d.All, d.Love, d.Work, d.Money, d.Health,
		d.Notice,
		d.LuckyNumber, d.LuckyColor, d.LuckyStar,
		d.AllText, d.LoveText, d.WorkText, d.MoneyText, d.HealthText,
	), nil
}
