package service

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/log"
	"WhaleBot/internal/model"
	"WhaleBot/internal/util"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const timeLayout = "2006-01-02 15:04:05"

const (
	DateToday  = "今天"
	formatHint = "输入格式不正确。请输入<城市+(今天|明天|后天|七天)+天气>，例如 '广州天气'"
)

type CurrentWeatherResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		City       string          `json:"city"`
		Province   string          `json:"province"`
		UpdateTime string          `json:"update_time"`
		Weather    string          `json:"weather"`
		MinTemp    util.FlexString `json:"min_temp"`
		Temp       util.FlexString `json:"temp"`
		MaxTemp    util.FlexString `json:"max_temp"`
		Wind       string          `json:"wind"`
		Humidity   util.FlexString `json:"humidity"`
		Sunrise    string          `json:"sunrise"`
		Sunset     string          `json:"sunset"`
		Index      struct {
			Chuangyi *struct {
				Level   string `json:"level"`
				Content string `json:"content"`
			} `json:"chuangyi"`
		} `json:"index"`
		Hour []struct {
			Time string          `json:"time"`
			Wea  string          `json:"wea"`
			Temp util.FlexString `json:"temp"`
		} `json:"hour"`
		Alarm []struct {
			Title   string `json:"title"`
			Level   string `json:"level"`
			Type    string `json:"type"`
			Tips    string `json:"tips"`
			Content string `json:"content"`
		} `json:"alarm"`
	} `json:"data"`
}

type ForecastWeatherResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data []struct {
		City      string          `json:"city"`
		Province  string          `json:"province"`
		Date      string          `json:"date"`
		WeaDay    string          `json:"wea_day"`
		WeaNight  string          `json:"wea_night"`
		TempDay   util.FlexString `json:"temp_day"`
		TempNight util.FlexString `json:"temp_night"`
		Sunrise   string          `json:"sunrise"`
		Sunset    string          `json:"sunset"`
		Index     []struct {
			Name  string `json:"name"`
			Level string `json:"level"`
		} `json:"index"`
	} `json:"data"`
}

// Query 一次天气查询，Content 为用户原始输入
type Query struct {
	Token    string
	CityOrId string
	Date     string
	Content  string
}

// IsFutureDate 明天、后天、七天走七日预报接口
func IsFutureDate(date string) bool {
	switch date {
	case "明天", "后天", "七天", "7天":
		return true
	}
	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// GetWeather 重名城市直接返回候选列表，不请求接口
func GetWeather(ctx context.Context, c *client.Client, cities CityTable, q Query) (string, error) {
	if q.Date == "" {
		q.Date = DateToday
	}
	path := "tianqi"
	if IsFutureDate(q.Date) {
		path = "tianqi/seven"
	}
	params := map[string]string{"token": q.Token}
	numeric := isNumeric(q.CityOrId)
	if numeric {
		params["city_id"] = q.CityOrId
	} else {
		candidates := cities.Lookup(q.CityOrId)
		switch {
		case len(candidates) > 1:
			return formatCandidates(q.CityOrId, candidates), nil
		case len(candidates) == 1:
			params["city_id"] = candidates[0].CityId
		default:
			params["city"] = q.CityOrId
		}
	}

	req := client.Request{
		Method: http.MethodGet,
		URL:    client.Join(c.Endpoints.Alapi, path),
		Query:  params,
	}
	if IsFutureDate(q.Date) {
		var resp ForecastWeatherResponse
		if err := c.DoJSON(ctx, req, &resp); err != nil {
			return "", errorOccurred(err)
		}
		if resp.Code != http.StatusOK {
			return "", upstreamFailed(resp.Code, resp.Msg)
		}
		return processFutureWeather(&resp, q.Date), nil
	}
	var resp CurrentWeatherResponse
	if err := c.DoJSON(ctx, req, &resp); err != nil {
		return "", errorOccurred(err)
	}
	if resp.Code != http.StatusOK {
		return "", upstreamFailed(resp.Code, resp.Msg)
	}
	if !numeric && !strings.Contains(q.Content, resp.Data.City) {
		log.Log.WithFields(logrus.Fields{
			"city":    resp.Data.City,
			"content": q.Content,
		}).Warn("返回城市与输入不符")
		return formatHint, nil
	}
	output, err := processCurrentWeather(&resp)
	if err != nil {
		return "", errorOccurred(err)
	}
	return output, nil
}

func errorOccurred(err error) error {
	return model.NewFetchError(model.ReasonTransport, fmt.Sprintf("发生错误：%v", err), err)
}

func upstreamFailed(code int, msg string) error {
	return model.NewFetchError(model.ReasonUpstream, "天气获取失败，请检查城市名称或 token 是否有误",
		fmt.Errorf("code %d: %s", code, msg))
}

func formatCandidates(city string, candidates []model.CityCandidate) string {
	lines := lo.Map(candidates, func(entry model.CityCandidate, idx int) string {
		return fmt.Sprintf("%d) %s--%s, ID: %s", idx+1, entry.Province, entry.Leader, entry.CityId)
	})
	return fmt.Sprintf("找到 <%s> 多个数据：\n%s\n请使用 ID 进行查询，发送 'id+天气'", city, strings.Join(lines, "\n"))
}

func processFutureWeather(resp *ForecastWeatherResponse, date string) string {
	var output []string
	for num, d := range resp.Data {
		if num == 0 {
			output = append(output, fmt.Sprintf("🏙️ 城市: %s (%s)\n", d.City, d.Province))
		}
		if date == "明天" && num != 1 {
			continue
		}
		if date == "后天" && num != 2 {
			continue
		}
		info := []string{
			fmt.Sprintf("🕒 日期: %s", d.Date),
			fmt.Sprintf("🌦️ 天气: 🌞%s| 🌛%s", d.WeaDay, d.WeaNight),
			fmt.Sprintf("🌡️ 温度: 🌞%s℃| 🌛%s℃", d.TempDay, d.TempNight),
			fmt.Sprintf("🌅 日出/日落: %s / %s", d.Sunrise, d.Sunset),
		}
		for _, i := range d.Index {
			info = append(info, fmt.Sprintf("%s: %s", i.Name, i.Level))
		}
		output = append(output, strings.Join(info, "\n")+"\n")
	}
	return strings.Join(output, "\n")
}

func processCurrentWeather(resp *CurrentWeatherResponse) (string, error) {
	data := resp.Data
	updateTime, err := time.Parse(timeLayout, data.UpdateTime)
	if err != nil {
		return "", fmt.Errorf("parse update_time %q: %w", data.UpdateTime, err)
	}
	var output []string

	basic := fmt.Sprintf("🏙️ 城市: %s (%s)\n", data.City, data.Province)
	basic += fmt.Sprintf("🕒 更新: %s\n", updateTime.Format("01-02 15:04"))
	basic += fmt.Sprintf("🌦️ 天气: %s\n", data.Weather)
	basic += fmt.Sprintf("🌡️ 温度: ↓%s℃| 现%s℃| ↑%s℃\n", data.MinTemp, data.Temp, data.MaxTemp)
	basic += fmt.Sprintf("🌬️ 风向: %s\n", data.Wind)
	basic += fmt.Sprintf("💦 湿度: %s\n", data.Humidity)
	basic += fmt.Sprintf("🌅 日出/日落: %s / %s\n", data.Sunrise, data.Sunset)
	output = append(output, basic)

	level, content := "未知", "未知"
	if cy := data.Index.Chuangyi; cy != nil {
		if cy.Level != "" {
			level = cy.Level
		}
		if cy.Content != "" {
			content = cy.Content
		}
	}
	output = append(output, fmt.Sprintf("👚 穿衣指数: %s - %s\n", level, content))

	tenHoursLater := updateTime.Add(10 * time.Hour)
	var future []string
	for _, hour := range data.Hour {
		forecastTime, err := time.Parse(timeLayout, hour.Time)
		if err != nil {
			return "", fmt.Errorf("parse hour time %q: %w", hour.Time, err)
		}
		if forecastTime.After(updateTime) && !forecastTime.After(tenHoursLater) {
			future = append(future, fmt.Sprintf("     %02d:00 - %s - %s°C", forecastTime.Hour(), hour.Wea, hour.Temp))
		}
	}
	output = append(output, "⏳ 未来10小时的天气预报:\n"+strings.Join(future, "\n"))

	if len(data.Alarm) > 0 {
		alarm := "⚠️ 预警信息:\n"
		for _, a := range data.Alarm {
			alarm += fmt.Sprintf("🔴 标题: %s\n🟠 等级: %s\n🟡 类型: %s\n🟢 提示: \n%s\n🔵 内容: \n%s\n\n",
				a.Title, a.Level, a.Type, a.Tips, a.Content)
		}
		output = append(output, alarm)
	}
	return strings.Join(output, "\n"), nil
}
