package service

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/log"
	"WhaleBot/internal/model"
	baguaService "WhaleBot/internal/service/bagua"
	helpService "WhaleBot/internal/service/help"
	horoscopeService "WhaleBot/internal/service/horoscope"
	hotService "WhaleBot/internal/service/hot"
	leetcodeService "WhaleBot/internal/service/leetcode"
	moyuService "WhaleBot/internal/service/moyu"
	newsService "WhaleBot/internal/service/news"
	weatherService "WhaleBot/internal/service/weather"
	"WhaleBot/internal/util"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

const (
	unknownSignMessage  = "请重新输入星座名称"
	tokenMissingMessage = "Please configure the 'alapi_token' first."
	noQuestionMessage   = "无法获取每日一题，请稍后再试。"
)

var keywordIntents = []struct {
	Keyword string
	Kind    model.IntentKind
}{
	{"早报", model.IntentMorningNews},
	{"摸鱼", model.IntentIdleCalendarImage},
	{"每日一题", model.IntentDailyQuestion},
	{"摸鱼视频", model.IntentIdleCalendarVideo},
	{"八卦", model.IntentCelebrityGossip},
	{"帮助", model.IntentHelp},
}

var (
	zodiacRegex   = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}]{2}座$`)
	hotTrendRegex = regexp.MustCompile(`(.{1,6})热榜$`)
	weatherRegex  = regexp.MustCompile(`^(?:(.{2,7}?)(?:市|县|区|镇)?|(\d{7,9}))(今天|明天|后天|7天|七天)?(?:的)?天气$`)
)

// Dispatcher 把一条指令路由到对应的服务，构建后只读，可并发使用
type Dispatcher struct {
	client      *client.Client
	cities      weatherService.CityTable
	token       mo.Option[string]
	textEnabled bool
}

func NewDispatcher(c *client.Client, cities weatherService.CityTable, token mo.Option[string], textEnabled bool) *Dispatcher {
	return &Dispatcher{
		client:      c,
		cities:      cities,
		token:       token,
		textEnabled: textEnabled,
	}
}

// ParseIntent 按 关键词 > 星座 > 热榜 > 天气 的顺序匹配，第一个命中的生效
func ParseIntent(content string) (model.Intent, bool) {
	content = strings.TrimSpace(content)
	for _, k := range keywordIntents {
		if content == k.Keyword {
			return model.Intent{Kind: k.Kind}, true
		}
	}
	if intent, ok := matchZodiac(content); ok {
		return intent, true
	}
	if intent, ok := matchHotTrend(content); ok {
		return intent, true
	}
	if intent, ok := matchWeather(content); ok {
		return intent, true
	}
	return model.Intent{}, false
}

// matchZodiac 形如 "白羊座"，SignID 为空表示星座名不存在
func matchZodiac(content string) (model.Intent, bool) {
	if !zodiacRegex.MatchString(content) {
		return model.Intent{}, false
	}
	signID, _ := horoscopeService.SignID(content)
	return model.Intent{Kind: model.IntentHoroscope, Sign: content, SignID: signID}, true
}

// matchHotTrend 形如 "微博热榜"，CategoryParam 为空表示类目不支持
func matchHotTrend(content string) (model.Intent, bool) {
	matches := hotTrendRegex.FindStringSubmatch(content)
	if len(matches) < 2 {
		return model.Intent{}, false
	}
	category := strings.TrimSpace(matches[1])
	param, _ := hotService.CategoryParam(category)
	return model.Intent{Kind: model.IntentHotTrend, Category: category, CategoryParam: param}, true
}

// matchWeather 形如 "北京明天天气" 或 "101010100天气"，缺省日期为今天
func matchWeather(content string) (model.Intent, bool) {
	matches := weatherRegex.FindStringSubmatch(content)
	if matches == nil {
		return model.Intent{}, false
	}
	city := matches[1]
	if city == "" {
		city = matches[2]
	}
	date := matches[3]
	if date == "" {
		date = weatherService.DateToday
	}
	return model.Intent{Kind: model.IntentWeather, City: city, Date: date}, true
}

// MessageParse 处理一条指令，未命中任何规则时返回 false
func (d *Dispatcher) MessageParse(ctx context.Context, content string) (model.Reply, bool) {
	content = strings.TrimSpace(content)
	intent, ok := ParseIntent(content)
	if !ok {
		return model.Reply{}, false
	}
	log.Log.WithFields(logrus.Fields{
		"intent":  intent.Kind.String(),
		"content": content,
	}).Debug("指令匹配成功")

	switch intent.Kind {
	case model.IntentMorningNews:
		news, err := newsService.GetMorningNews(ctx, d.client, d.token, d.textEnabled)
		return render(intent, news, err, model.ReplyImageURL), true
	case model.IntentIdleCalendarImage:
		moyu, err := moyuService.GetMoyuCalendar(ctx, d.client)
		return render(intent, moyu, err, model.ReplyImageURL), true
	case model.IntentIdleCalendarVideo:
		video, err := moyuService.GetMoyuCalendarVideo(ctx, d.client)
		return render(intent, video, err, model.ReplyVideoURL), true
	case model.IntentCelebrityGossip:
		bagua, err := baguaService.GetBagua(ctx, d.client)
		return render(intent, bagua, err, model.ReplyImageURL), true
	case model.IntentDailyQuestion:
		question, ok := leetcodeService.GetDailyQuestion(ctx, d.client).Get()
		if !ok {
			return model.TextReply(noQuestionMessage), true
		}
		return model.TextReply(fmt.Sprintf("今天的每日一题是：%s\n题目链接：%s", question.Title, question.Url)), true
	case model.IntentHelp:
		return model.TextReply(helpService.Text(true)), true
	case model.IntentHoroscope:
		if intent.SignID == "" {
			return model.TextReply(unknownSignMessage), true
		}
		horoscope, err := horoscopeService.GetHoroscope(ctx, d.client, d.token, intent.SignID)
		return render(intent, horoscope, err, model.ReplyText), true
	case model.IntentHotTrend:
		if intent.CategoryParam == "" {
			return model.TextReply(hotService.SupportedHelp()), true
		}
		trends, err := hotService.GetHotTrends(ctx, d.client, intent.CategoryParam)
		return render(intent, trends, err, model.ReplyText), true
	case model.IntentWeather:
		token, ok := d.token.Get()
		if !ok {
			log.Log.WithFields(logrus.Fields{
				"content": content,
			}).Warn("未配置 alapi_token，无法查询天气")
			return model.TextReply(tokenMissingMessage), true
		}
		weather, err := weatherService.GetWeather(ctx, d.client, d.cities, weatherService.Query{
			Token:    token,
			CityOrId: intent.City,
			Date:     intent.Date,
			Content:  content,
		})
		return render(intent, weather, err, model.ReplyText), true
	}
	return model.Reply{}, false
}

// render 统一把服务结果转换为回复，媒体类型只在内容是合法链接时使用
func render(intent model.Intent, content string, err error, media model.ReplyKind) model.Reply {
	if err != nil {
		log.Log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"intent": intent.Kind.String(),
		}).Error("服务调用失败")
		return model.TextReply(model.UserMessage(err))
	}
	if media != model.ReplyText && util.IsValidURL(content) {
		return model.Reply{Kind: media, Content: content}
	}
	return model.TextReply(content)
}
