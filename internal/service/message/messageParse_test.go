package service

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/model"
	helpService "WhaleBot/internal/service/help"
	hotService "WhaleBot/internal/service/hot"
	weatherService "WhaleBot/internal/service/weather"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream 按路径返回固定响应，并记录访问过的路径
type fakeUpstream struct {
	mu     sync.Mutex
	hits   []string
	bodies map[string]string
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits = append(f.hits, r.Method+" "+r.URL.Path)
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	body, ok := f.bodies[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, _ = w.Write([]byte(strings.ReplaceAll(body, "{host}", "http://"+r.Host)))
}

func (f *fakeUpstream) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.hits...)
}

func newDispatcher(t *testing.T, bodies map[string]string, token mo.Option[string]) (*Dispatcher, *fakeUpstream) {
	t.Helper()
	fake := &fakeUpstream{bodies: bodies}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	c := client.New(model.Endpoints{
		Vvhan:    server.URL + "/vvhan",
		Alapi:    server.URL + "/alapi",
		Qqsuu:    server.URL + "/qqsuu",
		Leetcode: server.URL + "/graphql",
	}, 5*time.Second, "")
	cities := weatherService.NewCityTable(map[string][]model.CityCandidate{
		"朝阳": {
			{Province: "北京", Leader: "北京", CityId: "101010300"},
			{Province: "辽宁", Leader: "朝阳", CityId: "101071201"},
		},
	})
	return NewDispatcher(c, cities, token, false), fake
}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		content string
		want    model.Intent
		ok      bool
	}{
		{"早报", model.Intent{Kind: model.IntentMorningNews}, true},
		{" 摸鱼 ", model.Intent{Kind: model.IntentIdleCalendarImage}, true},
		{"摸鱼视频", model.Intent{Kind: model.IntentIdleCalendarVideo}, true},
		{"每日一题", model.Intent{Kind: model.IntentDailyQuestion}, true},
		{"八卦", model.Intent{Kind: model.IntentCelebrityGossip}, true},
		{"帮助", model.Intent{Kind: model.IntentHelp}, true},
		{"白羊座", model.Intent{Kind: model.IntentHoroscope, Sign: "白羊座", SignID: "aries"}, true},
		// 星座规则要求两个汉字，字母不会命中；未收录的汉字星座名见 "黄金座"
		{"xx座", model.Intent{}, false},
		{"黄金座", model.Intent{Kind: model.IntentHoroscope, Sign: "黄金座"}, true},
		{"微博热榜", model.Intent{Kind: model.IntentHotTrend, Category: "微博", CategoryParam: "wbHot"}, true},
		{"黑洞热榜", model.Intent{Kind: model.IntentHotTrend, Category: "黑洞"}, true},
		{"北京天气", model.Intent{Kind: model.IntentWeather, City: "北京", Date: "今天"}, true},
		{"广州市明天天气", model.Intent{Kind: model.IntentWeather, City: "广州", Date: "明天"}, true},
		{"上海七天的天气", model.Intent{Kind: model.IntentWeather, City: "上海", Date: "七天"}, true},
		{"101010100天气", model.Intent{Kind: model.IntentWeather, City: "101010100", Date: "今天"}, true},
		{"天气", model.Intent{}, false},
		{"你好", model.Intent{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseIntent(tt.content)
		assert.Equal(t, tt.ok, ok, tt.content)
		assert.Equal(t, tt.want, got, tt.content)
	}
}

func TestMessageParseGuidanceWithoutRequests(t *testing.T) {
	d, fake := newDispatcher(t, nil, mo.None[string]())
	ctx := context.Background()

	reply, ok := d.MessageParse(ctx, "黄金座")
	require.True(t, ok)
	assert.Equal(t, model.TextReply("请重新输入星座名称"), reply)

	reply, ok = d.MessageParse(ctx, "黑洞热榜")
	require.True(t, ok)
	assert.Equal(t, model.TextReply(hotService.SupportedHelp()), reply)

	reply, ok = d.MessageParse(ctx, "北京天气")
	require.True(t, ok)
	assert.Equal(t, model.TextReply("Please configure the 'alapi_token' first."), reply)

	reply, ok = d.MessageParse(ctx, "帮助")
	require.True(t, ok)
	assert.Equal(t, model.TextReply(helpService.Text(true)), reply)

	_, ok = d.MessageParse(ctx, "随便聊聊")
	assert.False(t, ok)

	assert.Empty(t, fake.calls())
}

func TestMessageParseAmbiguousCity(t *testing.T) {
	d, fake := newDispatcher(t, nil, mo.Some("tk"))

	reply, ok := d.MessageParse(context.Background(), "朝阳区天气")
	require.True(t, ok)
	assert.Equal(t, model.ReplyText, reply.Kind)
	assert.Equal(t, "找到 <朝阳> 多个数据：\n"+
		"1) 北京--北京, ID: 101010300\n"+
		"2) 辽宁--朝阳, ID: 101071201\n"+
		"请使用 ID 进行查询，发送 'id+天气'", reply.Content)
	assert.Empty(t, fake.calls())
}

func TestMessageParseMediaReplies(t *testing.T) {
	d, fake := newDispatcher(t, map[string]string{
		"/vvhan/moyu":                     `{"success":true,"url":"https://img.example.com/moyu.png"}`,
		"/qqsuu/moyuribaoshipin/apis.php": `{"code":200,"data":"{host}/video.mp4"}`,
		"/qqsuu/mingxingbagua/apis.php":   `{"code":500,"msg":"down"}`,
		"/vvhan/60s":                      `{"success":true,"time":["2024-05-01"],"data":["a","b"],"imgUrl":"not a url"}`,
		"/vvhan/hotlist/wbHot":            `{"success":true,"update_time":"2024-05-01 08:00","data":[{"title":"t","hot":"1万","url":"https://s.weibo.com/1"}]}`,
	}, mo.None[string]())
	ctx := context.Background()

	reply, ok := d.MessageParse(ctx, "摸鱼")
	require.True(t, ok)
	assert.Equal(t, model.Reply{Kind: model.ReplyImageURL, Content: "https://img.example.com/moyu.png"}, reply)

	reply, ok = d.MessageParse(ctx, "摸鱼视频")
	require.True(t, ok)
	assert.Equal(t, model.ReplyVideoURL, reply.Kind)
	assert.True(t, strings.HasSuffix(reply.Content, "/video.mp4"))

	reply, ok = d.MessageParse(ctx, "八卦")
	require.True(t, ok)
	assert.Equal(t, model.TextReply("暂无明星八卦，吃瓜莫急"), reply)

	// 早报图片链接不合法时按文本回复
	reply, ok = d.MessageParse(ctx, "早报")
	require.True(t, ok)
	assert.Equal(t, model.TextReply("not a url"), reply)

	reply, ok = d.MessageParse(ctx, "微博热榜")
	require.True(t, ok)
	assert.Equal(t, model.ReplyText, reply.Kind)
	assert.True(t, strings.HasPrefix(reply.Content, "更新时间：2024-05-01 08:00\n"))

	assert.Contains(t, fake.calls(), "GET /vvhan/hotlist/wbHot")
}

func TestMessageParseDailyQuestion(t *testing.T) {
	d, _ := newDispatcher(t, map[string]string{
		"/graphql": `{"data":{"activeDailyCodingChallengeQuestion":{"question":{"title":"Two Sum","titleSlug":"two-sum","questionFrontendId":"1"}}}}`,
	}, mo.None[string]())

	reply, ok := d.MessageParse(context.Background(), "每日一题")
	require.True(t, ok)
	assert.Equal(t, model.TextReply("今天的每日一题是：1. Two Sum\n题目链接：https://leetcode.com/problems/two-sum"), reply)

	empty, _ := newDispatcher(t, nil, mo.None[string]())
	reply, ok = empty.MessageParse(context.Background(), "每日一题")
	require.True(t, ok)
	assert.Equal(t, model.TextReply("无法获取每日一题，请稍后再试。"), reply)
}

func TestMessageParseWeather(t *testing.T) {
	d, fake := newDispatcher(t, map[string]string{
		"/alapi/tianqi": `{"code":200,"data":{"city":"北京","province":"北京","update_time":"2024-05-01 08:00:00","weather":"晴"}}`,
	}, mo.Some("tk"))

	reply, ok := d.MessageParse(context.Background(), "北京天气")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(reply.Content, "🏙️ 城市: 北京"))
	assert.Equal(t, []string{"GET /alapi/tianqi"}, fake.calls())
}
