package service

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/model"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignID(t *testing.T) {
	id, ok := SignID("白羊座")
	assert.True(t, ok)
	assert.Equal(t, "aries", id)

	id, ok = SignID("双鱼座")
	assert.True(t, ok)
	assert.Equal(t, "pisces", id)

	_, ok = SignID("xx座")
	assert.False(t, ok)
	assert.Len(t, zodiacMapping, 12)
}

func newHoroscopeClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return client.New(model.Endpoints{
		Vvhan: server.URL + "/vvhan",
		Alapi: server.URL + "/alapi",
	}, 5*time.Second, "")
}

func TestFreeHoroscope(t *testing.T) {
	c := newHoroscopeClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vvhan/horoscope", r.URL.Path)
		assert.Equal(t, "aries", r.URL.Query().Get("type"))
		assert.Equal(t, "today", r.URL.Query().Get("time"))
		_, _ = w.Write([]byte(`{"success":true,"data":{"title":"白羊座今日运势","time":"2024-05-01",
			"todo":{"yi":"运动","ji":"熬夜"},
			"index":{"all":"85%","love":"80%","work":"75%","money":"70%","health":"90%"},
			"luckynumber":7,"luckycolor":"红色","luckyconstellation":"狮子座",
			"shortcomment":"状态不错",
			"fortunetext":{"all":"整体顺利","love":"甜蜜","work":"高效","money":"稳定","health":"良好"}}}`))
	})

	got, err := GetHoroscope(context.Background(), c, mo.None[string](), "aries")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "白羊座今日运势 (2024-05-01):\n\n💡【每日建议】\n宜：运动\n忌：熬夜\n\n"))
	assert.Contains(t, got, "总运势：85%\n爱情：80%\n工作：75%\n财运：70%\n健康：90%\n\n")
	assert.Contains(t, got, "🍀【幸运提示】\n数字：7\n颜色：红色\n星座：狮子座\n\n")
	assert.Contains(t, got, "✍【简评】\n状态不错\n\n")
	assert.True(t, strings.HasSuffix(got, "📜【详细运势】\n总运：整体顺利\n爱情：甜蜜\n工作：高效\n财运：稳定\n健康：良好\n"))
}

func TestFreeHoroscopeFailure(t *testing.T) {
	c := newHoroscopeClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	})

	_, err := GetHoroscope(context.Background(), c, mo.None[string](), "aries")
	require.Error(t, err)
	assert.Equal(t, freeFailMessage, model.UserMessage(err))
}

func TestPaidHoroscope(t *testing.T) {
	c := newHoroscopeClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alapi/star", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostForm.Get("token"))
		assert.Equal(t, "leo", r.PostForm.Get("star"))
		_, _ = w.Write([]byte(`{"code":200,"data":{"day":{"date":"2024-05-01","yi":"出行","ji":"争吵",
			"all":"90%","love":"85%","work":"80%","money":"75%","health":"95%",
			"notice":"注意休息","lucky_number":"3","lucky_color":"金色","lucky_star":"射手座",
			"all_text":"总运佳","love_text":"桃花旺","work_text":"有突破","money_text":"小有进账","health_text":"精力充沛"}}}`))
	})

	got, err := GetHoroscope(context.Background(), c, mo.Some("secret"), "leo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "📅 日期：2024-05-01\n\n"))
	assert.Contains(t, got, "🔔【提醒】：注意休息\n\n")
	assert.Contains(t, got, "数字：3\n颜色：金色\n星座：射手座")
	assert.True(t, strings.HasSuffix(got, "✍【简评】\n总运：总运佳\n爱情：桃花旺\n工作：有突破\n财运：小有进账\n健康：精力充沛\n"))
}

func TestPaidHoroscopeBadToken(t *testing.T) {
	c := newHoroscopeClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":102,"msg":"token invalid"}`))
	})

	_, err := GetHoroscope(context.Background(), c, mo.Some("bad"), "leo")
	require.Error(t, err)
	assert.Equal(t, "星座获取信息获取失败，请检查 token 是否有误", model.UserMessage(err))
}
