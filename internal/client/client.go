package client

import (
	"WhaleBot/internal/log"
	"WhaleBot/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// BrowserUserAgent 部分上游会拦截非浏览器请求
const BrowserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client 所有上游请求共用，可被多个 goroutine 同时使用
type Client struct {
	http      *resty.Client
	probe     *resty.Client
	Endpoints model.Endpoints
}

func New(endpoints model.Endpoints, timeout time.Duration, userAgent string) *Client {
	if userAgent == "" {
		userAgent = BrowserUserAgent
	}
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
	// 探活只认 200，跳转视为失效
	probe := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetRedirectPolicy(resty.NoRedirectPolicy())
	return &Client{
		http:      httpClient,
		probe:     probe,
		Endpoints: endpoints,
	}
}

type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Query   map[string]string
	Form    map[string]string
	JSON    interface{}
}

// Do 发送请求，返回状态码和响应体
func (c *Client) Do(ctx context.Context, req Request) (int, []byte, error) {
	r := c.http.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if len(req.Form) > 0 {
		r.SetFormData(req.Form)
	}
	if req.JSON != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.JSON)
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	resp, err := r.Execute(method, req.URL)
	if err != nil {
		log.Log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"method": method,
			"url":    req.URL,
		}).Error("发送请求失败")
		return 0, nil, err
	}
	log.Log.WithFields(logrus.Fields{
		"method": method,
		"url":    req.URL,
		"status": resp.StatusCode(),
	}).Debug("上游响应")
	return resp.StatusCode(), resp.Body(), nil
}

// DoJSON 不看状态码，直接把响应体解析到 out，成功与否由调用方按各自的标记判断
func (c *Client) DoJSON(ctx context.Context, req Request, out interface{}) error {
	_, body, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		log.Log.WithFields(logrus.Fields{
			"error": err.Error(),
			"url":   req.URL,
		}).Error("解析响应失败")
		return fmt.Errorf("decode %s: %w", req.URL, err)
	}
	return nil
}

// IsAlive 用 HEAD 请求确认媒体链接可访问
func (c *Client) IsAlive(ctx context.Context, target string) bool {
	resp, err := c.probe.R().SetContext(ctx).Head(target)
	if err != nil {
		log.Log.WithFields(logrus.Fields{
			"error": err.Error(),
			"url":   target,
		}).Warn("链接探活失败")
		return false
	}
	return resp.StatusCode() == http.StatusOK
}

// Join 拼接根地址和路径
func Join(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
