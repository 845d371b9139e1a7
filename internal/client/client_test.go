package client

import (
	"WhaleBot/internal/model"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return New(model.Endpoints{}, 5*time.Second, "")
}

func TestDoJSONSendsForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "json", r.PostForm.Get("format"))
		assert.Equal(t, BrowserUserAgent, r.Header.Get("User-Agent"))
		// 上游错误时也会返回 JSON，需要照常解析
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":400,"msg":"bad token"}`))
	}))
	defer server.Close()

	var out struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	err := newTestClient().DoJSON(context.Background(), Request{
		Method: http.MethodPost,
		URL:    server.URL,
		Form:   map[string]string{"format": "json"},
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, 400, out.Code)
	assert.Equal(t, "bad token", out.Msg)
}

func TestDoJSONSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"query":"q"}`, string(body))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	var out struct {
		Ok bool `json:"ok"`
	}
	err := newTestClient().DoJSON(context.Background(), Request{
		Method: http.MethodPost,
		URL:    server.URL,
		JSON:   map[string]string{"query": "q"},
	}, &out)
	require.NoError(t, err)
	assert.True(t, out.Ok)
}

func TestDoJSONDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>blocked</html>`))
	}))
	defer server.Close()

	var out map[string]interface{}
	err := newTestClient().DoJSON(context.Background(), Request{URL: server.URL}, &out)
	assert.Error(t, err)
}

func TestIsAlive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		switch r.URL.Path {
		case "/ok.png":
			w.WriteHeader(http.StatusOK)
		case "/moved.png":
			http.Redirect(w, r, "/ok.png", http.StatusFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := newTestClient()
	assert.True(t, c.IsAlive(context.Background(), server.URL+"/ok.png"))
	assert.False(t, c.IsAlive(context.Background(), server.URL+"/missing.png"))
	assert.False(t, c.IsAlive(context.Background(), server.URL+"/moved.png"))
	assert.False(t, c.IsAlive(context.Background(), "http://127.0.0.1:1/unreachable.png"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "https://api.vvhan.com/api/hotlist/wbHot", Join("https://api.vvhan.com/api/", "hotlist/wbHot"))
	assert.Equal(t, "http://x/tianqi", Join("http://x", "/tianqi"))
}
