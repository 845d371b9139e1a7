package config

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/log"
	"WhaleBot/internal/model"
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

type configCenter struct {
	AppConfig *model.AppConfig
	Token     mo.Option[string]
}

var Config configCenter

func (c *configCenter) InitConfig(path string, e *echo.Echo) {
	appConfig, err := LoadAppConfig(path)
	if err != nil {
		log.Log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Panic("配置获取失败")
	}
	c.AppConfig = appConfig
	c.Token = ResolveToken(appConfig)
	c.initMiddleware(e)
}

func (c *configCenter) initMiddleware(e *echo.Echo) {
	//recover
	e.Use(middleware.Recover())

	//CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"*"},
		MaxAge:       3600,
	}))

	// 未配置密钥时不校验签名
	if c.AppConfig.Hmac.Key != "" {
		e.Use(HMACMiddleware(c.AppConfig.Hmac.Key))
	} else {
		log.Log.Warn("未配置 hmac.key，上报事件不做签名校验")
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("alapi_token", "")
	v.SetDefault("morning_news_text_enabled", false)
	v.SetDefault("server.port", "2077")
	v.SetDefault("hmac.key", "")
	v.SetDefault("data-base.dev-dsn", "")
	v.SetDefault("data-base.pro-dsn", "")
	v.SetDefault("endpoints.vvhan", "https://api.vvhan.com/api/")
	v.SetDefault("endpoints.alapi", "https://v2.alapi.cn/api/")
	v.SetDefault("endpoints.qqsuu", "https://dayu.qqsuu.cn/")
	v.SetDefault("endpoints.leetcode", "https://leetcode.com/graphql")
	v.SetDefault("request.timeout", "10s")
	v.SetDefault("request.user-agent", client.BrowserUserAgent)
	v.SetDefault("log.level", "info")
	v.SetDefault("keyring.enabled", false)
}

// LoadAppConfig 读取配置文件，环境变量 WHALE_ 前缀优先，文件不存在时只用默认值和环境变量
func LoadAppConfig(path string) (*model.AppConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("WHALE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		log.Log.WithFields(logrus.Fields{
			"path": path,
		}).Warn("配置文件不存在，使用默认配置")
	}
	var appConfig model.AppConfig
	if err := v.Unmarshal(&appConfig); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if !verifyConfig(&appConfig) {
		return nil, errors.New("配置文件存在空值")
	}
	log.Log.WithFields(logrus.Fields{
		"port":     appConfig.Server.Port,
		"timeout":  appConfig.Request.Timeout.String(),
		"has_hmac": appConfig.Hmac.Key != "",
	}).Info("配置获取成功")
	return &appConfig, nil
}

// ResolveToken 配置里没有 token 且开启钥匙串时，从钥匙串读取
func ResolveToken(appConfig *model.AppConfig) mo.Option[string] {
	if token := strings.TrimSpace(appConfig.AlapiToken); token != "" {
		return mo.Some(token)
	}
	if !appConfig.Keyring.Enabled {
		return mo.None[string]()
	}
	token, err := loadToken()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("读取钥匙串失败")
		}
		return mo.None[string]()
	}
	if token = strings.TrimSpace(token); token == "" {
		return mo.None[string]()
	}
	return mo.Some(token)
}

func HMACMiddleware(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 健康检查等 GET 请求没有请求体
			if c.Request().Method == http.MethodGet {
				return next(c)
			}
			bodyBytes, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]interface{}{
					"message": "读取请求体失败",
				})
			}
			// 重新设置请求体，以便后续处理逻辑使用
			c.Request().Body = io.NopCloser(bytes.NewReader(bodyBytes))

			signatureHeader := c.Request().Header.Get("X-Signature")
			if !strings.HasPrefix(signatureHeader, "sha1=") {
				return c.JSON(http.StatusBadRequest, map[string]interface{}{
					"message": "X-Signature 请求头格式错误或缺失",
				})
			}

			mac := hmac.New(sha1.New, []byte(key))
			mac.Write(bodyBytes)
			expectedMAC := hex.EncodeToString(mac.Sum(nil))
			receivedMAC := strings.TrimPrefix(signatureHeader, "sha1=")
			if !hmac.Equal([]byte(expectedMAC), []byte(receivedMAC)) {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"message": "HMAC 验证失败",
				})
			}
			return next(c)
		}
	}
}

// verifyConfig 检查 AppConfig 中是否存在零值字段
func verifyConfig(appConfig *model.AppConfig) bool {
	if !checkAllFieldsSet(reflect.ValueOf(appConfig)) {
		log.Log.Error("配置文件存在空值")
		return false
	}
	return true
}

// checkAllFieldsSet 递归检查结构体字段，带 verify:"-" 的字段跳过
func checkAllFieldsSet(v reflect.Value) bool {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		if v.Kind() == reflect.Bool {
			return true // 对于bool类型，总是返回true，即不视false为零值
		}
		return !v.IsZero()
	}
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if t.Field(i).Tag.Get("verify") == "-" {
			continue
		}
		if !checkAllFieldsSet(v.Field(i)) {
			return false
		}
	}
	return true
}
