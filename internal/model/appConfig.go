package model

import "time"

// AppConfig 对应 config/config.json，字段带 verify:"-" 的允许为空
type AppConfig struct {
	AlapiToken             string         `mapstructure:"alapi_token" verify:"-"`
	MorningNewsTextEnabled bool           `mapstructure:"morning_news_text_enabled"`
	Server                 serverConfig   `mapstructure:"server"`
	Hmac                   hmac           `mapstructure:"hmac" verify:"-"`
	DataBase               dataBaseConfig `mapstructure:"data-base" verify:"-"`
	Endpoints              Endpoints      `mapstructure:"endpoints"`
	Request                requestConfig  `mapstructure:"request"`
	Log                    logConfig      `mapstructure:"log"`
	Keyring                keyringConfig  `mapstructure:"keyring"`
}

type serverConfig struct {
	Port string `mapstructure:"port"`
}

type hmac struct {
	Key string `mapstructure:"key"`
}

type dataBaseConfig struct {
	DevDsn string `mapstructure:"dev-dsn"`
	ProDsn string `mapstructure:"pro-dsn"`
}

// Endpoints 上游接口的根地址，测试时可替换为本地服务
type Endpoints struct {
	Vvhan    string `mapstructure:"vvhan"`
	Alapi    string `mapstructure:"alapi"`
	Qqsuu    string `mapstructure:"qqsuu"`
	Leetcode string `mapstructure:"leetcode"`
}

type requestConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user-agent"`
}

type logConfig struct {
	Level string `mapstructure:"level"`
}

type keyringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
