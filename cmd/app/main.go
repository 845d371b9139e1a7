package main

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/config"
	"WhaleBot/internal/database"
	"WhaleBot/internal/log"
	"WhaleBot/internal/route"
	messageService "WhaleBot/internal/service/message"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Env        string `long:"env" default:"online" choice:"online" choice:"local" description:"运行环境，local 使用开发数据库"`
	ConfigPath string `long:"config" default:"./config/config.json" description:"配置文件路径"`
	StoreToken string `long:"store-token" description:"把 alapi token 写入系统钥匙串后退出"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if opts.StoreToken != "" {
		if err := config.StoreToken(opts.StoreToken); err != nil {
			fmt.Fprintf(os.Stderr, "写入钥匙串失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("alapi token 已写入钥匙串")
		return
	}
	// .env 可选，其中的 WHALE_ 变量会覆盖配置文件
	_ = godotenv.Load()

	e := echo.New()
	e.HideBanner = true
	config.Config.InitConfig(opts.ConfigPath, e)
	appConfig := config.Config.AppConfig
	log.InitLog(appConfig.Log.Level, nil)

	database.InitDataBase(database.SelectDsn(opts.Env, appConfig.DataBase.DevDsn, appConfig.DataBase.ProDsn))
	cities, err := database.LoadCityTable()
	if err != nil {
		log.Log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Panic("加载城市表失败")
	}

	c := client.New(appConfig.Endpoints, appConfig.Request.Timeout, appConfig.Request.UserAgent)
	dispatcher := messageService.NewDispatcher(c, cities, config.Config.Token, appConfig.MorningNewsTextEnabled)
	log.Log.WithFields(logrus.Fields{
		"env":       opts.Env,
		"has_token": config.Config.Token.IsPresent(),
		"cities":    cities.Len(),
	}).Info("WhaleBot 启动")

	route.Route(e, dispatcher)
	e.Logger.Fatal(e.Start(":" + appConfig.Server.Port))
}
