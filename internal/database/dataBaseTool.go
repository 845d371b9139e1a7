package database

import (
	"WhaleBot/internal/log"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DataBaseTool struct {
	DataBase *gorm.DB
}

// DB 未配置 dsn 时 DataBase 为空，城市表只使用内置数据
var DB DataBaseTool

const maxTries = 50

const sqlitePrefix = "sqlite:"

// openDialector dsn 以 sqlite: 开头时使用本地文件库，其余按 postgres 处理
func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, sqlitePrefix) {
		return sqlite.Open(strings.TrimPrefix(dsn, sqlitePrefix))
	}
	return postgres.Open(dsn)
}

// SelectDsn 按运行环境选择 dsn，local 用开发库，其余用生产库
func SelectDsn(env, devDsn, proDsn string) string {
	if env == "local" {
		return devDsn
	}
	return proDsn
}

func InitDataBase(dsn string) {
	if dsn == "" {
		log.Log.Info("未配置数据库，城市表使用内置数据")
		return
	}
	var err error
	for tries := maxTries; tries > 0; tries-- {
		DB.DataBase, err = gorm.Open(openDialector(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		log.Log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("链接数据库失败，正在重试...")
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Panic("链接数据库失败, 重试次数超过最大重试次数")
	}
	log.Log.WithFields(logrus.Fields{
		"database": "链接数据库成功",
	}).Info("链接数据库成功")
	err = DB.DataBase.AutoMigrate(&City{})
	if err != nil {
		log.Log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Panic("创建城市表失败")
	}
}
