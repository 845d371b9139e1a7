package log

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Log 全局日志，InitLog 之前也可以直接使用
var Log = logrus.New()

type CustomFormatter struct {
	TimestampFormat string
	Location        *time.Location
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	data := map[string]interface{}{
		"time":    entry.Time.In(loc).Format(f.TimestampFormat),
		"level":   entry.Level.String(),
		"message": entry.Message,
	}
	if entry.HasCaller() {
		data["caller"] = entry.Caller.Function
	}
	if len(entry.Data) > 0 {
		fields := make(map[string]interface{}, len(entry.Data))
		for k, v := range entry.Data {
			// error 类型直接序列化会得到 {}
			if e, ok := v.(error); ok {
				fields[k] = e.Error()
				continue
			}
			fields[k] = v
		}
		data["fields"] = fields
	}
	serialized, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(serialized, '\n'), nil
}

// InitLog 按配置的级别初始化日志，级别非法时退回 info
func InitLog(level string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		loc = time.FixedZone("CST", 8*60*60)
	}
	Log.SetFormatter(&CustomFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		Location:        loc,
	})
	Log.SetReportCaller(true)
	Log.SetOutput(io.MultiWriter(out))
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		Log.WithFields(logrus.Fields{
			"level": level,
		}).Warn("日志级别解析失败，使用 info")
	}
	Log.SetLevel(lvl)
}
