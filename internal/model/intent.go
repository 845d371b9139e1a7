package model

type IntentKind int

const (
	IntentMorningNews IntentKind = iota + 1
	IntentIdleCalendarImage
	IntentIdleCalendarVideo
	IntentDailyQuestion
	IntentCelebrityGossip
	IntentHelp
	IntentHoroscope
	IntentHotTrend
	IntentWeather
)

// Intent 由指令解析得到，解析后不再修改。
// Horoscope 使用 Sign/SignID，HotTrend 使用 Category/CategoryParam，
// Weather 使用 City/Date。ID 类字段为空表示查表未命中。
type Intent struct {
	Kind          IntentKind
	Sign          string
	SignID        string
	Category      string
	CategoryParam string
	City          string
	Date          string
}

func (k IntentKind) String() string {
	switch k {
	case IntentMorningNews:
		return "morning_news"
	case IntentIdleCalendarImage:
		return "idle_calendar_image"
	case IntentIdleCalendarVideo:
		return "idle_calendar_video"
	case IntentDailyQuestion:
		return "daily_question"
	case IntentCelebrityGossip:
		return "celebrity_gossip"
	case IntentHelp:
		return "help"
	case IntentHoroscope:
		return "horoscope"
	case IntentHotTrend:
		return "hot_trend"
	case IntentWeather:
		return "weather"
	default:
		return "unknown"
	}
}
