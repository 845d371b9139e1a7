package service

var zodiacMapping = map[string]string{
	"白羊座": "aries",
	"金牛座": "taurus",
	"双子座": "gemini",
	"巨蟹座": "cancer",
	"狮子座": "leo",
	"处女座": "virgo",
	"天秤座": "libra",
	"天蝎座": "scorpio",
	"射手座": "sagittarius",
	"摩羯座": "capricorn",
	"水瓶座": "aquarius",
	"双鱼座": "pisces",
}

// SignID 星座中文名转接口参数
func SignID(name string) (string, bool) {
	id, ok := zodiacMapping[name]
	return id, ok
}
