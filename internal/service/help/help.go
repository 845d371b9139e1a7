package service

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ShortHelp 简短的功能介绍
const ShortHelp = "发送特定指令以获取早报、热榜、查询天气、星座运势等！"

type command struct {
	Icon  string
	Name  string
	Usage string
}

type section struct {
	Title    string
	Commands []command
}

var sections = []section{
	{
		Title: "🎉 娱乐与资讯：",
		Commands: []command{
			{"🌅", "早报", "发送“早报”获取早报。"},
			{"🐟", "摸鱼", "发送“摸鱼”获取摸鱼人日历，发送“摸鱼视频”获取视频版。"},
			{"🔥", "热榜", "发送“xx热榜”查看支持的热榜。"},
			{"🔥", "八卦", "发送“八卦”获取明星八卦。"},
			{"💻", "每日一题", "发送“每日一题”获取力扣每日一题。"},
		},
	},
	{
		Title: "🔍 查询工具：",
		Commands: []command{
			{"🌦️", "天气", "发送“城市+天气”查天气，如“北京天气”。"},
			{"🌌", "星座", "发送星座名称查看今日运势，如“白羊座”。"},
		},
	},
}

// Text 帮助文案，verbose 为 false 时只返回一句话介绍
func Text(verbose bool) string {
	if !verbose {
		return ShortHelp
	}
	var b strings.Builder
	b.WriteString("📚 发送关键词获取特定信息！\n")
	for _, s := range sections {
		b.WriteString("\n" + s.Title + "\n")
		lines := lo.Map(s.Commands, func(cmd command, _ int) string {
			return fmt.Sprintf("  %s %s: %s\n", cmd.Icon, cmd.Name, cmd.Usage)
		})
		b.WriteString(strings.Join(lines, ""))
	}
	return b.String()
}
