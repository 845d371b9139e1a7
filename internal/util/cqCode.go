package util

import (
	"WhaleBot/internal/model"
	"regexp"
	"strconv"
	"strings"
)

var leadingAtRegex = regexp.MustCompile(`^\[CQ:at,qq=(\d+)[^\]]*\]\s*`)

var cqParamEscaper = strings.NewReplacer(
	"&", "&amp;",
	"[", "&#91;",
	"]", "&#93;",
	",", "&#44;",
)

// CQCode 媒体回复转为 CQ 码，文本原样返回
func CQCode(reply model.Reply) string {
	switch reply.Kind {
	case model.ReplyImageURL:
		return "[CQ:image,file=" + cqParamEscaper.Replace(reply.Content) + "]"
	case model.ReplyVideoURL:
		return "[CQ:video,file=" + cqParamEscaper.Replace(reply.Content) + "]"
	default:
		return reply.Content
	}
}

// StripAtSelf 去掉消息开头 @ 机器人自己的 CQ 码，@ 其他人时原样返回
func StripAtSelf(text string, selfId int64) string {
	text = strings.TrimSpace(text)
	matches := leadingAtRegex.FindStringSubmatch(text)
	if matches == nil || matches[1] != strconv.FormatInt(selfId, 10) {
		return text
	}
	return strings.TrimSpace(text[len(matches[0]):])
}
