package model

type ReplyKind int

const (
	ReplyText ReplyKind = iota
	ReplyImageURL
	ReplyVideoURL
)

func (k ReplyKind) String() string {
	switch k {
	case ReplyImageURL:
		return "image_url"
	case ReplyVideoURL:
		return "video_url"
	default:
		return "text"
	}
}

// Reply 一条指令对应的回复
type Reply struct {
	Kind    ReplyKind
	Content string
}

func TextReply(content string) Reply {
	return Reply{Kind: ReplyText, Content: content}
}
