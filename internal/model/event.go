package model

import "encoding/json"

// Event OneBot v11 上报事件，只保留消息处理用到的字段
type Event struct {
	Time        int64           `json:"time"`
	SelfId      int64           `json:"self_id"`
	PostType    string          `json:"post_type"`
	MessageType string          `json:"message_type"`
	SubType     string          `json:"sub_type"`
	MessageId   int64           `json:"message_id"`
	UserId      int64           `json:"user_id"`
	GroupId     int64           `json:"group_id"`
	Message     json.RawMessage `json:"message"`
	RawMessage  string          `json:"raw_message"`
	Font        int             `json:"font"`
	Sender      struct {
		Nickname string `json:"nickname"`
		Sex      string `json:"sex"`
		Age      int    `json:"age"`
	} `json:"sender"`
}

// Text 优先使用 raw_message，message 为消息段数组时不参与
func (e *Event) Text() string {
	if e.RawMessage != "" {
		return e.RawMessage
	}
	var message string
	if err := json.Unmarshal(e.Message, &message); err != nil {
		return ""
	}
	return message
}
