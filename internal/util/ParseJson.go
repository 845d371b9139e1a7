package util

import (
	"WhaleBot/internal/model"
	"bytes"
	"encoding/json"
	"errors"
)

func ParseEvent(data []byte) (*model.Event, error) {
	var event model.Event
	err := json.Unmarshal(data, &event)
	if err != nil {
		// 如果解析出错，返回一个新的零值结构体和错误信息
		return &model.Event{}, err
	}
	return &event, nil
}

// FlexString 上游接口同一字段有时返回字符串有时返回数字，统一按文本处理
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	case '{', '[':
		return errors.New("flex string: unexpected composite value")
	default:
		// 数字和布尔值保留原始字面量
		*s = FlexString(data)
		return nil
	}
}

func (s FlexString) String() string {
	return string(s)
}
