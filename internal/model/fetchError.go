package model

import (
	"errors"
	"fmt"
)

type FailureReason int

const (
	// ReasonTransport 网络错误或响应无法解析
	ReasonTransport FailureReason = iota
	// ReasonUpstream 上游返回失败标记或非 200 状态码
	ReasonUpstream
	// ReasonDeadLink 返回的媒体链接探活失败
	ReasonDeadLink
	// ReasonUnavailable 所有提供方都不可用
	ReasonUnavailable
)

func (r FailureReason) String() string {
	switch r {
	case ReasonTransport:
		return "transport"
	case ReasonUpstream:
		return "upstream"
	case ReasonDeadLink:
		return "dead_link"
	case ReasonUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// FetchError 携带给用户看的提示和内部原因
type FetchError struct {
	Reason  FailureReason
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Reason, e.Message, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewFetchError(reason FailureReason, message string, err error) *FetchError {
	return &FetchError{Reason: reason, Message: message, Err: err}
}

// DefaultFailureMessage 非 FetchError 的兜底提示
const DefaultFailureMessage = "出错啦，稍后再试"

// UserMessage 取出错误里面向用户的提示
func UserMessage(err error) string {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Message
	}
	return DefaultFailureMessage
}
