package util

import "net/url"

// IsValidURL 同时具备 scheme 和 host 才算合法链接
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
