package config

import "github.com/zalando/go-keyring"

const (
	keyringService = "whalebot"
	tokenAccount   = "alapi_token"
)

// StoreToken 把 alapi token 写入系统钥匙串
func StoreToken(token string) error {
	return keyring.Set(keyringService, tokenAccount, token)
}

func loadToken() (string, error) {
	return keyring.Get(keyringService, tokenAccount)
}
