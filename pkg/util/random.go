package util

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// GenerateShareToken generates an unguessable public link token
// GenerateShareToken 生成不可猜测的公开链接 Token
// 作为 Bearer 凭证使用，持有者即可读取对应笔记
func GenerateShareToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// GetRandomString 生成指定长度的随机字符串
func GetRandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			b[i] = charset[0]
			continue
		}
		b[i] = charset[n.Int64()]
	}
	return string(b)
}
