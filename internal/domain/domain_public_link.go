// Package domain 定义领域模型和接口
package domain

import "time"

// PublicLink 公开分享链接领域模型
//
// ExpiresAt is kept as the raw stored text (RFC 3339, empty means never
// expires) so expiry evaluation can fail open on unparseable values.
// ExpiresAt 保留原始存储文本（RFC 3339，空串表示永不过期），
// 以便解析失败时按放行处理
type PublicLink struct {
	ID        int64
	NoteID    int64
	Token     string
	ExpiresAt string
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the link is past its expiry at the given instant.
// An unset or unparseable ExpiresAt never counts as expired.
// Expired 判断链接在给定时刻是否已过期；未设置或无法解析的 ExpiresAt 不算过期
func (l *PublicLink) Expired(now time.Time) bool {
	if l.ExpiresAt == "" {
		return false
	}
	t, err := time.Parse(time.RFC3339, l.ExpiresAt)
	if err != nil {
		return false
	}
	return t.Before(now)
}

// Resolvable 判断链接当前是否可对外解析
func (l *PublicLink) Resolvable(now time.Time) bool {
	return !l.Revoked && !l.Expired(now)
}

// OwnedLink pairs a link with the title of its note for owner listings
// OwnedLink 携带所属笔记标题的链接，用于属主清单
type OwnedLink struct {
	Link      *PublicLink
	NoteTitle string
}
