// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/chroniclenote/chronicle-note-service/pkg/timex"

// ShareCreateRequest 创建/刷新分享请求参数
//
// TtlDays 为空表示保留现有过期设置（新建时为永不过期）
type ShareCreateRequest struct {
	NoteID  int64  `json:"noteId" form:"noteId" binding:"required"`
	TtlDays *int64 `json:"ttlDays" form:"ttlDays"`
}

// ShareRevokeRequest 撤销分享请求参数
type ShareRevokeRequest struct {
	LinkID int64 `json:"linkId" form:"linkId" uri:"linkId" binding:"required"`
}

// ShareCreateResponse 创建分享响应
type ShareCreateResponse struct {
	LinkID    int64  `json:"linkId"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// ShareLinkDTO 分享链接数据传输对象
type ShareLinkDTO struct {
	ID        int64      `json:"id"`
	NoteID    int64      `json:"noteId"`
	NoteTitle string     `json:"noteTitle"`
	Token     string     `json:"token"`
	ExpiresAt string     `json:"expiresAt"`
	Revoked   bool       `json:"revoked"`
	CreatedAt timex.Time `json:"createdAt"`
}
