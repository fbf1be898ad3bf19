// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/chroniclenote/chronicle-note-service/pkg/timex"

// NoteCreateRequest 创建笔记请求参数
type NoteCreateRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	Tags    string `json:"tags" form:"tags"`
	Period  string `json:"period" form:"period"`
	Region  string `json:"region" form:"region"`
}

// NoteUpdateRequest 更新笔记请求参数
type NoteUpdateRequest struct {
	ID      int64  `json:"id" form:"id" binding:"required"`
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	Tags    string `json:"tags" form:"tags"`
	Period  string `json:"period" form:"period"`
	Region  string `json:"region" form:"region"`
}

// NoteGetRequest 获取/删除笔记请求参数
type NoteGetRequest struct {
	ID int64 `json:"id" form:"id" uri:"id" binding:"required"`
}

// NoteSearchRequest 检索笔记请求参数
type NoteSearchRequest struct {
	Q      string `json:"q" form:"q"`
	Period string `json:"period" form:"period"`
	Region string `json:"region" form:"region"`
	Tags   string `json:"tags" form:"tags"`
}

// NoteTemplateDTO 内置笔记模板
type NoteTemplateDTO struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      string     `json:"tags"`
	Period    string     `json:"period"`
	Region    string     `json:"region"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}
