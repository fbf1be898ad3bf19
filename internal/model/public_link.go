package model

import "github.com/chroniclenote/chronicle-note-service/pkg/timex"

const TableNamePublicLink = "public_link"

// PublicLink mapped from table <public_link>
//
// ExpiresAt is stored as text; an empty string means the link never expires.
// ExpiresAt 以文本存储；空串表示永不过期
type PublicLink struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	NoteID    int64      `gorm:"column:note_id;not null;index:idx_note_id" json:"noteId" form:"noteId"`
	Token     string     `gorm:"column:token;not null;uniqueIndex:idx_token" json:"token" form:"token"`
	ExpiresAt string     `gorm:"column:expires_at" json:"expiresAt" form:"expiresAt"`
	Revoked   bool       `gorm:"column:revoked;default:false" json:"revoked" form:"revoked"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName PublicLink's table name
func (*PublicLink) TableName() string {
	return TableNamePublicLink
}
