package model

import "github.com/chroniclenote/chronicle-note-service/pkg/timex"

const TableNameNote = "note"

// Note mapped from table <note>
type Note struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID       int64      `gorm:"column:uid;not null;index:idx_uid" json:"uid" form:"uid"`
	Title     string     `gorm:"column:title" json:"title" form:"title"`
	Content   string     `gorm:"column:content" json:"content" form:"content"`
	Tags      string     `gorm:"column:tags" json:"tags" form:"tags"`
	Period    string     `gorm:"column:period" json:"period" form:"period"`
	Region    string     `gorm:"column:region" json:"region" form:"region"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Note's table name
func (*Note) TableName() string {
	return TableNameNote
}
