// Package dao 实现数据访问层
package dao

import (
	"context"
	"time"

	"github.com/chroniclenote/chronicle-note-service/internal/domain"
	"github.com/chroniclenote/chronicle-note-service/internal/model"
	"github.com/chroniclenote/chronicle-note-service/pkg/timex"

	"gorm.io/gorm"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		OwnerUID:  m.UID,
		Title:     m.Title,
		Content:   m.Content,
		Tags:      m.Tags,
		Period:    m.Period,
		Region:    m.Region,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *noteRepository) toModel(note *domain.Note) *model.Note {
	if note == nil {
		return nil
	}
	return &model.Note{
		ID:        note.ID,
		UID:       note.OwnerUID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      note.Tags,
		Period:    note.Period,
		Region:    note.Region,
		CreatedAt: timex.Time(note.CreatedAt),
		UpdatedAt: timex.Time(note.UpdatedAt),
	}
}

// applyFilter translates the structured filter into one parameterized predicate.
// User input never reaches the query text itself.
// applyFilter 将结构化条件翻译为单个参数化谓词，用户输入不会进入查询文本
func applyFilter(q *gorm.DB, uid int64, filter *domain.NoteFilter) *gorm.DB {
	q = q.Where("uid = ?", uid)
	if filter == nil {
		return q
	}
	if filter.Text != "" {
		like := "%" + filter.Text + "%"
		q = q.Where("title LIKE ? OR content LIKE ?", like, like)
	}
	if filter.Period != "" {
		q = q.Where("period = ?", filter.Period)
	}
	if filter.Region != "" {
		q = q.Where("region LIKE ?", "%"+filter.Region+"%")
	}
	if len(filter.Tags) > 0 {
		// 标签词项之间为 OR 语义
		tagQuery := q.Session(&gorm.Session{NewDB: true})
		for i, term := range filter.Tags {
			if i == 0 {
				tagQuery = tagQuery.Where("tags LIKE ?", "%"+term+"%")
			} else {
				tagQuery = tagQuery.Or("tags LIKE ?", "%"+term+"%")
			}
		}
		q = q.Where(tagQuery)
	}
	return q
}

func (r *noteRepository) GetByID(ctx context.Context, id, uid int64) (*domain.Note, error) {
	var m model.Note
	err := r.dao.Db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *noteRepository) GetAnyByID(ctx context.Context, id int64) (*domain.Note, error) {
	var m model.Note
	err := r.dao.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	m := r.toModel(note)
	m.UID = uid
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

func (r *noteRepository) Update(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	m := r.toModel(note)
	result := r.dao.Db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND uid = ?", note.ID, uid).
		Updates(map[string]interface{}{
			"title":      m.Title,
			"content":    m.Content,
			"tags":       m.Tags,
			"period":     m.Period,
			"region":     m.Region,
			"updated_at": m.UpdatedAt,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, note.ID, uid)
}

// DeleteWithLinks 笔记与其分享链接在一个事务内删除，要么全部生效要么全部回滚
func (r *noteRepository) DeleteWithLinks(ctx context.Context, id, uid int64) error {
	return r.dao.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND uid = ?", id, uid).Delete(&model.Note{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("note_id = ?", id).Delete(&model.PublicLink{}).Error
	})
}

func (r *noteRepository) List(ctx context.Context, uid int64, filter *domain.NoteFilter, page, pageSize int) ([]*domain.Note, error) {
	if page < 1 {
		page = 1
	}
	var ms []*model.Note
	q := applyFilter(r.dao.Db.WithContext(ctx).Model(&model.Note{}), uid, filter)
	err := q.Order("updated_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// ListAll 全量导出按创建时间倒序，与分页检索的更新时间倒序不同
func (r *noteRepository) ListAll(ctx context.Context, uid int64) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.dao.Db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("created_at DESC, id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

func (r *noteRepository) ListCount(ctx context.Context, uid int64, filter *domain.NoteFilter) (int64, error) {
	var count int64
	q := applyFilter(r.dao.Db.WithContext(ctx).Model(&model.Note{}), uid, filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
