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

// publicLinkRepository 实现 domain.PublicLinkRepository 接口
type publicLinkRepository struct {
	dao *Dao
}

// NewPublicLinkRepository 创建 PublicLinkRepository 实例
func NewPublicLinkRepository(dao *Dao) domain.PublicLinkRepository {
	return &publicLinkRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *publicLinkRepository) toDomain(m *model.PublicLink) *domain.PublicLink {
	if m == nil {
		return nil
	}
	return &domain.PublicLink{
		ID:        m.ID,
		NoteID:    m.NoteID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		Revoked:   m.Revoked,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *publicLinkRepository) toModel(link *domain.PublicLink) *model.PublicLink {
	if link == nil {
		return nil
	}
	return &model.PublicLink{
		ID:        link.ID,
		NoteID:    link.NoteID,
		Token:     link.Token,
		ExpiresAt: link.ExpiresAt,
		Revoked:   link.Revoked,
		CreatedAt: timex.Time(link.CreatedAt),
		UpdatedAt: timex.Time(link.UpdatedAt),
	}
}

func (r *publicLinkRepository) GetByID(ctx context.Context, id int64) (*domain.PublicLink, error) {
	var m model.PublicLink
	err := r.dao.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *publicLinkRepository) GetByToken(ctx context.Context, token string) (*domain.PublicLink, error) {
	var m model.PublicLink
	err := r.dao.Db.WithContext(ctx).Where("token = ?", token).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByNoteID 并发竞态可能留下同一笔记的多行，取最早创建的一条保证令牌稳定
func (r *publicLinkRepository) GetByNoteID(ctx context.Context, noteID int64) (*domain.PublicLink, error) {
	var m model.PublicLink
	err := r.dao.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("created_at ASC, id ASC").
		First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *publicLinkRepository) Create(ctx context.Context, link *domain.PublicLink) (*domain.PublicLink, error) {
	m := r.toModel(link)
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

func (r *publicLinkRepository) UpdateExpiry(ctx context.Context, id int64, expiresAt string) error {
	return r.dao.Db.WithContext(ctx).Model(&model.PublicLink{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"expires_at": expiresAt,
			"revoked":    false,
			"updated_at": timex.Now(),
		}).Error
}

func (r *publicLinkRepository) UpdateRevoked(ctx context.Context, id int64, revoked bool) error {
	return r.dao.Db.WithContext(ctx).Model(&model.PublicLink{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"revoked":    revoked,
			"updated_at": timex.Now(),
		}).Error
}

func (r *publicLinkRepository) ListByOwner(ctx context.Context, uid int64) ([]*domain.OwnedLink, error) {
	type row struct {
		model.PublicLink
		NoteTitle string `gorm:"column:note_title"`
	}
	linkTable := model.TableNamePublicLink
	noteTable := model.TableNameNote

	var rows []*row
	err := r.dao.Db.WithContext(ctx).Model(&model.PublicLink{}).
		Select(linkTable+".*, "+noteTable+".title AS note_title").
		Joins("JOIN "+noteTable+" ON "+noteTable+".id = "+linkTable+".note_id").
		Where(noteTable+".uid = ?", uid).
		Order(linkTable + ".created_at DESC, " + linkTable + ".id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	links := make([]*domain.OwnedLink, 0, len(rows))
	for _, m := range rows {
		links = append(links, &domain.OwnedLink{
			Link:      r.toDomain(&m.PublicLink),
			NoteTitle: m.NoteTitle,
		})
	}
	return links, nil
}

func (r *publicLinkRepository) ListExpiring(ctx context.Context) ([]*domain.PublicLink, error) {
	var ms []*model.PublicLink
	err := r.dao.Db.WithContext(ctx).
		Where("revoked = ? AND expires_at <> ''", false).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	links := make([]*domain.PublicLink, 0, len(ms))
	for _, m := range ms {
		links = append(links, r.toDomain(m))
	}
	return links, nil
}

// RevokeAll 全部吊销在一个事务内完成，要么全部生效要么全部回滚
func (r *publicLinkRepository) RevokeAll(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.dao.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.PublicLink{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"revoked":    true,
				"updated_at": timex.Now(),
			}).Error
	})
}
