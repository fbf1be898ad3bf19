// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

import (
	"context"
	"time"

	"github.com/chroniclenote/chronicle-note-service/internal/domain"
	"github.com/chroniclenote/chronicle-note-service/internal/dto"
	"github.com/chroniclenote/chronicle-note-service/pkg/code"
	"github.com/chroniclenote/chronicle-note-service/pkg/timex"
	"github.com/chroniclenote/chronicle-note-service/pkg/util"

	"go.uber.org/zap"
)

// ShareService defines the public link business service interface
// ShareService 定义公开链接业务服务接口
type ShareService interface {
	// Share issues or refreshes the public link of an owned note.
	// Re-sharing reuses the existing token; supplying a TTL also refreshes
	// expiry and clears a previous revocation.
	// Share 为属主笔记签发或刷新公开链接。
	// 重复分享复用现有令牌；携带 TTL 时同时刷新过期时间并清除吊销标记。
	Share(ctx context.Context, uid int64, noteID int64, ttlDays *int64) (*dto.ShareCreateResponse, error)

	// Resolve looks up a note by bearer token. Missing, revoked and expired
	// links are indistinguishable to the caller.
	// Resolve 按令牌解析笔记。不存在、已吊销与已过期对调用方不可区分。
	Resolve(ctx context.Context, token string) (*dto.NoteDTO, error)

	// Revoke 按属主身份吊销链接，重复吊销视为成功
	Revoke(ctx context.Context, uid int64, linkID int64) error

	// ListForOwner 列出属主全部链接，按创建时间倒序
	ListForOwner(ctx context.Context, uid int64) ([]*dto.ShareLinkDTO, error)

	// Sweep revokes every expired non-revoked link in one transaction and
	// returns the revoked ids. Safe to invoke repeatedly.
	// Sweep 在单个事务内吊销全部已过期未吊销的链接并返回其 ID，可重复调用。
	Sweep(ctx context.Context, now time.Time) ([]int64, error)
}

// shareService implementation of ShareService interface
// shareService 实现 ShareService 接口
type shareService struct {
	linkRepo domain.PublicLinkRepository
	noteRepo domain.NoteRepository
	logger   *zap.Logger
	config   *ServiceConfig
}

// NewShareService creates ShareService instance
// NewShareService 创建 ShareService 实例
func NewShareService(linkRepo domain.PublicLinkRepository, noteRepo domain.NoteRepository, logger *zap.Logger, config *ServiceConfig) ShareService {
	return &shareService{
		linkRepo: linkRepo,
		noteRepo: noteRepo,
		logger:   logger,
		config:   config,
	}
}

// linkToDTO 将链接领域模型转换为 DTO
func linkToDTO(l *domain.OwnedLink) *dto.ShareLinkDTO {
	if l == nil || l.Link == nil {
		return nil
	}
	return &dto.ShareLinkDTO{
		ID:        l.Link.ID,
		NoteID:    l.Link.NoteID,
		NoteTitle: l.NoteTitle,
		Token:     l.Link.Token,
		ExpiresAt: l.Link.ExpiresAt,
		Revoked:   l.Link.Revoked,
		CreatedAt: timex.Time(l.Link.CreatedAt),
	}
}

// noteToDTO 将笔记领域模型转换为 DTO
func noteToDTO(n *domain.Note) *dto.NoteDTO {
	if n == nil {
		return nil
	}
	return &dto.NoteDTO{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      n.Tags,
		Period:    n.Period,
		Region:    n.Region,
		CreatedAt: timex.Time(n.CreatedAt),
		UpdatedAt: timex.Time(n.UpdatedAt),
	}
}

// Share 签发或刷新分享链接
func (s *shareService) Share(ctx context.Context, uid int64, noteID int64, ttlDays *int64) (*dto.ShareCreateResponse, error) {
	// 属主校验，非属主笔记与不存在笔记同样返回 NotFound
	note, err := s.noteRepo.GetByID(ctx, noteID, uid)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	if note == nil {
		return nil, code.ErrorNoteNotFound
	}

	now := time.Now()
	expiresAt := ""
	if ttlDays != nil {
		expiresAt = now.Add(time.Duration(*ttlDays) * 24 * time.Hour).Format(time.RFC3339)
	}

	existing, err := s.linkRepo.GetByNoteID(ctx, noteID)
	if err != nil {
		return nil, code.ErrorDBQuery
	}

	if existing != nil {
		// 令牌保持不变；仅在携带 TTL 时刷新过期时间并恢复已吊销的链接
		if ttlDays != nil {
			if err := s.linkRepo.UpdateExpiry(ctx, existing.ID, expiresAt); err != nil {
				s.logger.Error("share refresh failed", zap.Int64("linkId", existing.ID), zap.Error(err))
				return nil, code.ErrorShareCreate
			}
			existing.ExpiresAt = expiresAt
		}
		return &dto.ShareCreateResponse{
			LinkID:    existing.ID,
			Token:     existing.Token,
			ExpiresAt: existing.ExpiresAt,
		}, nil
	}

	link, err := s.linkRepo.Create(ctx, &domain.PublicLink{
		NoteID:    noteID,
		Token:     util.GenerateShareToken(),
		ExpiresAt: expiresAt,
		Revoked:   false,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error("share create failed", zap.Int64("noteId", noteID), zap.Error(err))
		return nil, code.ErrorShareCreate
	}

	return &dto.ShareCreateResponse{
		LinkID:    link.ID,
		Token:     link.Token,
		ExpiresAt: link.ExpiresAt,
	}, nil
}

// Resolve 按令牌解析笔记
func (s *shareService) Resolve(ctx context.Context, token string) (*dto.NoteDTO, error) {
	link, err := s.linkRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	// 不存在、已吊销、已过期统一返回 NotFound；
	// 无法解析的过期时间不视为过期（解析失败放行，确认过期拒绝）
	if link == nil || !link.Resolvable(time.Now()) {
		return nil, code.ErrorShareNotFound
	}

	note, err := s.noteRepo.GetAnyByID(ctx, link.NoteID)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	if note == nil {
		// 孤儿链接：笔记已删除
		return nil, code.ErrorShareNotFound
	}
	return noteToDTO(note), nil
}

// Revoke 吊销分享链接
func (s *shareService) Revoke(ctx context.Context, uid int64, linkID int64) error {
	link, err := s.linkRepo.GetByID(ctx, linkID)
	if err != nil {
		return code.ErrorDBQuery
	}
	if link == nil {
		return code.ErrorShareNotFound
	}

	// 属主通过所链接笔记间接判定
	note, err := s.noteRepo.GetAnyByID(ctx, link.NoteID)
	if err != nil {
		return code.ErrorDBQuery
	}
	if note == nil {
		return code.ErrorShareNotFound
	}
	if note.OwnerUID != uid {
		return code.ErrorForbidden
	}

	// 已吊销的链接重复吊销视为成功
	if link.Revoked {
		return nil
	}
	if err := s.linkRepo.UpdateRevoked(ctx, linkID, true); err != nil {
		s.logger.Error("share revoke failed", zap.Int64("linkId", linkID), zap.Error(err))
		return code.ErrorShareRevoke
	}
	return nil
}

// ListForOwner 列出属主全部链接
func (s *shareService) ListForOwner(ctx context.Context, uid int64) ([]*dto.ShareLinkDTO, error) {
	links, err := s.linkRepo.ListByOwner(ctx, uid)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	result := make([]*dto.ShareLinkDTO, 0, len(links))
	for _, l := range links {
		result = append(result, linkToDTO(l))
	}
	return result, nil
}

// Sweep 吊销全部已过期未吊销的链接
func (s *shareService) Sweep(ctx context.Context, now time.Time) ([]int64, error) {
	candidates, err := s.linkRepo.ListExpiring(ctx)
	if err != nil {
		return nil, err
	}

	var expired []int64
	for _, link := range candidates {
		// 与 Resolve 同一策略：无法解析的时间静默跳过
		if link.Expired(now) {
			expired = append(expired, link.ID)
		}
	}
	if len(expired) == 0 {
		return nil, nil
	}

	if err := s.linkRepo.RevokeAll(ctx, expired); err != nil {
		s.logger.Error("share sweep failed", zap.Int("count", len(expired)), zap.Error(err))
		return nil, err
	}
	s.logger.Info("share sweep revoked expired links", zap.Int64s("linkIds", expired))
	return expired, nil
}
