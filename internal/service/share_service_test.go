package service

import (
	"context"
	"testing"
	"time"

	"github.com/chroniclenote/chronicle-note-service/internal/domain"
	"github.com/chroniclenote/chronicle-note-service/pkg/code"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockNoteRepo 内存笔记仓储，按属主过滤
type mockNoteRepo struct {
	domain.NoteRepository
	notes map[int64]*domain.Note
}

func newMockNoteRepo(notes ...*domain.Note) *mockNoteRepo {
	m := &mockNoteRepo{notes: make(map[int64]*domain.Note)}
	for _, n := range notes {
		m.notes[n.ID] = n
	}
	return m
}

func (m *mockNoteRepo) GetByID(ctx context.Context, id, uid int64) (*domain.Note, error) {
	n, ok := m.notes[id]
	if !ok || n.OwnerUID != uid {
		return nil, nil
	}
	return n, nil
}

func (m *mockNoteRepo) GetAnyByID(ctx context.Context, id int64) (*domain.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, nil
	}
	return n, nil
}

// mockLinkRepo 内存公开链接仓储，行为与 dao 实现一致
type mockLinkRepo struct {
	domain.PublicLinkRepository
	links  map[int64]*domain.PublicLink
	nextID int64
}

func newMockLinkRepo() *mockLinkRepo {
	return &mockLinkRepo{links: make(map[int64]*domain.PublicLink), nextID: 1}
}

func (m *mockLinkRepo) GetByID(ctx context.Context, id int64) (*domain.PublicLink, error) {
	l, ok := m.links[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (m *mockLinkRepo) GetByToken(ctx context.Context, token string) (*domain.PublicLink, error) {
	for _, l := range m.links {
		if l.Token == token {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockLinkRepo) GetByNoteID(ctx context.Context, noteID int64) (*domain.PublicLink, error) {
	var found *domain.PublicLink
	for _, l := range m.links {
		if l.NoteID != noteID {
			continue
		}
		if found == nil || l.ID < found.ID {
			found = l
		}
	}
	if found == nil {
		return nil, nil
	}
	cp := *found
	return &cp, nil
}

func (m *mockLinkRepo) Create(ctx context.Context, link *domain.PublicLink) (*domain.PublicLink, error) {
	cp := *link
	cp.ID = m.nextID
	m.nextID++
	m.links[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *mockLinkRepo) UpdateExpiry(ctx context.Context, id int64, expiresAt string) error {
	l := m.links[id]
	l.ExpiresAt = expiresAt
	l.Revoked = false
	return nil
}

func (m *mockLinkRepo) UpdateRevoked(ctx context.Context, id int64, revoked bool) error {
	m.links[id].Revoked = revoked
	return nil
}

func (m *mockLinkRepo) ListExpiring(ctx context.Context) ([]*domain.PublicLink, error) {
	var out []*domain.PublicLink
	for _, l := range m.links {
		if !l.Revoked && l.ExpiresAt != "" {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockLinkRepo) RevokeAll(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		m.links[id].Revoked = true
	}
	return nil
}

func newTestShareService(noteRepo domain.NoteRepository, linkRepo domain.PublicLinkRepository) ShareService {
	return NewShareService(linkRepo, noteRepo, zap.NewNop(), &ServiceConfig{})
}

func int64Ptr(v int64) *int64 {
	return &v
}

// 分享、解析、吊销、重新分享的完整生命周期
func TestShareLifecycle(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	noteRepo := newMockNoteRepo(&domain.Note{ID: 10, OwnerUID: uid, Title: "罗马帝国的衰亡", Content: "Edward Gibbon"})
	linkRepo := newMockLinkRepo()
	svc := newTestShareService(noteRepo, linkRepo)

	// 无 TTL 分享，过期时间为空
	created, err := svc.Share(ctx, uid, 10, nil)
	assert.Nil(t, err)
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "", created.ExpiresAt)

	// 公开解析无需认证
	note, err := svc.Resolve(ctx, created.Token)
	assert.Nil(t, err)
	assert.Equal(t, "罗马帝国的衰亡", note.Title)

	// 吊销后解析与不存在不可区分
	err = svc.Revoke(ctx, uid, created.LinkID)
	assert.Nil(t, err)

	_, err = svc.Resolve(ctx, created.Token)
	assert.Equal(t, code.ErrorShareNotFound, err)

	// 带 TTL 重新分享：复用令牌、刷新过期时间、清除吊销标记
	refreshed, err := svc.Share(ctx, uid, 10, int64Ptr(7))
	assert.Nil(t, err)
	assert.Equal(t, created.Token, refreshed.Token)
	assert.Equal(t, created.LinkID, refreshed.LinkID)
	assert.NotEmpty(t, refreshed.ExpiresAt)

	note, err = svc.Resolve(ctx, created.Token)
	assert.Nil(t, err)
	assert.Equal(t, "罗马帝国的衰亡", note.Title)
}

// 重复分享幂等：令牌与链接 ID 保持不变
func TestShareIdempotent(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	noteRepo := newMockNoteRepo(&domain.Note{ID: 10, OwnerUID: uid})
	linkRepo := newMockLinkRepo()
	svc := newTestShareService(noteRepo, linkRepo)

	first, err := svc.Share(ctx, uid, 10, nil)
	assert.Nil(t, err)

	second, err := svc.Share(ctx, uid, 10, nil)
	assert.Nil(t, err)
	assert.Equal(t, first.Token, second.Token)
	assert.Equal(t, first.LinkID, second.LinkID)
	// 不带 TTL 的重复分享不改变过期时间
	assert.Equal(t, first.ExpiresAt, second.ExpiresAt)
	assert.Len(t, linkRepo.links, 1)
}

// 无 TTL 的重复分享不重置已有过期时间
func TestShareWithoutTtlKeepsExpiry(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	noteRepo := newMockNoteRepo(&domain.Note{ID: 10, OwnerUID: uid})
	linkRepo := newMockLinkRepo()
	svc := newTestShareService(noteRepo, linkRepo)

	first, err := svc.Share(ctx, uid, 10, int64Ptr(3))
	assert.Nil(t, err)
	assert.NotEmpty(t, first.ExpiresAt)

	second, err := svc.Share(ctx, uid, 10, nil)
	assert.Nil(t, err)
	assert.Equal(t, first.ExpiresAt, second.ExpiresAt)
}

// 分享非属主或不存在的笔记统一返回 NotFound
func TestShareNotOwnedNote(t *testing.T) {
	ctx := context.Background()

	noteRepo := newMockNoteRepo(&domain.Note{ID: 10, OwnerUID: 1})
	linkRepo := newMockLinkRepo()
	svc := newTestShareService(noteRepo, linkRepo)

	_, err := svc.Share(ctx, 2, 10, nil)
	assert.Equal(t, code.ErrorNoteNotFound, err)

	_, err = svc.Share(ctx, 1, 99, nil)
	assert.Equal(t, code.ErrorNoteNotFound, err)
	assert.Len(t, linkRepo.links, 0)
}

// 非属主吊销返回 Forbidden 且不改变状态
func TestRevokeForbidden(t *testing.T) {
	ctx := context.Background()

	noteRepo := newMockNoteRepo(&domain.Note{ID: 10, OwnerUID: 1})
	linkRepo := newMockLinkRepo()
	svc := newTestShareService(noteRepo, linkRepo)

	created, err := svc.Share(ctx, 1, 10, nil)
	assert.Nil(t, err)

	err = svc.Revoke(ctx, 2, created.LinkID)
	assert.Equal(t, code.ErrorForbidden, err)
	assert.False(t, linkRepo.links[created.LinkID].Revoked)

	// 链接本身可继续解析
	_, err = svc.Resolve(ctx, created.Token)
	assert.Nil(t, err)
}

// 重复吊销视为成功
func TestRevokeIdempotent(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	noteRepo := newMockNoteRepo(&domain.Note{ID: 10, OwnerUID: uid})
	linkRepo := newMockLinkRepo()
	svc := newTestShareService(noteRepo, linkRepo)

	created, err := svc.Share(ctx, uid, 10, nil)
	assert.Nil(t, err)

	assert.Nil(t, svc.Revoke(ctx, uid, created.LinkID))
	assert.Nil(t, svc.Revoke(ctx, uid, created.LinkID))
}

// 吊销不存在的链接返回 NotFound
func TestRevokeMissingLink(t *testing.T) {
	ctx := context.Background()

	svc := newTestShareService(newMockNoteRepo(), newMockLinkRepo())
	err := svc.Revoke(ctx, 1, 99)
	assert.Equal(t, code.ErrorShareNotFound, err)
}

// 过期与无法解析的过期时间
func TestResolveExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	noteRepo := newMockNoteRepo(&domain.Note{ID: 10, OwnerUID: 1, Title: "note"})
	linkRepo := newMockLinkRepo()
	svc := newTestShareService(noteRepo, linkRepo)

	tests := []struct {
		name      string
		expiresAt string
		wantErr   error
	}{
		{"no expiry never expires", "", nil},
		{"future expiry resolves", now.Add(time.Hour).Format(time.RFC3339), nil},
		{"past expiry rejected", now.Add(-time.Hour).Format(time.RFC3339), code.ErrorShareNotFound},
		// 解析失败放行，确认过期拒绝
		{"unparseable expiry resolves", "not-a-timestamp", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := linkRepo.Create(ctx, &domain.PublicLink{
				NoteID:    10,
				Token:     "tok-" + tt.name,
				ExpiresAt: tt.expiresAt,
			})
			assert.Nil(t, err)

			_, err = svc.Resolve(ctx, link.Token)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

// 孤儿链接（笔记已删除）解析返回 NotFound
func TestResolveOrphanLink(t *testing.T) {
	ctx := context.Background()

	linkRepo := newMockLinkRepo()
	_, err := linkRepo.Create(ctx, &domain.PublicLink{NoteID: 99, Token: "orphan"})
	assert.Nil(t, err)

	svc := newTestShareService(newMockNoteRepo(), linkRepo)
	_, err = svc.Resolve(ctx, "orphan")
	assert.Equal(t, code.ErrorShareNotFound, err)
}

// Sweep 恰好吊销已过期未吊销的链接，且可重复执行
func TestSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	linkRepo := newMockLinkRepo()
	expired, _ := linkRepo.Create(ctx, &domain.PublicLink{NoteID: 1, Token: "a", ExpiresAt: now.Add(-time.Hour).Format(time.RFC3339)})
	_, _ = linkRepo.Create(ctx, &domain.PublicLink{NoteID: 2, Token: "b", ExpiresAt: now.Add(time.Hour).Format(time.RFC3339)})
	_, _ = linkRepo.Create(ctx, &domain.PublicLink{NoteID: 3, Token: "c", ExpiresAt: ""})
	alreadyRevoked, _ := linkRepo.Create(ctx, &domain.PublicLink{NoteID: 4, Token: "d", ExpiresAt: now.Add(-time.Hour).Format(time.RFC3339)})
	_ = linkRepo.UpdateRevoked(ctx, alreadyRevoked.ID, true)
	// 无法解析的过期时间静默跳过
	_, _ = linkRepo.Create(ctx, &domain.PublicLink{NoteID: 5, Token: "e", ExpiresAt: "garbage"})

	svc := newTestShareService(newMockNoteRepo(), linkRepo)

	revoked, err := svc.Sweep(ctx, now)
	assert.Nil(t, err)
	assert.Equal(t, []int64{expired.ID}, revoked)
	assert.True(t, linkRepo.links[expired.ID].Revoked)

	// 再次执行无事可做
	revoked, err = svc.Sweep(ctx, now)
	assert.Nil(t, err)
	assert.Nil(t, revoked)
}

// 属性测试：对任意 TTL 序列重复分享同一笔记，令牌始终不变
func TestPropertyShareTokenStable(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("re-sharing keeps the original token", prop.ForAll(
		func(ttls []int64) bool {
			ctx := context.Background()
			uid := int64(1)

			noteRepo := newMockNoteRepo(&domain.Note{ID: 10, OwnerUID: uid})
			linkRepo := newMockLinkRepo()
			svc := newTestShareService(noteRepo, linkRepo)

			first, err := svc.Share(ctx, uid, 10, nil)
			if err != nil {
				return false
			}

			for _, ttl := range ttls {
				var p *int64
				if ttl > 0 {
					v := ttl
					p = &v
				}
				got, err := svc.Share(ctx, uid, 10, p)
				if err != nil || got.Token != first.Token || got.LinkID != first.LinkID {
					return false
				}
			}
			return len(linkRepo.links) == 1
		},
		gen.SliceOf(gen.Int64Range(0, 365)),
	))

	properties.TestingRun(t)
}
