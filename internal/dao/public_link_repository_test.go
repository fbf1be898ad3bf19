package dao

import (
	"context"
	"testing"
	"time"

	"github.com/chroniclenote/chronicle-note-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func seedLink(t *testing.T, repo domain.PublicLinkRepository, link *domain.PublicLink) *domain.PublicLink {
	t.Helper()

	now := time.Now()
	if link.CreatedAt.IsZero() {
		link.CreatedAt = now
	}
	if link.UpdatedAt.IsZero() {
		link.UpdatedAt = now
	}
	created, err := repo.Create(context.Background(), link)
	if err != nil {
		t.Fatal(err)
	}
	return created
}

func TestPublicLinkRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewPublicLinkRepository(d)

	expiresAt := time.Now().Add(time.Hour).Format(time.RFC3339)
	created := seedLink(t, repo, &domain.PublicLink{NoteID: 10, Token: "tok-a", ExpiresAt: expiresAt})
	assert.NotZero(t, created.ID)

	byToken, err := repo.GetByToken(ctx, "tok-a")
	assert.Nil(t, err)
	assert.Equal(t, created.ID, byToken.ID)
	assert.Equal(t, expiresAt, byToken.ExpiresAt)
	assert.False(t, byToken.Revoked)

	missing, err := repo.GetByToken(ctx, "no-such-token")
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

// 竞态产生的重复行取最早创建的一条，保证令牌稳定
func TestPublicLinkRepositoryGetByNoteIDEarliest(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewPublicLinkRepository(d)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedLink(t, repo, &domain.PublicLink{NoteID: 10, Token: "first", CreatedAt: base, UpdatedAt: base})
	seedLink(t, repo, &domain.PublicLink{NoteID: 10, Token: "second", CreatedAt: base.Add(time.Minute), UpdatedAt: base.Add(time.Minute)})

	got, err := repo.GetByNoteID(ctx, 10)
	assert.Nil(t, err)
	assert.Equal(t, "first", got.Token)
}

// UpdateExpiry 刷新过期时间的同时清除吊销标记
func TestPublicLinkRepositoryUpdateExpiryClearsRevoked(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewPublicLinkRepository(d)

	created := seedLink(t, repo, &domain.PublicLink{NoteID: 10, Token: "tok"})
	assert.Nil(t, repo.UpdateRevoked(ctx, created.ID, true))

	got, err := repo.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.True(t, got.Revoked)

	newExpiry := time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339)
	assert.Nil(t, repo.UpdateExpiry(ctx, created.ID, newExpiry))

	got, err = repo.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.False(t, got.Revoked)
	assert.Equal(t, newExpiry, got.ExpiresAt)
}

func TestPublicLinkRepositoryListByOwner(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	repo := NewPublicLinkRepository(d)

	mine := seedNote(t, noteRepo, 1, &domain.Note{Title: "帝国兴衰"})
	mine2 := seedNote(t, noteRepo, 1, &domain.Note{Title: "航海时代"})
	other := seedNote(t, noteRepo, 2, &domain.Note{Title: "not mine"})

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedLink(t, repo, &domain.PublicLink{NoteID: mine.ID, Token: "a", CreatedAt: base, UpdatedAt: base})
	seedLink(t, repo, &domain.PublicLink{NoteID: mine2.ID, Token: "b", CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)})
	seedLink(t, repo, &domain.PublicLink{NoteID: other.ID, Token: "c"})

	links, err := repo.ListByOwner(ctx, 1)
	assert.Nil(t, err)
	assert.Len(t, links, 2)

	// 按创建时间倒序，携带笔记标题
	assert.Equal(t, "b", links[0].Link.Token)
	assert.Equal(t, "航海时代", links[0].NoteTitle)
	assert.Equal(t, "a", links[1].Link.Token)
	assert.Equal(t, "帝国兴衰", links[1].NoteTitle)
}

func TestPublicLinkRepositorySweepHelpers(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewPublicLinkRepository(d)

	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	expired := seedLink(t, repo, &domain.PublicLink{NoteID: 1, Token: "expired", ExpiresAt: past})
	seedLink(t, repo, &domain.PublicLink{NoteID: 2, Token: "永久", ExpiresAt: ""})
	revoked := seedLink(t, repo, &domain.PublicLink{NoteID: 3, Token: "revoked", ExpiresAt: past})
	assert.Nil(t, repo.UpdateRevoked(ctx, revoked.ID, true))

	// 仅未吊销且设置了过期时间的链接进入候选集
	candidates, err := repo.ListExpiring(ctx)
	assert.Nil(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, expired.ID, candidates[0].ID)

	assert.Nil(t, repo.RevokeAll(ctx, []int64{expired.ID}))

	got, err := repo.GetByID(ctx, expired.ID)
	assert.Nil(t, err)
	assert.True(t, got.Revoked)

	// 空 ID 列表无操作
	assert.Nil(t, repo.RevokeAll(ctx, nil))
}
