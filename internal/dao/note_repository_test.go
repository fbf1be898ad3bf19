package dao

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/chroniclenote/chronicle-note-service/internal/domain"
	"github.com/chroniclenote/chronicle-note-service/internal/model"

	"github.com/stretchr/testify/assert"
)

// newTestDao 在临时目录创建 sqlite 数据库
func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := NewDBEngine(&DatabaseConfig{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "test.sqlite3"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := model.AutoMigrateAll(db); err != nil {
		t.Fatal(err)
	}
	return New(db)
}

func seedNote(t *testing.T, repo domain.NoteRepository, uid int64, note *domain.Note) *domain.Note {
	t.Helper()

	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = now
	}
	created, err := repo.Create(context.Background(), note, uid)
	if err != nil {
		t.Fatal(err)
	}
	return created
}

func TestNoteRepositoryOwnerScoping(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewNoteRepository(d)

	mine := seedNote(t, repo, 1, &domain.Note{Title: "mine"})
	other := seedNote(t, repo, 2, &domain.Note{Title: "other"})

	// 属主读取命中
	got, err := repo.GetByID(ctx, mine.ID, 1)
	assert.Nil(t, err)
	assert.Equal(t, "mine", got.Title)

	// 非属主读取等同于不存在
	got, err = repo.GetByID(ctx, other.ID, 1)
	assert.Nil(t, err)
	assert.Nil(t, got)

	// 非属主更新零行生效
	updated, err := repo.Update(ctx, &domain.Note{ID: other.ID, Title: "stolen"}, 1)
	assert.Nil(t, err)
	assert.Nil(t, updated)

	// 非属主删除零行生效
	err = repo.DeleteWithLinks(ctx, other.ID, 1)
	assert.NotNil(t, err)

	// GetAnyByID 不区分属主，仅供公开解析使用
	got, err = repo.GetAnyByID(ctx, other.ID)
	assert.Nil(t, err)
	assert.Equal(t, "other", got.Title)
}

func TestNoteRepositoryDeleteWithLinks(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	linkRepo := NewPublicLinkRepository(d)

	mine := seedNote(t, repo, 1, &domain.Note{Title: "mine"})
	other := seedNote(t, repo, 2, &domain.Note{Title: "other"})

	seedLink(t, linkRepo, &domain.PublicLink{NoteID: mine.ID, Token: "m1"})
	seedLink(t, linkRepo, &domain.PublicLink{NoteID: mine.ID, Token: "m2"})
	keep := seedLink(t, linkRepo, &domain.PublicLink{NoteID: other.ID, Token: "o1"})

	// 笔记与其全部链接一并删除，他人的链接不受影响
	assert.Nil(t, repo.DeleteWithLinks(ctx, mine.ID, 1))

	got, err := linkRepo.GetByToken(ctx, "m1")
	assert.Nil(t, err)
	assert.Nil(t, got)
	got, err = linkRepo.GetByToken(ctx, "m2")
	assert.Nil(t, err)
	assert.Nil(t, got)
	got, err = linkRepo.GetByID(ctx, keep.ID)
	assert.Nil(t, err)
	assert.NotNil(t, got)

	// 非属主删除整体回滚，链接保持原样
	err = repo.DeleteWithLinks(ctx, other.ID, 1)
	assert.NotNil(t, err)

	note, err := repo.GetAnyByID(ctx, other.ID)
	assert.Nil(t, err)
	assert.NotNil(t, note)
	got, err = linkRepo.GetByID(ctx, keep.ID)
	assert.Nil(t, err)
	assert.NotNil(t, got)
}

func TestNoteRepositoryUpdateOverwritesAllFields(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewNoteRepository(d)

	created := seedNote(t, repo, 1, &domain.Note{
		Title: "明朝", Content: "1368-1644", Tags: "empire", Period: "1368", Region: "China",
	})

	// 空字段同样覆盖，不做部分更新
	updated, err := repo.Update(ctx, &domain.Note{
		ID: created.ID, Title: "明朝覆灭", UpdatedAt: time.Now(),
	}, 1)
	assert.Nil(t, err)
	assert.Equal(t, "明朝覆灭", updated.Title)
	assert.Equal(t, "", updated.Content)
	assert.Equal(t, "", updated.Tags)
	assert.Equal(t, "", updated.Period)
	assert.Equal(t, "", updated.Region)
}

func TestNoteRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewNoteRepository(d)

	seedNote(t, repo, 1, &domain.Note{Title: "Punic Wars", Content: "Carthage", Tags: "war,rome", Period: "-264", Region: "Mediterranean"})
	seedNote(t, repo, 1, &domain.Note{Title: "Silk Road", Content: "trade routes", Tags: "trade", Period: "-130", Region: "Central Asia"})
	seedNote(t, repo, 1, &domain.Note{Title: "Reformation", Content: "Luther", Tags: "religion", Period: "1517", Region: "Europe"})
	seedNote(t, repo, 2, &domain.Note{Title: "Punic Wars copy", Tags: "war", Period: "-264"})

	tests := []struct {
		name       string
		filter     *domain.NoteFilter
		wantTitles []string
	}{
		{
			// q 在标题或内容上做子串匹配
			name:       "text matches title",
			filter:     &domain.NoteFilter{Text: "Punic"},
			wantTitles: []string{"Punic Wars"},
		},
		{
			name:       "text matches content",
			filter:     &domain.NoteFilter{Text: "Luther"},
			wantTitles: []string{"Reformation"},
		},
		{
			// period 精确匹配
			name:       "period exact",
			filter:     &domain.NoteFilter{Period: "-264"},
			wantTitles: []string{"Punic Wars"},
		},
		{
			name:       "period no partial match",
			filter:     &domain.NoteFilter{Period: "-26"},
			wantTitles: nil,
		},
		{
			// region 子串匹配
			name:       "region substring",
			filter:     &domain.NoteFilter{Region: "Asia"},
			wantTitles: []string{"Silk Road"},
		},
		{
			// 标签词项之间 OR
			name:       "tags or semantics",
			filter:     &domain.NoteFilter{Tags: []string{"war", "trade"}},
			wantTitles: []string{"Silk Road", "Punic Wars"},
		},
		{
			// 组合条件之间 AND
			name:       "combined filters",
			filter:     &domain.NoteFilter{Text: "Punic", Tags: []string{"war", "trade"}},
			wantTitles: []string{"Punic Wars"},
		},
		{
			name:       "empty filter returns all",
			filter:     nil,
			wantTitles: []string{"Reformation", "Silk Road", "Punic Wars"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := repo.List(ctx, 1, tt.filter, 1, 10)
			assert.Nil(t, err)

			var titles []string
			for _, n := range notes {
				titles = append(titles, n.Title)
			}
			assert.ElementsMatch(t, tt.wantTitles, titles)

			count, err := repo.ListCount(ctx, 1, tt.filter)
			assert.Nil(t, err)
			assert.Equal(t, int64(len(tt.wantTitles)), count)
		})
	}
}

func TestNoteRepositoryPaginationOrder(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewNoteRepository(d)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedNote(t, repo, 1, &domain.Note{
			Title:     fmt.Sprintf("note-%02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	// 最近更新在前
	page1, err := repo.List(ctx, 1, nil, 1, 10)
	assert.Nil(t, err)
	assert.Len(t, page1, 10)
	assert.Equal(t, "note-24", page1[0].Title)

	page3, err := repo.List(ctx, 1, nil, 3, 10)
	assert.Nil(t, err)
	assert.Len(t, page3, 5)
	assert.Equal(t, "note-00", page3[4].Title)

	// 越界页码返回空列表
	page4, err := repo.List(ctx, 1, nil, 4, 10)
	assert.Nil(t, err)
	assert.Len(t, page4, 0)

	count, err := repo.ListCount(ctx, 1, nil)
	assert.Nil(t, err)
	assert.Equal(t, int64(25), count)
}

// 全量导出按创建时间倒序，与分页检索的更新时间倒序无关
func TestNoteRepositoryListAllCreatedOrder(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewNoteRepository(d)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	// oldest 创建最早但更新最晚
	seedNote(t, repo, 1, &domain.Note{Title: "oldest", CreatedAt: base, UpdatedAt: base.Add(3 * time.Hour)})
	seedNote(t, repo, 1, &domain.Note{Title: "middle", CreatedAt: base.Add(time.Hour), UpdatedAt: base})
	seedNote(t, repo, 1, &domain.Note{Title: "newest", CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(time.Hour)})
	seedNote(t, repo, 2, &domain.Note{Title: "other", CreatedAt: base.Add(4 * time.Hour)})

	notes, err := repo.ListAll(ctx, 1)
	assert.Nil(t, err)
	assert.Len(t, notes, 3)
	assert.Equal(t, "newest", notes[0].Title)
	assert.Equal(t, "middle", notes[1].Title)
	assert.Equal(t, "oldest", notes[2].Title)
}
