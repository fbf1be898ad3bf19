// Package service 实现业务逻辑层
package service

import (
	"context"
	"strings"

	"github.com/chroniclenote/chronicle-note-service/internal/domain"
	"github.com/chroniclenote/chronicle-note-service/internal/dto"
	"github.com/chroniclenote/chronicle-note-service/pkg/app"
	"github.com/chroniclenote/chronicle-note-service/pkg/code"
	"github.com/chroniclenote/chronicle-note-service/pkg/timex"

	"go.uber.org/zap"
)

// NoteService defines the note business service interface
// NoteService 定义笔记业务服务接口
type NoteService interface {
	// Create creates a note; the title is trimmed and an empty title is kept as ""
	// Create 创建笔记；标题去除首尾空白，空标题按空串保存
	Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)

	// Update overwrites all supplied fields of an owned note
	// Update 覆盖更新属主笔记的全部字段
	Update(ctx context.Context, uid int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error)

	// Delete 删除属主笔记及其全部分享链接
	Delete(ctx context.Context, uid int64, id int64) error

	// Get 获取属主笔记
	Get(ctx context.Context, uid int64, id int64) (*dto.NoteDTO, error)

	// Search 按条件分页检索属主笔记
	Search(ctx context.Context, uid int64, params *dto.NoteSearchRequest, page int) ([]*dto.NoteDTO, int, error)

	// Import imports a markdown document as a new note; a leading heading line
	// becomes its title and the full text is kept as the content
	// Import 将 Markdown 文档导入为新笔记；首行标题行作为笔记标题，全文保留为内容
	Import(ctx context.Context, uid int64, content string) (*dto.NoteDTO, error)

	// Templates 返回内置的笔记模板列表
	Templates() []*dto.NoteTemplateDTO

	// PageSize 返回检索分页大小
	PageSize() int
}

// noteTemplates 内置的世界史笔记模板，只读
var noteTemplates = []*dto.NoteTemplateDTO{
	{
		Name:    "年表",
		Content: "# 年表\n\n- 年份: 主要事件\n",
	},
	{
		Name:    "事件卡片",
		Content: "# 事件名称\n\n**时间:** \n\n**地点:** \n\n**经过:** \n\n**影响:** \n",
	},
	{
		Name:    "关键人物",
		Content: "# 人物姓名\n\n**生卒年:** \n\n**身份:** \n\n**事迹:** \n",
	},
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
	logger   *zap.Logger
	config   *ServiceConfig
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, logger *zap.Logger, config *ServiceConfig) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		logger:   logger,
		config:   config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *noteService) domainToDTO(note *domain.Note) *dto.NoteDTO {
	if note == nil {
		return nil
	}
	return &dto.NoteDTO{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      note.Tags,
		Period:    note.Period,
		Region:    note.Region,
		CreatedAt: timex.Time(note.CreatedAt),
		UpdatedAt: timex.Time(note.UpdatedAt),
	}
}

func (s *noteService) PageSize() int {
	if s.config != nil && s.config.App.PageSize > 0 {
		return s.config.App.PageSize
	}
	return app.DefaultPaginationConfig.DefaultPageSize
}

// Create 创建笔记
func (s *noteService) Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	now := timex.Now().ToTime()
	note, err := s.noteRepo.Create(ctx, &domain.Note{
		Title:     strings.TrimSpace(params.Title),
		Content:   params.Content,
		Tags:      params.Tags,
		Period:    params.Period,
		Region:    params.Region,
		CreatedAt: now,
		UpdatedAt: now,
	}, uid)
	if err != nil {
		s.logger.Error("note create failed", zap.Int64("uid", uid), zap.Error(err))
		return nil, code.ErrorNoteCreate
	}
	return s.domainToDTO(note), nil
}

// Update 更新笔记
func (s *noteService) Update(ctx context.Context, uid int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.Update(ctx, &domain.Note{
		ID:        params.ID,
		Title:     strings.TrimSpace(params.Title),
		Content:   params.Content,
		Tags:      params.Tags,
		Period:    params.Period,
		Region:    params.Region,
		UpdatedAt: timex.Now().ToTime(),
	}, uid)
	if err != nil {
		s.logger.Error("note update failed", zap.Int64("uid", uid), zap.Int64("id", params.ID), zap.Error(err))
		return nil, code.ErrorNoteUpdate
	}
	// 不存在与非属主不可区分
	if note == nil {
		return nil, code.ErrorNoteNotFound
	}
	return s.domainToDTO(note), nil
}

// Delete removes the note and its public links in one storage transaction
// so a failed cascade never leaves dangling resolvable tokens behind.
// Delete 在一个事务内删除笔记及其分享链接，级联失败时整体回滚
func (s *noteService) Delete(ctx context.Context, uid int64, id int64) error {
	if err := s.noteRepo.DeleteWithLinks(ctx, id, uid); err != nil {
		if isRecordNotFound(err) {
			return code.ErrorNoteNotFound
		}
		s.logger.Error("note delete failed", zap.Int64("uid", uid), zap.Int64("id", id), zap.Error(err))
		return code.ErrorNoteDelete
	}
	return nil
}

// Get 获取笔记
func (s *noteService) Get(ctx context.Context, uid int64, id int64) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, id, uid)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	if note == nil {
		return nil, code.ErrorNoteNotFound
	}
	return s.domainToDTO(note), nil
}

// Search 检索笔记，返回条目与总数；越界页码返回空列表
func (s *noteService) Search(ctx context.Context, uid int64, params *dto.NoteSearchRequest, page int) ([]*dto.NoteDTO, int, error) {
	filter := &domain.NoteFilter{
		Text:   params.Q,
		Period: params.Period,
		Region: params.Region,
		Tags:   domain.ParseTagTerms(params.Tags),
	}
	if page < 1 {
		page = 1
	}

	total, err := s.noteRepo.ListCount(ctx, uid, filter)
	if err != nil {
		return nil, 0, code.ErrorDBQuery
	}

	notes, err := s.noteRepo.List(ctx, uid, filter, page, s.PageSize())
	if err != nil {
		return nil, 0, code.ErrorDBQuery
	}

	items := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		items = append(items, s.domainToDTO(n))
	}
	return items, int(total), nil
}

// importTitle 从 Markdown 首行提取标题；非标题行返回空串
func importTitle(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	line = strings.TrimRight(line, "\r")
	if !strings.HasPrefix(line, "#") {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

// Import 导入 Markdown 文档；标签、时期与地区留空
func (s *noteService) Import(ctx context.Context, uid int64, content string) (*dto.NoteDTO, error) {
	now := timex.Now().ToTime()
	note, err := s.noteRepo.Create(ctx, &domain.Note{
		Title:     importTitle(content),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, uid)
	if err != nil {
		s.logger.Error("note import failed", zap.Int64("uid", uid), zap.Error(err))
		return nil, code.ErrorNoteImport
	}
	return s.domainToDTO(note), nil
}

func (s *noteService) Templates() []*dto.NoteTemplateDTO {
	return noteTemplates
}
