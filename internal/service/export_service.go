// Package service 实现业务逻辑层
package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/chroniclenote/chronicle-note-service/internal/domain"
	"github.com/chroniclenote/chronicle-note-service/internal/dto"
	"github.com/chroniclenote/chronicle-note-service/pkg/code"
	"github.com/chroniclenote/chronicle-note-service/pkg/timex"
)

// ExportService defines the note export service interface; all renderers are
// pure transforms over already-fetched notes
// ExportService 定义笔记导出服务接口；所有渲染均为已取出笔记上的纯转换
type ExportService interface {
	// ExportMarkdown renders one owned note as markdown; the download filename
	// derives from the title with spaces replaced by underscores
	// ExportMarkdown 将单条属主笔记渲染为 Markdown，下载文件名由标题生成，空格替换为下划线
	ExportMarkdown(ctx context.Context, uid int64, noteID int64) (filename string, markdown string, err error)

	// ExportCSV 将属主全部笔记渲染为 CSV
	ExportCSV(ctx context.Context, uid int64) ([]byte, error)

	// ToMarkdown 渲染单条笔记
	ToMarkdown(note *dto.NoteDTO) string

	// ToCSV 渲染笔记列表
	ToCSV(notes []*dto.NoteDTO) ([]byte, error)
}

// exportService 实现 ExportService 接口
type exportService struct {
	noteRepo domain.NoteRepository
}

// NewExportService 创建 ExportService 实例
func NewExportService(noteRepo domain.NoteRepository) ExportService {
	return &exportService{noteRepo: noteRepo}
}

// timeField 零值时间渲染为空串
func timeField(t timex.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.String()
}

// ToMarkdown 渲染 Markdown，空字段渲染为空串
func (s *exportService) ToMarkdown(note *dto.NoteDTO) string {
	return fmt.Sprintf("# %s\n\n<!-- period:%s region:%s tags:%s -->\n\n%s",
		note.Title, note.Period, note.Region, note.Tags, note.Content)
}

// ToCSV 渲染 CSV，标准转义规则，空字段渲染为空串
func (s *exportService) ToCSV(notes []*dto.NoteDTO) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "title", "tags", "period", "region", "created_at", "updated_at", "content"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, n := range notes {
		record := []string{
			strconv.FormatInt(n.ID, 10),
			n.Title,
			n.Tags,
			n.Period,
			n.Region,
			timeField(n.CreatedAt),
			timeField(n.UpdatedAt),
			n.Content,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// markdownFilename 无标题笔记退化为 note-{id}
func markdownFilename(note *domain.Note) string {
	title := note.Title
	if title == "" {
		title = fmt.Sprintf("note-%d", note.ID)
	}
	return fmt.Sprintf("%s-%d.md", strings.ReplaceAll(title, " ", "_"), note.ID)
}

// ExportMarkdown 导出单条笔记
func (s *exportService) ExportMarkdown(ctx context.Context, uid int64, noteID int64) (string, string, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID, uid)
	if err != nil {
		return "", "", code.ErrorDBQuery
	}
	if note == nil {
		return "", "", code.ErrorNoteNotFound
	}
	return markdownFilename(note), s.ToMarkdown(noteToDTO(note)), nil
}

// ExportCSV 导出属主全部笔记，按创建时间倒序
func (s *exportService) ExportCSV(ctx context.Context, uid int64) ([]byte, error) {
	notes, err := s.noteRepo.ListAll(ctx, uid)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	items := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		items = append(items, noteToDTO(n))
	}
	out, err := s.ToCSV(items)
	if err != nil {
		return nil, code.ErrorNoteExport
	}
	return out, nil
}
