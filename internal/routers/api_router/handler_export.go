package api_router

import (
	"fmt"
	"net/http"

	"github.com/chroniclenote/chronicle-note-service/internal/app"
	"github.com/chroniclenote/chronicle-note-service/internal/dto"
	pkgapp "github.com/chroniclenote/chronicle-note-service/pkg/app"
	"github.com/chroniclenote/chronicle-note-service/pkg/code"
	apperrors "github.com/chroniclenote/chronicle-note-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ExportHandler 笔记导出 API 路由处理器
type ExportHandler struct {
	*Handler
}

// NewExportHandler 创建 ExportHandler 实例
func NewExportHandler(a *app.App) *ExportHandler {
	return &ExportHandler{
		Handler: NewHandler(a),
	}
}

// Markdown 导出单条笔记为 Markdown
func (h *ExportHandler) Markdown(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteGetRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	filename, text, err := h.App.ExportService.ExportMarkdown(ctx, uid, params.ID)
	if err != nil {
		h.logError(ctx, "ExportHandler.Markdown", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(text))
}

// CSV 导出属主全部笔记为 CSV
func (h *ExportHandler) CSV(c *gin.Context) {
	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	out, err := h.App.ExportService.ExportCSV(ctx, uid)
	if err != nil {
		h.logError(ctx, "ExportHandler.CSV", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=notes_all_user_%d.csv", uid))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}
