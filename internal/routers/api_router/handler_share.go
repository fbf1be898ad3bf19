package api_router

import (
	"github.com/chroniclenote/chronicle-note-service/internal/app"
	"github.com/chroniclenote/chronicle-note-service/internal/dto"
	pkgapp "github.com/chroniclenote/chronicle-note-service/pkg/app"
	"github.com/chroniclenote/chronicle-note-service/pkg/code"
	apperrors "github.com/chroniclenote/chronicle-note-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShareHandler public link API router handler
// ShareHandler 公开链接 API 路由处理器
type ShareHandler struct {
	*Handler
}

// NewShareHandler 创建 ShareHandler 实例
func NewShareHandler(a *app.App) *ShareHandler {
	return &ShareHandler{
		Handler: NewHandler(a),
	}
}

// Create issues or refreshes the public link of an owned note
// Create 为属主笔记签发或刷新公开链接
func (h *ShareHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ShareCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ShareHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	shareDTO, err := h.App.ShareService.Share(ctx, uid, params.NoteID, params.TtlDays)
	if err != nil {
		h.logError(ctx, "ShareHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(shareDTO))
}

// Resolve resolves a note by bearer token without authentication.
// A missing, revoked or expired link is reported identically.
// Resolve 免认证按令牌解析笔记；不存在、已吊销、已过期返回同一错误
func (h *ShareHandler) Resolve(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	token := c.Param("token")

	ctx := c.Request.Context()

	noteDTO, err := h.App.ShareService.Resolve(ctx, token)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Revoke 吊销分享链接，属主通过所链接笔记间接判定
func (h *ShareHandler) Revoke(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ShareRevokeRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	if err := h.App.ShareService.Revoke(ctx, uid, params.LinkID); err != nil {
		h.logError(ctx, "ShareHandler.Revoke", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}

// List 列出属主全部分享链接
func (h *ShareHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	links, err := h.App.ShareService.ListForOwner(ctx, uid)
	if err != nil {
		h.logError(ctx, "ShareHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(links))
}
