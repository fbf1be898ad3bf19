// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"os"
	"time"

	"github.com/chroniclenote/chronicle-note-service/internal/app"
	pkgapp "github.com/chroniclenote/chronicle-note-service/pkg/app"
	"github.com/chroniclenote/chronicle-note-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status      string  `json:"status"`      // "healthy" 或 "unhealthy"
	Version     string  `json:"version"`     // 服务版本号
	Uptime      float64 `json:"uptime"`      // 运行时间（秒）
	Database    string  `json:"database"`    // "connected" 或 "error"
	MemoryUsed  uint64  `json:"memoryUsed"`  // 进程常驻内存（字节）
	MemoryTotal uint64  `json:"memoryTotal"` // 系统内存总量（字节）
}

// Check 健康检查接口，包含数据库连接与内存占用
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Version:  h.App.Version().Version,
		Uptime:   time.Since(h.App.StartTime).Seconds(),
		Database: "connected",
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		response.MemoryTotal = vm.Total
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := p.MemoryInfo(); err == nil {
			response.MemoryUsed = info.RSS
		}
	}

	// 检查数据库连接
	if err := h.App.DB.Raw("SELECT 1").Error; err != nil {
		response.Status = "unhealthy"
		response.Database = "error"
		pkgapp.NewResponse(c).ToResponse(code.Failed.WithData(response))
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}
