package task

import (
	"context"
	"time"

	"github.com/chroniclenote/chronicle-note-service/internal/service"

	"go.uber.org/zap"
)

// ShareCleanupTask revokes expired, non-revoked public links on a schedule.
// Each run is idempotent: an immediate second run finds nothing new.
// ShareCleanupTask 定时吊销已过期未吊销的公开链接。
// 每次执行均幂等：紧接着的下一次执行不会有新结果。
type ShareCleanupTask struct {
	shareService service.ShareService
	logger       *zap.Logger
	interval     time.Duration
}

// NewShareCleanupTask 创建过期分享清理任务，interval <= 0 表示不调度
func NewShareCleanupTask(shareService service.ShareService, logger *zap.Logger, interval time.Duration) *ShareCleanupTask {
	return &ShareCleanupTask{
		shareService: shareService,
		logger:       logger,
		interval:     interval,
	}
}

// Name 返回任务名称
func (t *ShareCleanupTask) Name() string {
	return "ShareCleanupTask"
}

// Run 执行清理任务
func (t *ShareCleanupTask) Run(ctx context.Context) error {
	revoked, err := t.shareService.Sweep(ctx, time.Now())
	if err != nil {
		t.logger.Error(t.Name()+" failed", zap.Error(err))
		return err
	}
	if len(revoked) == 0 {
		t.logger.Info(t.Name() + " completed, no expired links found")
	} else {
		t.logger.Info(t.Name()+" completed", zap.Int64s("revokedLinkIds", revoked))
	}
	return nil
}

// LoopInterval 返回执行间隔
func (t *ShareCleanupTask) LoopInterval() time.Duration {
	return t.interval
}

// IsStartupRun 是否立即执行一次
func (t *ShareCleanupTask) IsStartupRun() bool {
	return true
}
