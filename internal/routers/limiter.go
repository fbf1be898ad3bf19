package routers

import (
	"time"

	"github.com/chroniclenote/chronicle-note-service/pkg/limiter"
)

// newMethodLimiters 注册按路由限流规则
func newMethodLimiters() limiter.Face {
	return limiter.NewMethodLimiter().AddBuckets(
		limiter.BucketRule{
			Key:          "/api/user/register",
			FillInterval: time.Second,
			Capacity:     10,
			Quantum:      10,
		},
		limiter.BucketRule{
			Key:          "/api/user/login",
			FillInterval: time.Second,
			Capacity:     10,
			Quantum:      10,
		},
	)
}
