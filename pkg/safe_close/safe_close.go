// Package safe_close coordinates graceful shutdown of attached goroutines
// Package safe_close 协调已挂接协程的优雅关闭
package safe_close

import (
	"sync"
)

// SafeClose broadcasts a close signal and waits for all attached goroutines
// SafeClose 广播关闭信号并等待所有挂接的协程退出
type SafeClose struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	closeSignal chan struct{}
	closed      bool
	err         error
}

// NewSafeClose 创建 SafeClose 实例
func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach runs f in its own goroutine; f must call done() when it has
// finished and should exit promptly once closeSignal fires
// Attach 在独立协程中运行 f；f 结束时必须调用 done()，收到 closeSignal 后应尽快退出
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	go f(s.wg.Done, s.closeSignal)
}

// SendCloseSignal closes the signal channel once, recording the first error
// SendCloseSignal 仅关闭一次信号通道，并记录首个错误
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed blocks until every attached goroutine called done()
// WaitClosed 阻塞直到所有挂接协程调用 done()
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
