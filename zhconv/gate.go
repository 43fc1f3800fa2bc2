package zhconv

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gtimer"
)

// GateState 就绪门的状态
type GateState int32

const (
	StateWaiting     GateState = iota // 等待转换器就绪
	StateActive                       // 已就绪并完成激活
	StateUnavailable                  // 等待超时,转换能力永久缺席
)

// Gate 就绪门: 定时轮询转换器是否就绪,就绪后恰好执行一次激活回调
// timeout 为 0 时不设上限,按固定间隔一直轮询下去
type Gate struct {
	ready    func() bool
	interval time.Duration
	timeout  time.Duration

	state atomic.Int32
	once  sync.Once
}

// NewGate 创建就绪门,ready 为空时轮询 Ready
func NewGate(ready func() bool, interval, timeout time.Duration) *Gate {
	if ready == nil {
		ready = Ready
	}
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Gate{ready: ready, interval: interval, timeout: timeout}
}

// State 当前状态
func (gate *Gate) State() GateState {
	return GateState(gate.state.Load())
}

// Start 启动轮询,onReady 在就绪后执行一次,此后轮询停止
// 轮询本身不占用调用方,定时任务空转代价可以忽略
func (gate *Gate) Start(ctx context.Context, onReady func()) {
	start := time.Now()
	gtimer.AddSingleton(ctx, gate.interval, func(ctx context.Context) {
		if gate.ready() {
			gate.once.Do(func() {
				gate.state.Store(int32(StateActive))
				g.Log().Info(ctx, "繁简转换器已就绪, URL 转换拦截启用")
				if onReady != nil {
					onReady()
				}
			})
			gtimer.Exit()
		}
		if gate.timeout > 0 && time.Since(start) >= gate.timeout {
			gate.state.Store(int32(StateUnavailable))
			MarkUnavailable()
			g.Log().Warning(ctx, "等待繁简转换器超时, 拦截层保持未启用")
			gtimer.Exit()
		}
	})
}
