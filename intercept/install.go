package intercept

import (
	"context"
	"sync"

	"kvideo/utils"

	http "github.com/bogdanfinn/fhttp"
)

// interceptor 对四个派发点做包装: URL 位置上的字符串入参先过 transform,
// 其余入参原样透传,底层实现的返回值与错误不做任何处理
type interceptor struct {
	next      Dispatcher
	transform func(string) string
}

// Install 给派发器装上 URL 改写包装
// 已装过包装的派发器原样返回: 原始实现只被捕获一次,不会层层嵌套
func Install(d Dispatcher, transform func(string) string) Dispatcher {
	if w, ok := d.(*interceptor); ok {
		return w
	}
	return &interceptor{next: d, transform: transform}
}

// rewrite 只改写字符串,其他类型一概不拆看、不改动
func (w *interceptor) rewrite(v any) any {
	if s, ok := v.(string); ok {
		return w.transform(s)
	}
	return v
}

func (w *interceptor) Fetch(ctx context.Context, input any) (*http.Response, error) {
	return w.next.Fetch(ctx, w.rewrite(input))
}

func (w *interceptor) Open(ctx context.Context, method string, u any) (*http.Request, error) {
	return w.next.Open(ctx, method, w.rewrite(u))
}

func (w *interceptor) PushState(ctx context.Context, state any, title string, u any) error {
	return w.next.PushState(ctx, state, title, w.rewrite(u))
}

func (w *interceptor) ReplaceState(ctx context.Context, state any, title string, u any) error {
	return w.next.ReplaceState(ctx, state, title, w.rewrite(u))
}

// 进程级默认派发器
var (
	defaultMu         sync.RWMutex
	defaultDispatcher Dispatcher
	baseClient        *Client
)

func init() {
	baseClient = NewClient(utils.TlsClient)
	defaultDispatcher = baseClient
}

// SessionHistory 进程级会话导航历史
func SessionHistory() *History {
	return baseClient.History()
}

// Default 当前进程级派发器
// 激活前拿到的是裸实现,激活后拿到带 URL 改写的包装
func Default() Dispatcher {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultDispatcher
}

// Activate 用 transform 包装默认派发器
// 四个派发点在同一临界区内一次换齐,外部观察不到换了一半的状态;
// 重复激活不产生第二层包装
func Activate(transform func(string) string) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDispatcher = Install(defaultDispatcher, transform)
}

// SetDefault 注入自定义派发器,测试时替换后需自行恢复
func SetDefault(d Dispatcher) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDispatcher = d
}
