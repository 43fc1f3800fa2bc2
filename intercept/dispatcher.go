package intercept

import (
	"context"

	http "github.com/bogdanfinn/fhttp"
)

// Dispatcher 页面级的四个全局派发点
// 应用代码一律经由注入的派发器走出站请求和导航历史,不直接摸 HTTP 客户端
type Dispatcher interface {
	// Fetch 发出一次出站请求
	// input 为字符串 URL,或已构造好的 *http.Request(后者不会被拆看或改动)
	Fetch(ctx context.Context, input any) (*http.Response, error)

	// Open 构造但不发送一次请求,两步式调用的第一步
	Open(ctx context.Context, method string, url any) (*http.Request, error)

	// PushState 向会话导航历史追加一条记录
	PushState(ctx context.Context, state any, title string, url any) error

	// ReplaceState 用新记录替换当前导航记录
	ReplaceState(ctx context.Context, state any, title string, url any) error
}
