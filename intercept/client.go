package intercept

import (
	"context"
	"net/url"

	"kvideo/utils"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/gogf/gf/v2/errors/gerror"
)

// Client 基础派发实现: 请求经 TLS 指纹客户端发出,导航写内存历史
type Client struct {
	http    tls_client.HttpClient
	history *History
}

func NewClient(hc tls_client.HttpClient) *Client {
	return &Client{http: hc, history: NewHistory()}
}

// History 本派发器的会话导航历史
func (c *Client) History() *History {
	return c.history
}

func (c *Client) Fetch(ctx context.Context, input any) (*http.Response, error) {
	switch v := input.(type) {
	case string:
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, v, nil)
		if err != nil {
			return nil, err
		}
		// 设置默认请求头(不覆盖已设置的)
		for key, value := range utils.DEFAULT_HEADERS {
			if req.Header.Get(key) == "" {
				req.Header.Set(key, value)
			}
		}
		return c.http.Do(req)
	case *http.Request:
		// 现成的请求对象原样发出,不做任何改动
		return c.http.Do(v)
	default:
		return nil, gerror.Newf("不支持的请求入参类型: %T", input)
	}
}

func (c *Client) Open(ctx context.Context, method string, u any) (*http.Request, error) {
	switch v := u.(type) {
	case string:
		return http.NewRequestWithContext(ctx, method, v, nil)
	case *url.URL:
		return http.NewRequestWithContext(ctx, method, v.String(), nil)
	default:
		return nil, gerror.Newf("不支持的 URL 入参类型: %T", u)
	}
}

func (c *Client) PushState(ctx context.Context, state any, title string, u any) error {
	c.history.Push(Entry{State: state, Title: title, URL: u})
	return nil
}

func (c *Client) ReplaceState(ctx context.Context, state any, title string, u any) error {
	c.history.Replace(Entry{State: state, Title: title, URL: u})
	return nil
}
