package reverse

import (
	"net/url"

	"kvideo/config"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
)

func init() {
	s := g.Server()
	group := s.Group("/")

	group.GET("/", Index)
	group.ALL("/*", Proxy)
}

// Index 首页固定回源到上游站点根路径
func Index(r *ghttp.Request) {
	targetURL := config.BaseUrl + "/"
	if r.URL.RawQuery != "" {
		targetURL += "?" + r.URL.RawQuery
	}
	serveUpstream(r, targetURL, upstreamHost())
}

// upstreamHost 上游主站域名
func upstreamHost() string {
	if u, err := url.Parse(config.BaseUrl); err == nil && u.Host != "" {
		return u.Host
	}
	return "www.olevod.com"
}
