package config

import (
	"time"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gctx"
)

var (
	PORT     = 8080 // 端口
	BaseUrl  = "https://www.olevod.com"
	ProxyURL = ""

	// OpenCC 转换方案,t2s 表示繁体转简体
	ConversionProfile = "t2s"

	// 转换器就绪轮询间隔
	ConvertPollInterval = 100 * time.Millisecond

	// 等待转换器就绪的上限,0 表示不设上限、一直轮询
	ConvertWaitTimeout = time.Duration(0)

	// 是否启用详细日志
	Verbose = true
)

func init() {
	ctx := gctx.GetInitCtx()

	// 读取端口
	port := g.Cfg().MustGetWithEnv(ctx, "PORT").Int()
	if port > 0 {
		PORT = port
	}
	g.Log().Info(ctx, "PORT:", PORT)

	// 读取上游站点地址
	upstream := g.Cfg().MustGetWithEnv(ctx, "UPSTREAM_BASE_URL").String()
	if upstream != "" {
		BaseUrl = upstream
	}

	// 读取代理 URL
	proxyURL := g.Cfg().MustGetWithEnv(ctx, "PROXY_URL").String()
	if proxyURL != "" {
		ProxyURL = proxyURL
	}

	// 读取转换方案
	profile := g.Cfg().MustGetWithEnv(ctx, "CONVERSION_PROFILE").String()
	if profile != "" {
		ConversionProfile = profile
	}

	// 读取就绪轮询间隔(毫秒)
	pollMs := g.Cfg().MustGetWithEnv(ctx, "CONVERT_POLL_INTERVAL_MS").Int()
	if pollMs > 0 {
		ConvertPollInterval = time.Duration(pollMs) * time.Millisecond
	}

	// 读取就绪等待上限(毫秒),默认 0 表示无限等待
	waitMs := g.Cfg().MustGetWithEnv(ctx, "CONVERT_WAIT_TIMEOUT_MS").Int()
	if waitMs > 0 {
		ConvertWaitTimeout = time.Duration(waitMs) * time.Millisecond
	}

	// 读取详细日志开关
	verbose := g.Cfg().MustGetWithEnv(ctx, "VERBOSE").Bool()
	Verbose = verbose

	g.Log().Info(ctx, "配置加载完成, 上游:", BaseUrl, "转换方案:", ConversionProfile)
}
