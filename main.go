package main

import (
	"kvideo/config"
	"kvideo/intercept"
	"kvideo/zhconv"

	_ "kvideo/reverse"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gctx"
)

func main() {
	ctx := gctx.GetInitCtx()

	if !config.Verbose {
		_ = g.Log().SetLevelStr("info")
	}

	// 后台加载 OpenCC 词典,就绪门轮询到位后一次性启用 URL 改写拦截
	// 就绪之前请求原样放行,页面表现与未装拦截层时一致
	zhconv.Load(ctx, config.ConversionProfile)
	gate := zhconv.NewGate(nil, config.ConvertPollInterval, config.ConvertWaitTimeout)
	gate.Start(ctx, func() {
		intercept.Activate(zhconv.TransformURL)
	})

	// 启动HTTP服务
	s := g.Server()
	s.SetPort(config.PORT)
	s.Run()
}
