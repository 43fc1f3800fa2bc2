package zhconv

import (
	"context"
	"sync"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/liuzl/gocc"
)

// Converter 繁简转换能力,*gocc.OpenCC 天然满足该接口
type Converter interface {
	Convert(in string) (string, error)
}

var (
	convMutex   sync.RWMutex
	converter   Converter
	unavailable bool
)

// Load 异步加载 OpenCC 词典并注册转换器
// 词典加载较慢,不能阻塞服务启动,就绪与否由 Ready 查询
func Load(ctx context.Context, profile string) {
	go func() {
		c, err := gocc.New(profile)
		if err != nil {
			g.Log().Error(ctx, "加载 OpenCC 转换器失败:", profile, err)
			return
		}
		Register(c)
	}()
}

// Register 发布转换器
// 进入不可用终态后注册会被忽略,拦截层保持未启用
func Register(c Converter) {
	convMutex.Lock()
	defer convMutex.Unlock()
	if unavailable || c == nil {
		return
	}
	converter = c
}

// Ready 转换器是否已就绪
func Ready() bool {
	convMutex.RLock()
	defer convMutex.RUnlock()
	return converter != nil
}

// MarkUnavailable 标记转换能力不可用(等待超时后的终态)
func MarkUnavailable() {
	convMutex.Lock()
	defer convMutex.Unlock()
	if converter == nil {
		unavailable = true
	}
}

// Convert 执行一次繁简转换,未就绪时返回错误
func Convert(in string) (string, error) {
	convMutex.RLock()
	c := converter
	convMutex.RUnlock()
	if c == nil {
		return "", gerror.New("转换器尚未就绪")
	}
	return c.Convert(in)
}

// reset 仅供测试恢复初始状态
func reset() {
	convMutex.Lock()
	defer convMutex.Unlock()
	converter = nil
	unavailable = false
}
