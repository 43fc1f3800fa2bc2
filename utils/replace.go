package utils

import (
	"regexp"
	"strings"

	"github.com/gogf/gf/v2/os/gctx"
)

// Replace 把内容中指向上游域名的 URL 全部改写到代理域名
// 格式: https://upstream-domain/path -> scheme://proxy-host/path
// URL 中不再携带原始域名,回程请求靠路径映射表还原目标域名
func Replace(ctx gctx.Ctx, content string, scheme string, host string) string {
	result := content

	// 先拿掉 HTML 内嵌的 CSP meta 标签
	result = RemoveInlineCSP(result)

	// 按顺序处理每个域名(长的在前,避免误匹配)
	for _, domain := range DOMAIN_LIST {
		escapedDomain := regexp.QuoteMeta(domain)

		// 1. 带协议的完整URL: https?://domain[/path][?query]
		pattern1 := regexp.MustCompile(`(https?://)` + escapedDomain + `(/*[^\s"'<>?]*)?(\?[^\s"'<>]*)?`)
		result = pattern1.ReplaceAllStringFunc(result, func(match string) string {
			if strings.Contains(match, host) {
				return match
			}
			pathPart := strings.TrimPrefix(match, "https://"+domain)
			pathPart = strings.TrimPrefix(pathPart, "http://"+domain)
			pathPart = strings.TrimLeft(pathPart, "/")
			if strings.HasPrefix(pathPart, "?") || pathPart == "" {
				pathPart = "/" + pathPart
			} else {
				pathPart = "/" + pathPart
			}
			return scheme + "://" + host + pathPart
		})

		// 2. 协议相对URL: //domain/path(常见于HTML/JS中)
		pattern2 := regexp.MustCompile(`(//)` + escapedDomain + `(/*[^\s"'<>?]*)?(\?[^\s"'<>]*)?`)
		result = pattern2.ReplaceAllStringFunc(result, func(match string) string {
			if strings.Contains(match, host) {
				return match
			}
			pathPart := strings.TrimPrefix(match, "//"+domain)
			pathPart = strings.TrimLeft(pathPart, "/")
			pathPart = "/" + pathPart
			return "//" + host + pathPart
		})

		// 3. 引号/空白后的裸域名(JS、CSS 里作为字符串拼接使用)
		// 路径为空时不补斜杠,后续拼接的路径通常自带 /
		pattern3 := regexp.MustCompile(`(["\s=:])` + escapedDomain + `(/*[^\s"'<>?]*)?(\?[^\s"'<>]*)?`)
		result = pattern3.ReplaceAllStringFunc(result, func(match string) string {
			prefix := match[:1]
			restMatch := match[1:]
			if strings.Contains(restMatch, host) {
				return match
			}
			pathPart := strings.TrimPrefix(restMatch, domain)
			pathPart = strings.TrimLeft(pathPart, "/")
			if pathPart != "" {
				pathPart = "/" + pathPart
			}
			return prefix + host + pathPart
		})
	}

	return result
}

// RemoveInlineCSP 移除 HTML 中的内嵌 CSP meta 标签
func RemoveInlineCSP(content string) string {
	cspMetaPattern := regexp.MustCompile(`(?i)<meta[^>]*http-equiv\s*=\s*["']?Content-Security-Policy(-Report-Only)?["']?[^>]*>`)
	return cspMetaPattern.ReplaceAllString(content, "")
}
