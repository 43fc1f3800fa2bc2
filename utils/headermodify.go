package utils

import (
	"net/http"
)

// HeaderModify 整理回给浏览器的响应头
func HeaderModify(headers *http.Header) {
	// 移除一些错误的转发头
	headers.Del("X-Forwarded-For")
	headers.Del("X-Forwarded-Host")
	headers.Del("X-Forwarded-Proto")
	headers.Del("X-Forwarded-Server")
	headers.Del("X-Real-Ip")
	headers.Del("X-Forwarded-Port")

	// 移除一些CF的头
	headers.Del("Cf-Connecting-Ip")
	headers.Del("Cf-Ipcountry")
	headers.Del("Cf-Ray")
	headers.Del("Cf-Visitor")
	headers.Del("Cf-Request-Id")

	// 设置完整的 CORS 头
	headers.Set("Access-Control-Allow-Origin", "*")
	headers.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
	headers.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Accept, Origin, X-CSRF-Token")
	headers.Set("Access-Control-Allow-Credentials", "true")

	// 移除安全相关的限制头,站内资源已改写到代理域名,这些策略会拦住它们
	headers.Del("Content-Security-Policy")
	headers.Del("Content-Security-Policy-Report-Only")
	headers.Del("X-Frame-Options")
	headers.Del("X-Content-Type-Options")
	headers.Del("Referrer-Policy")
	headers.Del("Cross-Origin-Opener-Policy")
	headers.Del("Cross-Origin-Embedder-Policy")
	headers.Del("Cross-Origin-Resource-Policy")
	headers.Del("Permissions-Policy")

	// 内容已被改写,长度和编码不再成立
	headers.Del("report-to")
	headers.Del("Content-Encoding")
	headers.Del("Content-Length")

	// 不透传上游下发的 Cookie
	headers.Del("Set-Cookie")
}
