package reverse

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"

	"kvideo/intercept"
	"kvideo/utils"

	"github.com/andybalholm/brotli"
	http "github.com/bogdanfinn/fhttp"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
)

// Proxy 兜底代理: 按路径映射表还原上游域名后回源
func Proxy(r *ghttp.Request) {
	// 使用路径映射表确定目标域名
	originalDomain := utils.GetDomainFromPath(r.URL.Path)
	g.Log().Debug(r.Context(), "请求路径:", r.URL.Path, "目标域名:", originalDomain)

	// 构建目标URL
	targetURL := "https://" + originalDomain + r.URL.Path
	if r.URL.RawQuery != "" {
		targetURL += "?" + r.URL.RawQuery
	}

	serveUpstream(r, targetURL, originalDomain)
}

// serveUpstream 经进程级派发器回源并改写响应
// 请求一律走 Open+Fetch 两个派发点,字符串 URL 在派发器内完成繁简改写
func serveUpstream(r *ghttp.Request, targetURL string, originalDomain string) {
	ctx := r.Context()
	scheme, host := utils.GetInfo(r)
	d := intercept.Default()

	// 创建新请求(URL 以字符串形式进入派发点)
	req, err := d.Open(ctx, r.Method, targetURL)
	if err != nil {
		g.Log().Error(ctx, "创建请求失败", err)
		r.Response.WriteStatus(http.StatusInternalServerError, err.Error())
		return
	}
	if r.Body != nil && r.Method != http.MethodGet && r.Method != http.MethodHead {
		req.Body = r.Body
		req.ContentLength = r.ContentLength
	}

	for k, v := range r.Header {
		if len(v) > 0 {
			req.Header.Set(k, v[0])
		}
	}

	// 从 Referer 中提取来源路径,还原为上游 Referer
	refer := r.Referer()
	refererDomain := ""
	if refer != "" && strings.Contains(refer, host) {
		relativePath := strings.TrimPrefix(refer, scheme+"://"+host)
		refererDomain = utils.GetDomainFromPath(relativePath)
		req.Header.Set("Referer", "https://"+refererDomain+relativePath)
	} else if refer == "" {
		// 客户端没带 Referer 时用会话导航历史的当前页补上
		if cur, ok := intercept.SessionHistory().Current(); ok {
			if p, ok := cur.URL.(string); ok && strings.HasPrefix(p, "/") {
				req.Header.Set("Referer", "https://"+utils.GetDomainFromPath(p)+p)
			}
		}
	}

	// Origin 跟随 Referer 的域名,缺省用目标域名
	originDomainToUse := refererDomain
	if originDomainToUse == "" {
		originDomainToUse = originalDomain
	}
	req.Header.Set("Origin", "https://"+originDomainToUse)

	// 设置所有的默认请求头(但不覆盖已设置的)
	for key, value := range utils.DEFAULT_HEADERS {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}
	req.Header.Set("Host", originalDomain)

	// 经派发器发出(请求对象不会被再次改写)
	resp, err := d.Fetch(ctx, req)
	if err != nil {
		g.Log().Error(ctx, "发送请求失败", err)
		r.Response.WriteStatus(http.StatusBadGateway, err.Error())
		return
	}
	defer resp.Body.Close()

	// 上游重定向: Location 改写到代理域名,导航历史做替换而非追加
	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		if loc := resp.Header.Get("Location"); loc != "" {
			newLoc := utils.Replace(ctx, loc, scheme, host)
			r.Response.Header().Set("Location", newLoc)
			if err := d.ReplaceState(ctx, nil, "", r.URL.Path); err != nil {
				g.Log().Warning(ctx, "记录导航历史失败", err)
			}
			r.Response.WriteHeader(resp.StatusCode)
			return
		}
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	bodyBytes = decompress(bodyBytes, resp.Header.Get("Content-Encoding"))

	contentType := resp.Header.Get("Content-Type")

	// 复制响应头(内容已改写,跳过长度和编码)
	for k, v := range resp.Header {
		if len(v) > 0 {
			if k == "Content-Encoding" || k == "Content-Length" {
				continue
			}
			r.Response.Header().Set(k, v[0])
		}
	}
	header := r.Response.Header()
	utils.HeaderModify(&header)
	r.Response.Status = resp.StatusCode

	if isTextContent(contentType) {
		// 文本类内容: 统一到 UTF-8 后把上游 URL 改写到代理域名
		body := utils.DecodeBody(bodyBytes, contentType)
		content := utils.Replace(ctx, body, scheme, host)
		if strings.Contains(contentType, "text/html") {
			// 页面级导航计入会话历史
			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path += "?" + r.URL.RawQuery
			}
			if err := d.PushState(ctx, nil, "", path); err != nil {
				g.Log().Warning(ctx, "记录导航历史失败", err)
			}
		}
		r.Response.Write(content)
		return
	}

	r.Response.Write(bodyBytes)
}

// isTextContent 响应体是否需要做 URL 改写
func isTextContent(contentType string) bool {
	for _, t := range []string{"text/html", "text/css", "application/javascript", "text/javascript", "application/json", "application/x-mpegurl"} {
		if strings.Contains(contentType, t) {
			return true
		}
	}
	return false
}

// decompress 按 Content-Encoding 解压响应体,解不开就原样返回
func decompress(bodyBytes []byte, contentEncoding string) []byte {
	switch contentEncoding {
	case "gzip":
		gzReader, err := gzip.NewReader(bytes.NewReader(bodyBytes))
		if err != nil {
			return bodyBytes
		}
		defer gzReader.Close()
		if decompressed, err := io.ReadAll(gzReader); err == nil {
			return decompressed
		}
	case "br":
		brReader := brotli.NewReader(bytes.NewReader(bodyBytes))
		if decompressed, err := io.ReadAll(brReader); err == nil {
			return decompressed
		}
	}
	return bodyBytes
}
