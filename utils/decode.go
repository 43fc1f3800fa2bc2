package utils

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

var (
	charsetHeaderPattern = regexp.MustCompile(`charset=([^;\s]+)`)
	charsetMetaPattern   = regexp.MustCompile(`<meta[^>]+charset=["']?([^"'\s>]+)`)
	charsetEquivPattern  = regexp.MustCompile(`<meta[^>]+content=["']?[^"'>]*charset=([^"'\s;>]+)`)
)

// DecodeBody 按 Content-Type 声明的字符集把响应体解码成 UTF-8 字符串
// 老片库页面偶见 big5/gbk,URL 改写前必须先统一到 UTF-8
func DecodeBody(bodyBytes []byte, contentType string) string {
	charset := "utf-8"

	if contentType != "" {
		matches := charsetHeaderPattern.FindStringSubmatch(contentType)
		if len(matches) > 1 {
			charset = strings.ToLower(strings.TrimSpace(matches[1]))
		}
	}

	// UTF-8 或未声明时直接转换
	if charset == "utf-8" || charset == "utf8" || charset == "" {
		return string(bodyBytes)
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		// 无法识别时尝试从 HTML meta 里探测
		enc = detectCharsetFromHTML(bodyBytes)
		if enc == nil {
			return string(bodyBytes)
		}
	}

	decoder := enc.NewDecoder()
	reader := transform.NewReader(bytes.NewReader(bodyBytes), decoder)
	decoded, err := io.ReadAll(reader)
	if err != nil {
		// 解码失败,退回原始字节
		return string(bodyBytes)
	}

	return string(decoded)
}

// detectCharsetFromHTML 从 HTML meta 标签中探测字符集,只看前2KB
func detectCharsetFromHTML(bodyBytes []byte) encoding.Encoding {
	content := string(bodyBytes[:min(len(bodyBytes), 2048)])

	if matches := charsetMetaPattern.FindStringSubmatch(content); len(matches) > 1 {
		if enc, err := htmlindex.Get(strings.ToLower(matches[1])); err == nil {
			return enc
		}
	}

	if matches := charsetEquivPattern.FindStringSubmatch(content); len(matches) > 1 {
		if enc, err := htmlindex.Get(strings.ToLower(matches[1])); err == nil {
			return enc
		}
	}

	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
