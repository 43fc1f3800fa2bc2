package zhconv

import (
	"strings"
	"unicode/utf8"

	"github.com/gogf/gf/v2/errors/gerror"
)

// TransformURL 尽力把 URL 文本中的繁体中文改写为简体
// 整条 URI 统一做 解码->转换->再编码,路径/查询/锚点里的中文全都覆盖
// 任何一步失败(转义残缺/非法 UTF-8/转换器未就绪)都原样返回输入,绝不向上抛出
func TransformURL(raw string) (out string) {
	if raw == "" {
		return raw
	}
	defer func() {
		if recover() != nil {
			out = raw
		}
	}()
	decoded, err := decodeURI(raw)
	if err != nil {
		return raw
	}
	converted, err := Convert(decoded)
	if err != nil {
		return raw
	}
	return encodeURI(converted)
}

// URI 保留字符,其转义序列在整条 URI 解码时必须原样保留,
// 否则 %2F 之类的转义会在重编码后改变 URL 结构
const reservedChars = ";/?:@&=+$,#"

// 非保留的可直写字符(字母数字之外的部分)
const markChars = "-_.!~*'()"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// decodeURI 对整条 URI 做百分号解码
// 保留字符与 % 本身的转义不展开;转义残缺或解出非法 UTF-8 时报错
func decodeURI(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+2 >= len(s) {
			return "", gerror.New("URI 转义序列残缺")
		}
		if !ishex(s[i+1]) || !ishex(s[i+2]) {
			return "", gerror.New("URI 转义序列非法")
		}
		c := unhex(s[i+1])<<4 | unhex(s[i+2])
		if c == '%' || strings.IndexByte(reservedChars, c) >= 0 {
			// 保留字符不展开,转义原文照抄
			b.WriteString(s[i : i+3])
		} else {
			b.WriteByte(c)
		}
		i += 3
	}
	decoded := b.String()
	if !utf8.ValidString(decoded) {
		return "", gerror.New("URI 解码结果不是合法 UTF-8")
	}
	return decoded, nil
}

const upperhex = "0123456789ABCDEF"

// encodeURI 对整条 URI 做百分号编码
// 字母数字/保留字符/非保留标点直写;% 直写以保住 decodeURI 留下的转义
func encodeURI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case c == '%',
			strings.IndexByte(reservedChars, c) >= 0,
			strings.IndexByte(markChars, c) >= 0:
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}
