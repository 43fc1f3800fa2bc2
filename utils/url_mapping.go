package utils

import (
	"strings"
)

// URL_PATH_DOMAIN_MAP 路径前缀到上游域名的映射表
// 根据实际抓取的URL列表建立映射关系
// 格式: 路径前缀 -> 域名
var URL_PATH_DOMAIN_MAP = map[string]string{
	// 静态资源
	"/static/":   "static.olevod.com",
	"/template/": "static.olevod.com",
	"/js/":       "static.olevod.com",
	"/css/":      "static.olevod.com",

	// 封面与截图
	"/upload/vod/": "img.olevod.com",
	"/upload/":     "img.olevod.com",

	// 播放器与分片
	"/player/": "play.olevod.com",
	"/hls/":    "play.olevod.com",

	// 数据接口
	"/api/":          "api.olevod.com",
	"/index.php/api": "api.olevod.com",
}

// GetDomainFromPath 根据路径获取对应的上游域名
// 按路径前缀最长匹配,未命中时回落到主站
func GetDomainFromPath(path string) string {
	longestMatch := ""
	matchedDomain := ""

	for prefix, domain := range URL_PATH_DOMAIN_MAP {
		if strings.HasPrefix(path, prefix) {
			if len(prefix) > len(longestMatch) {
				longestMatch = prefix
				matchedDomain = domain
			}
		}
	}

	if matchedDomain != "" {
		return matchedDomain
	}

	// 默认返回主站域名
	return "www.olevod.com"
}
