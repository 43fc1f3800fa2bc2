package utils

// DOMAIN_LIST 上游视频站用到的所有域名
// 响应体改写按此列表逐个替换,长域名排在前面避免误匹配
var DOMAIN_LIST = []string{
	"static.olevod.com",
	"img.olevod.com",
	"play.olevod.com",
	"api.olevod.com",
	"www.olevod.com",
	"olevod.com",
}
