package agent

import "math/rand"

// Fixed replies used when the model call cannot produce a response. The
// phrasing stays in character so a delivery failure reads like the persona
// being busy, not like an error page.
const (
	timeoutFallback = "抱歉，我现在有点忙，网络连接不太稳定，稍后再聊吧～"
	requestFallback = "抱歉，服务暂时不可用，请稍后再试～"
)

// backupResponses are generic in-character fillers for unexpected failures.
var backupResponses = []string{
	"谢谢你的支持！我会继续努力给大家带来好作品的～",
	"最近在准备新作品，希望大家会喜欢",
	"感恩有你们这些可爱的粉丝一路相伴",
	"保持积极心态，生活会更美好哦",
	"工作虽然忙，但看到大家的支持就很开心",
}

func randomBackupResponse() string {
	return backupResponses[rand.Intn(len(backupResponses))]
}
