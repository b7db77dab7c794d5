package middleware

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AdminPasswordHeader 管理接口每次请求都要带上口令。
// 值是口令的 base64（标准编码），HTTP 解析头部的时候会去掉首尾空格，编码之后口令的每个字节都能保留下来
const AdminPasswordHeader = "X-Admin-Password"

type AdminChecker interface {
	CheckAdmin(password string) bool
}

type CheckAdminBuilder struct {
	checker AdminChecker
}

func NewCheckAdminBuilder(checker AdminChecker) *CheckAdminBuilder {
	return &CheckAdminBuilder{checker: checker}
}

// EncodeAdminPassword 客户端设置 AdminPasswordHeader 时使用
func EncodeAdminPassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

func (b *CheckAdminBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		password, err := base64.StdEncoding.DecodeString(ctx.GetHeader(AdminPasswordHeader))
		if err == nil && b.checker.CheckAdmin(string(password)) {
			return
		}
		ctx.AbortWithStatus(http.StatusUnauthorized)
		elog.DefaultLogger.Warn("非法访问 admin 接口",
			elog.FieldKey("path"),
			elog.FieldValueAny(ctx.Request.URL.Path),
			elog.FieldErr(err))
	}
}
