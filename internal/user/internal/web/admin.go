package web

import (
	"bytes"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/projecthall/internal/user/internal/domain"
	"github.com/ecodeclub/projecthall/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

const rosterFileName = "roster.csv"

// AdminHandler 花名册，挂在管理后台上，由管理员密码保护
type AdminHandler struct {
	svc service.UserService
}

func NewAdminHandler(svc service.UserService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/users")
	g.POST("/list", ginx.W(h.List))
	g.GET("/export", ginx.W(h.Export))
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	users, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UserList{
			Users: slice.Map(users, func(idx int, src domain.User) User {
				return newUser(src)
			}),
			Total: len(users),
		},
	}, nil
}

// Export 下载 CSV。先写到内存里，出错的时候还能正常返回错误码
func (h *AdminHandler) Export(ctx *ginx.Context) (ginx.Result, error) {
	var buf bytes.Buffer
	if err := h.svc.Export(ctx, &buf); err != nil {
		return systemErrorResult, err
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+rosterFileName+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	return ginx.Result{}, ginx.ErrNoResponse
}
