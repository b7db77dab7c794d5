package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/projecthall/internal/admin/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	gate service.Gate
}

func NewHandler(gate service.Gate) *Handler {
	return &Handler{gate: gate}
}

// PublicRoutes 不经过口令校验，管理面板用它决定要不要解锁
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/admin")
	g.POST("/check", ginx.B[CheckReq](h.Check))
}

func (h *Handler) Check(ctx *ginx.Context, req CheckReq) (ginx.Result, error) {
	return ginx.Result{
		Data: h.gate.CheckAdmin(req.Password),
	}, nil
}
