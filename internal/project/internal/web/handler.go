package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/projecthall/internal/project/internal/domain"
	"github.com/ecodeclub/projecthall/internal/project/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/project")
	g.POST("/list", ginx.W(h.List))
}

// List 项目大厅，每次都重新查询
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	ps, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProjectList{
			Projects: slice.Map(ps, func(idx int, src domain.Project) Project {
				return newProject(src)
			}),
			Total: len(ps),
		},
	}, nil
}
