package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/projecthall/internal/project/internal/domain"
	"github.com/ecodeclub/projecthall/internal/project/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/project")
	g.POST("/publish", ginx.B[PublishReq](h.Publish))
}

func (h *AdminHandler) Publish(ctx *ginx.Context, req PublishReq) (ginx.Result, error) {
	p, err := h.svc.Publish(ctx, domain.Project{
		Title:        req.Title,
		Content:      req.Content,
		Requirements: req.Requirements,
	})
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "发布成功！所有同学均可见。",
			Data: newProject(p),
		}, nil
	case errors.Is(err, service.ErrInvalidProject):
		return titleRequiredResult, nil
	default:
		return systemErrorResult, err
	}
}
