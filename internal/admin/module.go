package admin

import (
	"github.com/ecodeclub/projecthall/internal/admin/internal/service"
	"github.com/ecodeclub/projecthall/internal/admin/internal/web"
)

type Module struct {
	Gate Gate
	Hdl  *Handler
}

type Gate = service.Gate
type Handler = web.Handler
