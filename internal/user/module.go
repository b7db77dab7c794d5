package user

import (
	"github.com/ecodeclub/projecthall/internal/user/internal/domain"
	"github.com/ecodeclub/projecthall/internal/user/internal/service"
	"github.com/ecodeclub/projecthall/internal/user/internal/web"
)

type Module struct {
	Svc      UserService
	Hdl      *Handler
	AdminHdl *AdminHandler
}

type UserService = service.UserService
type Handler = web.Handler
type AdminHandler = web.AdminHandler
type User = domain.User
type Degree = domain.Degree
