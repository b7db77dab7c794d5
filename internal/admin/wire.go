//go:build wireinject

package admin

import (
	"github.com/ecodeclub/projecthall/internal/admin/internal/service"
	"github.com/ecodeclub/projecthall/internal/admin/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule() *Module {
	wire.Build(initGate, web.NewHandler, wire.Struct(new(Module), "*"))
	return new(Module)
}

func initGate() service.Gate {
	return service.NewGate(econf.GetString("admin.password"))
}
