//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/projecthall/internal/admin"
	"github.com/ecodeclub/projecthall/internal/project"
	"github.com/ecodeclub/projecthall/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitBackend, InitMQ, InitMetricsBuilder)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "AdminHdl"),
		project.InitModule,
		wire.FieldsOf(new(*project.Module), "Hdl", "AdminHdl"),
		admin.InitModule,
		wire.FieldsOf(new(*admin.Module), "Gate", "Hdl"),
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
