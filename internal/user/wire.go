//go:build wireinject

package user

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
	"github.com/ecodeclub/projecthall/internal/user/internal/event"
	"github.com/ecodeclub/projecthall/internal/user/internal/repository"
	"github.com/ecodeclub/projecthall/internal/user/internal/repository/dao"
	"github.com/ecodeclub/projecthall/internal/user/internal/service"
	"github.com/ecodeclub/projecthall/internal/user/internal/web"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initDAO,
	repository.NewUserRepository,
	event.NewRegistrationEventProducer,
	service.NewUserService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(backend *tablestore.Backend, q mq.MQ) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func initDAO(backend *tablestore.Backend) dao.UserDAO {
	err := dao.InitTables(backend)
	if err != nil {
		panic(err)
	}
	return dao.NewUserDAO(tablestore.Open[dao.User](backend, dao.Table))
}
