//go:build wireinject

package startup

import (
	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
	testioc "github.com/ecodeclub/projecthall/internal/test/ioc"
	"github.com/ecodeclub/projecthall/internal/user"
	"github.com/google/wire"
)

func InitModule(backend *tablestore.Backend) (*user.Module, error) {
	wire.Build(user.InitModule, testioc.InitMQ)
	return new(user.Module), nil
}
