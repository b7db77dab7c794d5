//go:build wireinject

package startup

import (
	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
	"github.com/ecodeclub/projecthall/internal/project"
	testioc "github.com/ecodeclub/projecthall/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(backend *tablestore.Backend) (*project.Module, error) {
	wire.Build(project.InitModule, testioc.InitMQ)
	return new(project.Module), nil
}
