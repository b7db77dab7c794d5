// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package project

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
	"github.com/ecodeclub/projecthall/internal/project/internal/event"
	"github.com/ecodeclub/projecthall/internal/project/internal/repository"
	"github.com/ecodeclub/projecthall/internal/project/internal/repository/dao"
	"github.com/ecodeclub/projecthall/internal/project/internal/service"
	"github.com/ecodeclub/projecthall/internal/project/internal/web"
	"github.com/google/wire"
)

func InitModule(backend *tablestore.Backend, q mq.MQ) (*Module, error) {
	wire.Build(
		initDAO,
		event.NewPublishedEventProducer,
		repository.NewRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"))
	return &Module{}, nil
}

func initDAO(backend *tablestore.Backend) dao.ProjectDAO {
	err := dao.InitTables(backend)
	if err != nil {
		panic(err)
	}
	return dao.NewProjectDAO(tablestore.Open[dao.Project](backend, dao.Table))
}
