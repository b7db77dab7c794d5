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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/projecthall/internal/project/internal/domain"
	"github.com/ecodeclub/projecthall/internal/project/internal/event"
	"github.com/ecodeclub/projecthall/internal/project/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var ErrInvalidProject = errors.New("标题不能为空")

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/project.mock.go Service
type Service interface {
	// Publish 发布之后所有同学可见，状态固定为进行中
	Publish(ctx context.Context, p domain.Project) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

type service struct {
	repo     repository.Repository
	producer event.PublishedEventProducer
	logger   *elog.Component
}

func NewService(repo repository.Repository, producer event.PublishedEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Publish(ctx context.Context, p domain.Project) (domain.Project, error) {
	if p.Title == "" {
		return domain.Project{}, ErrInvalidProject
	}
	p.Status = domain.ProjectStatusOngoing
	p, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Project{}, err
	}
	evt := event.NewProjectPublishedEvent(p)
	if e := s.producer.Produce(ctx, evt); e != nil {
		s.logger.Error("发送项目发布消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt))
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}
