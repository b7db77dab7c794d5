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
	"io"

	"github.com/ecodeclub/projecthall/internal/user/internal/domain"
	"github.com/ecodeclub/projecthall/internal/user/internal/event"
	"github.com/ecodeclub/projecthall/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserDuplicate = repository.ErrUserDuplicate
	ErrInvalidUser   = errors.New("姓名和联系方式必填")
	ErrInvalidDegree = errors.New("学历不合法")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// Register 登记。联系方式已经存在的时候返回 ErrUserDuplicate，不会覆盖
	Register(ctx context.Context, u domain.User) (domain.User, error)
	// List 花名册，最新登记的在前面
	List(ctx context.Context) ([]domain.User, error)
	// Export 把花名册导出为 CSV
	Export(ctx context.Context, w io.Writer) error
}

type userService struct {
	repo     repository.UserRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User) (domain.User, error) {
	if u.Name == "" || u.Contact == "" {
		return domain.User{}, ErrInvalidUser
	}
	if u.Degree == "" {
		u.Degree = domain.DegreeBachelor
	}
	if !u.Degree.Valid() {
		return domain.User{}, ErrInvalidDegree
	}
	// 先查重。并发登记的时候两个请求都可能通过这里，
	// 由存储上的唯一约束兜底，插入的时候返回 ErrUserDuplicate
	exist, err := svc.repo.ExistsByContact(ctx, u.Contact)
	if err != nil {
		return domain.User{}, err
	}
	if exist {
		return domain.User{}, ErrUserDuplicate
	}
	u, err = svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	evt := event.RegistrationEvent{
		Uid:     u.Id,
		Name:    u.Name,
		School:  u.School,
		Major:   u.Major,
		Degree:  string(u.Degree),
		RegTime: u.RegTime.UnixMilli(),
	}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送登记成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return u, nil
}

func (svc *userService) List(ctx context.Context) ([]domain.User, error) {
	return svc.repo.List(ctx)
}

func (svc *userService) Export(ctx context.Context, w io.Writer) error {
	users, err := svc.repo.List(ctx)
	if err != nil {
		return err
	}
	return writeRoster(w, users)
}
