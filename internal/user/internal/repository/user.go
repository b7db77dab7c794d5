package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/projecthall/internal/user/internal/domain"
	"github.com/ecodeclub/projecthall/internal/user/internal/repository/dao"
)

var ErrUserDuplicate = dao.ErrUserDuplicate

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	// ExistsByContact 该联系方式是否已经登记
	ExistsByContact(ctx context.Context, contact string) (bool, error)
	// List 全部花名册，最新登记的在前面
	List(ctx context.Context) ([]domain.User, error)
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{
		dao: d,
	}
}

func (r *userRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	ue, err := r.dao.Insert(ctx, r.toEntity(u))
	if err != nil {
		return domain.User{}, err
	}
	return r.toDomain(ue), nil
}

func (r *userRepository) ExistsByContact(ctx context.Context, contact string) (bool, error) {
	us, err := r.dao.FindByContact(ctx, contact)
	return len(us) > 0, err
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	us, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return r.toDomain(src)
	}), nil
}

func (r *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:      u.Id,
		Name:    u.Name,
		School:  u.School,
		Major:   u.Major,
		Degree:  string(u.Degree),
		Contact: u.Contact,
	}
}

func (r *userRepository) toDomain(ue dao.User) domain.User {
	return domain.User{
		Id:      ue.Id,
		Name:    ue.Name,
		School:  ue.School,
		Major:   ue.Major,
		Degree:  domain.Degree(ue.Degree),
		Contact: ue.Contact,
		RegTime: ue.RegTime.Local(),
	}
}
