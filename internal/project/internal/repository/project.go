package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/projecthall/internal/project/internal/domain"
	"github.com/ecodeclub/projecthall/internal/project/internal/repository/dao"
)

type Repository interface {
	Create(ctx context.Context, p domain.Project) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

type projectRepository struct {
	dao dao.ProjectDAO
}

func NewRepository(d dao.ProjectDAO) Repository {
	return &projectRepository{dao: d}
}

func (r *projectRepository) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	pe, err := r.dao.Insert(ctx, dao.Project{
		Title:        p.Title,
		Content:      p.Content,
		Requirements: p.Requirements,
		Status:       p.Status.String(),
	})
	if err != nil {
		return domain.Project{}, err
	}
	return r.toDomain(pe), nil
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	ps, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Project) domain.Project {
		return r.toDomain(src)
	}), nil
}

func (r *projectRepository) toDomain(p dao.Project) domain.Project {
	return domain.Project{
		Id:           p.Id,
		Title:        p.Title,
		Content:      p.Content,
		Requirements: p.Requirements,
		Status:       domain.ProjectStatus(p.Status),
		Ctime:        p.CreateTime.Local(),
	}
}
