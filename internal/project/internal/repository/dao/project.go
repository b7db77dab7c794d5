package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
)

const (
	TableName        = "projects"
	CreateTimeColumn = "create_time"
)

var Table = tablestore.Table{
	Name:      TableName,
	CreatedAt: CreateTimeColumn,
}

type Project struct {
	Id           int64  `gorm:"primaryKey,autoIncrement" json:"id,omitempty"`
	Title        string `gorm:"type:varchar(512);not null" json:"title"`
	Content      string `gorm:"type:text" json:"content"`
	Requirements string `gorm:"type:text" json:"requirements"`
	Status       string `gorm:"type:varchar(32)" json:"status"`
	// 发布时间，插入的时候由存储填写
	CreateTime time.Time `gorm:"autoCreateTime;index" json:"create_time,omitzero"`
}

func (Project) TableName() string {
	return TableName
}

type ProjectDAO interface {
	Insert(ctx context.Context, p Project) (Project, error)
	// List 最新发布的在前面
	List(ctx context.Context) ([]Project, error)
}

type projectDAO struct {
	store tablestore.Store[Project]
}

func NewProjectDAO(store tablestore.Store[Project]) ProjectDAO {
	return &projectDAO{store: store}
}

func (d *projectDAO) Insert(ctx context.Context, p Project) (Project, error) {
	// 发布时间由存储填写
	p.CreateTime = time.Time{}
	return d.store.Insert(ctx, p)
}

func (d *projectDAO) List(ctx context.Context) ([]Project, error) {
	return d.store.Select(ctx, tablestore.Query{
		Order: tablestore.NewestFirst(CreateTimeColumn),
	})
}
