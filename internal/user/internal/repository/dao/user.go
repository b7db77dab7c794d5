package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
)

const (
	TableName     = "users"
	ContactColumn = "contact"
	RegTimeColumn = "reg_time"
)

var Table = tablestore.Table{
	Name:      TableName,
	Unique:    []string{ContactColumn},
	CreatedAt: RegTimeColumn,
}

// ErrUserDuplicate 联系方式已经登记过了
var ErrUserDuplicate = tablestore.ErrDuplicate

type User struct {
	Id      int64  `gorm:"primaryKey,autoIncrement" json:"id,omitempty"`
	Name    string `gorm:"type:varchar(256);not null" json:"name"`
	School  string `gorm:"type:varchar(256)" json:"school"`
	Major   string `gorm:"type:varchar(256)" json:"major"`
	Degree  string `gorm:"type:varchar(32);comment:本科/硕士/博士/其他" json:"degree"`
	Contact string `gorm:"type:varchar(128);unique;not null;comment:手机号或者微信号" json:"contact"`
	// 登记时间，插入的时候由存储填写
	RegTime time.Time `gorm:"autoCreateTime;index" json:"reg_time,omitzero"`
}

func (User) TableName() string {
	return TableName
}

type UserDAO interface {
	Insert(ctx context.Context, u User) (User, error)
	FindByContact(ctx context.Context, contact string) ([]User, error)
	// List 按照登记时间倒序
	List(ctx context.Context) ([]User, error)
}

type userDAO struct {
	store tablestore.Store[User]
}

func NewUserDAO(store tablestore.Store[User]) UserDAO {
	return &userDAO{
		store: store,
	}
}

func (d *userDAO) Insert(ctx context.Context, u User) (User, error) {
	// 登记时间由存储填写
	u.RegTime = time.Time{}
	return d.store.Insert(ctx, u)
}

func (d *userDAO) FindByContact(ctx context.Context, contact string) ([]User, error) {
	return d.store.Select(ctx, tablestore.Query{
		Where: []tablestore.Cond{tablestore.Eq(ContactColumn, contact)},
	})
}

func (d *userDAO) List(ctx context.Context) ([]User, error) {
	return d.store.Select(ctx, tablestore.Query{
		Order: tablestore.NewestFirst(RegTimeColumn),
	})
}
