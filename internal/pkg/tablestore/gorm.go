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

package tablestore

import (
	"context"
	"errors"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm/clause"
)

const uniqueIndexErrNo uint16 = 1062

// GORMStore 基于 GORM 的实现，唯一约束依赖表上的唯一索引
type GORMStore[T any] struct {
	db    *egorm.Component
	table string
}

func NewGORMStore[T any](db *egorm.Component, table string) *GORMStore[T] {
	return &GORMStore[T]{
		db:    db,
		table: table,
	}
}

func (s *GORMStore[T]) Insert(ctx context.Context, row T) (T, error) {
	err := s.db.WithContext(ctx).Table(s.table).Create(&row).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return row, ErrDuplicate
	}
	return row, err
}

func (s *GORMStore[T]) Select(ctx context.Context, q Query) ([]T, error) {
	db := s.db.WithContext(ctx).Table(s.table)
	for _, c := range q.Where {
		db = db.Where(clause.Eq{Column: clause.Column{Name: c.Column}, Value: c.Value})
	}
	for _, o := range q.Order {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	res := make([]T, 0)
	err := db.Find(&res).Error
	return res, err
}
