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

// Package tablestore 是一个很薄的表格存储抽象，只有插入和按条件、排序查询两个操作。
// 具体的后端有 GORM（MySQL）、PostgREST 风格的 HTTP 接口和内存实现。
package tablestore

import (
	"context"
	"errors"
)

// ErrDuplicate 违反了唯一约束
var ErrDuplicate = errors.New("记录已存在")

// IDColumn 所有表都有的自增主键，用于时间相同时的排序
const IDColumn = "id"

// Store 一张表。T 是行的类型，要求 json tag 和列名保持一致。
// 时间列使用 time.Time，在 json 中是 RFC 3339 格式的字符串，和 PostgREST 返回的 timestamptz 一致。
type Store[T any] interface {
	// Insert 插入一行，返回存储之后的数据（带上了主键）
	Insert(ctx context.Context, row T) (T, error)
	// Select 查询，没有数据的时候返回空切片
	Select(ctx context.Context, q Query) ([]T, error)
}

// Table 表的元数据
type Table struct {
	Name string
	// Unique 唯一列，GORM 和 REST 后端依赖表结构本身，内存实现依赖这里
	Unique []string
	// CreatedAt 插入时由存储填写的时间列，写入的时候不要带上这一列。
	// MySQL 依赖 GORM 的 autoCreateTime，REST 依赖列的默认值 now()，内存实现依赖这里
	CreatedAt string
}

// Query 只支持等值条件
type Query struct {
	Where []Cond
	Order []Order
}

type Cond struct {
	Column string
	Value  any
}

type Order struct {
	Column string
	Desc   bool
}

// Eq 构造等值查询条件
func Eq(column string, val any) Cond {
	return Cond{Column: column, Value: val}
}

// Desc 倒序
func Desc(column string) Order {
	return Order{Column: column, Desc: true}
}

// NewestFirst 按照时间列倒序，时间相同的按照主键倒序
func NewestFirst(timeColumn string) []Order {
	return []Order{Desc(timeColumn), Desc(IDColumn)}
}
