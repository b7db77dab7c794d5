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
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore 内存实现，本地开发和测试使用。
// 行以 json 的形式保存，所以列名就是 json tag。
type MemoryStore[T any] struct {
	mu        sync.RWMutex
	unique    []string
	createdAt string
	seq       int64
	rows      []map[string]any
}

func NewMemoryStore[T any](t Table) *MemoryStore[T] {
	return &MemoryStore[T]{
		unique:    t.Unique,
		createdAt: t.CreatedAt,
	}
}

func (s *MemoryStore[T]) Insert(ctx context.Context, row T) (T, error) {
	if err := ctx.Err(); err != nil {
		return row, err
	}
	cols, err := toColumns(row)
	if err != nil {
		return row, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, col := range s.unique {
		if cols[col] == nil {
			continue
		}
		for _, r := range s.rows {
			if equal(r[col], cols[col]) {
				return row, ErrDuplicate
			}
		}
	}
	s.seq++
	// json 里面的数字都是 float64
	cols[IDColumn] = float64(s.seq)
	if s.createdAt != "" && cols[s.createdAt] == nil {
		cols[s.createdAt] = time.Now().Format(time.RFC3339Nano)
	}
	s.rows = append(s.rows, cols)
	var res T
	err = fromColumns(cols, &res)
	return res, err
}

func (s *MemoryStore[T]) Select(ctx context.Context, q Query) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	where := make([]Cond, 0, len(q.Where))
	for _, c := range q.Where {
		val, err := normalize(c.Value)
		if err != nil {
			return nil, err
		}
		where = append(where, Cond{Column: c.Column, Value: val})
	}

	s.mu.RLock()
	matched := make([]map[string]any, 0, len(s.rows))
	for _, r := range s.rows {
		if match(r, where) {
			matched = append(matched, r)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		for _, o := range q.Order {
			c := compare(matched[i][o.Column], matched[j][o.Column])
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	res := make([]T, 0, len(matched))
	for _, r := range matched {
		var t T
		if err := fromColumns(r, &t); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func match(row map[string]any, where []Cond) bool {
	for _, c := range where {
		if !equal(row[c.Column], c.Value) {
			return false
		}
	}
	return true
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return compare(a, b) == 0
}

func compare(a, b any) int {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	case string:
		if bv, ok := b.(string); ok {
			// 小数部分的位数不固定，时间不能按照字符串比较
			at, aerr := time.Parse(time.RFC3339Nano, av)
			bt, berr := time.Parse(time.RFC3339Nano, bv)
			if aerr == nil && berr == nil {
				return at.Compare(bt)
			}
			return strings.Compare(av, bv)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func normalize(val any) (any, error) {
	data, err := json.Marshal(val)
	if err != nil {
		return nil, err
	}
	var res any
	err = json.Unmarshal(data, &res)
	return res, err
}

func toColumns(row any) (map[string]any, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	res := make(map[string]any)
	err = json.Unmarshal(data, &res)
	return res, err
}

func fromColumns(cols map[string]any, dst any) error {
	data, err := json.Marshal(cols)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
