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
	"sync"

	"github.com/ego-component/egorm"
	"github.com/imroc/req/v3"
)

type Driver string

const (
	DriverREST   Driver = "rest"
	DriverMySQL  Driver = "mysql"
	DriverMemory Driver = "memory"
)

// Backend 进程启动的时候创建一次，各个模块从这里按表拿到自己的 Store
type Backend struct {
	driver Driver
	db     *egorm.Component
	client *req.Client

	mu     sync.Mutex
	tables map[string]any
}

func NewGORMBackend(db *egorm.Component) *Backend {
	return &Backend{driver: DriverMySQL, db: db}
}

func NewRESTBackend(client *req.Client) *Backend {
	return &Backend{driver: DriverREST, client: client}
}

func NewMemoryBackend() *Backend {
	return &Backend{driver: DriverMemory, tables: make(map[string]any)}
}

func (b *Backend) Driver() Driver {
	return b.driver
}

// Migrate 只有 GORM 后端需要建表，托管的 REST 服务表结构由服务端维护
func (b *Backend) Migrate(models ...any) error {
	if b.driver != DriverMySQL {
		return nil
	}
	return b.db.AutoMigrate(models...)
}

// Open 拿到一张表。内存后端同名的表共享数据。
func Open[T any](b *Backend, t Table) Store[T] {
	switch b.driver {
	case DriverMySQL:
		return NewGORMStore[T](b.db, t.Name)
	case DriverREST:
		return NewRESTStore[T](b.client, t.Name)
	default:
		b.mu.Lock()
		defer b.mu.Unlock()
		if s, ok := b.tables[t.Name].(*MemoryStore[T]); ok {
			return s
		}
		s := NewMemoryStore[T](t)
		b.tables[t.Name] = s
		return s
	}
}
