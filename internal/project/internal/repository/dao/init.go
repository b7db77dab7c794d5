package dao

import "github.com/ecodeclub/projecthall/internal/pkg/tablestore"

func InitTables(backend *tablestore.Backend) error {
	return backend.Migrate(&Project{})
}
