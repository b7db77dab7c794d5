package ioc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ecodeclub/projecthall/config"
	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/joho/godotenv"
)

const (
	storeURLEnv = "STORE_URL"
	storeKeyEnv = "STORE_KEY"
)

func InitBackend() *tablestore.Backend {
	cfg := loadStoreConfig()
	switch tablestore.Driver(cfg.Driver) {
	case tablestore.DriverMySQL:
		return tablestore.NewGORMBackend(InitDB())
	case tablestore.DriverMemory:
		elog.DefaultLogger.Warn("使用内存存储，重启之后数据会丢失")
		return tablestore.NewMemoryBackend()
	case "", tablestore.DriverREST:
		if cfg.URL == "" || cfg.Key == "" {
			panic(fmt.Sprintf("缺少存储服务的地址或者密钥，请配置 store.url 和 store.key，或者设置环境变量 %s 和 %s",
				storeURLEnv, storeKeyEnv))
		}
		return tablestore.NewRESTBackend(tablestore.NewRESTClient(cfg.URL, cfg.Key))
	default:
		panic(fmt.Sprintf("未知的 store.driver: %s", cfg.Driver))
	}
}

// loadStoreConfig 环境变量优先于配置文件，本地开发可以把密钥放在 .env 里面
func loadStoreConfig() config.StoreConfig {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	var cfg config.StoreConfig
	err := econf.UnmarshalKey("store", &cfg)
	if err != nil {
		panic(err)
	}
	if url := os.Getenv(storeURLEnv); url != "" {
		cfg.URL = url
	}
	if key := os.Getenv(storeKeyEnv); key != "" {
		cfg.Key = key
	}
	return cfg
}
