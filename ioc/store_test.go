package ioc

import (
	"testing"

	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
)

func TestInitBackend(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       map[string]any
		env       map[string]string
		wantPanic bool
		want      tablestore.Driver
	}{
		{
			name:      "缺少地址和密钥",
			cfg:       map[string]any{"driver": "rest", "url": "", "key": ""},
			wantPanic: true,
		},
		{
			name:      "只配置了地址",
			cfg:       map[string]any{"driver": "", "url": "https://db.example.com", "key": ""},
			wantPanic: true,
		},
		{
			name: "环境变量补上密钥",
			cfg:  map[string]any{"driver": "rest", "url": "https://db.example.com", "key": ""},
			env:  map[string]string{storeKeyEnv: "anon-key"},
			want: tablestore.DriverREST,
		},
		{
			name: "全部来自环境变量",
			cfg:  map[string]any{"driver": "", "url": "", "key": ""},
			env:  map[string]string{storeURLEnv: "https://db.example.com", storeKeyEnv: "anon-key"},
			want: tablestore.DriverREST,
		},
		{
			name: "内存存储",
			cfg:  map[string]any{"driver": "memory", "url": "", "key": ""},
			want: tablestore.DriverMemory,
		},
		{
			name:      "未知的存储",
			cfg:       map[string]any{"driver": "redis", "url": "", "key": ""},
			wantPanic: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(storeURLEnv, "")
			t.Setenv(storeKeyEnv, "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			econf.Set("store", tc.cfg)
			if tc.wantPanic {
				assert.Panics(t, func() { InitBackend() })
				return
			}
			assert.Equal(t, tc.want, InitBackend().Driver())
		})
	}
}
