package service

// DefaultPassword 没有配置 admin.password 的时候使用
const DefaultPassword = "admin888"

// Gate 管理员口令校验。只有一个静态口令，没有会话，每个请求都要带上口令
type Gate interface {
	CheckAdmin(password string) bool
}

type staticGate struct {
	password string
}

func NewGate(password string) Gate {
	if password == "" {
		password = DefaultPassword
	}
	return &staticGate{password: password}
}

// CheckAdmin 严格相等，前后的空格也不会去掉
func (g *staticGate) CheckAdmin(password string) bool {
	return password == g.password
}
