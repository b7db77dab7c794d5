//go:build e2e

package integration

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
	testioc "github.com/ecodeclub/projecthall/internal/test/ioc"
	"github.com/ecodeclub/projecthall/internal/user"
	"github.com/ecodeclub/projecthall/internal/user/internal/domain"
	"github.com/ecodeclub/projecthall/internal/user/internal/integration/startup"
	"github.com/ecodeclub/projecthall/internal/user/internal/repository/dao"
	"github.com/ecodeclub/projecthall/internal/user/internal/service"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

// UserMySQLTestSuite 唯一索引要靠真实的 MySQL 来验证
type UserMySQLTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc user.UserService
}

func (s *UserMySQLTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := startup.InitModule(tablestore.NewGORMBackend(s.db))
	require.NoError(s.T(), err)
	s.svc = m.Svc
}

func (s *UserMySQLTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *UserMySQLTestSuite) TestConcurrentRegister() {
	t := s.T()
	const n = 8
	var (
		eg      errgroup.Group
		mu      sync.Mutex
		created int
		dup     int
	)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			_, err := s.svc.Register(context.Background(), domain.User{
				Name:    "Alice",
				Contact: "13800000001",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, service.ErrUserDuplicate):
				dup++
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Equal(t, 1, created)
	assert.Equal(t, n-1, dup)

	var cnt int64
	err := s.db.Model(&dao.User{}).Where("contact = ?", "13800000001").Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *UserMySQLTestSuite) TestList() {
	t := s.T()
	for _, c := range []string{"a", "b", "c"} {
		_, err := s.svc.Register(context.Background(), domain.User{Name: c, Contact: c})
		require.NoError(t, err)
	}
	users, err := s.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "c", users[0].Contact)
	assert.Equal(t, "a", users[2].Contact)
}

func TestUserMySQL(t *testing.T) {
	suite.Run(t, new(UserMySQLTestSuite))
}
