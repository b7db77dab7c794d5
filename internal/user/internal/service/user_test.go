package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
	"github.com/ecodeclub/projecthall/internal/user/internal/domain"
	"github.com/ecodeclub/projecthall/internal/user/internal/event"
	"github.com/ecodeclub/projecthall/internal/user/internal/repository"
	"github.com/ecodeclub/projecthall/internal/user/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProducer struct {
	err  error
	evts []event.RegistrationEvent
}

func (p *stubProducer) Produce(ctx context.Context, evt event.RegistrationEvent) error {
	p.evts = append(p.evts, evt)
	return p.err
}

// racingRepository 模拟两个请求同时通过查重
type racingRepository struct {
	repository.UserRepository
}

func (r racingRepository) ExistsByContact(ctx context.Context, contact string) (bool, error) {
	return false, nil
}

type brokenStore struct{}

func (brokenStore) Insert(ctx context.Context, row dao.User) (dao.User, error) {
	return row, errors.New("store down")
}

func (brokenStore) Select(ctx context.Context, q tablestore.Query) ([]dao.User, error) {
	return nil, errors.New("store down")
}

func newMemoryStore() tablestore.Store[dao.User] {
	return tablestore.NewMemoryStore[dao.User](dao.Table)
}

func countByContact(t *testing.T, store tablestore.Store[dao.User], contact string) int {
	us, err := dao.NewUserDAO(store).FindByContact(context.Background(), contact)
	require.NoError(t, err)
	return len(us)
}

func TestUserService_Register(t *testing.T) {
	alice := domain.User{
		Name:    "Alice",
		School:  "X-U",
		Major:   "CS",
		Degree:  domain.DegreeBachelor,
		Contact: "13800000001",
	}
	testCases := []struct {
		name     string
		store    tablestore.Store[dao.User]
		before   func(t *testing.T, repo repository.UserRepository) repository.UserRepository
		producer *stubProducer
		user     domain.User

		wantErr    error
		wantDegree domain.Degree
		// 执行完之后该联系方式的行数
		wantCount int
		wantEvts  int
	}{
		{
			name:       "登记成功",
			store:      newMemoryStore(),
			producer:   &stubProducer{},
			user:       alice,
			wantDegree: domain.DegreeBachelor,
			wantCount:  1,
			wantEvts:   1,
		},
		{
			name:     "学历为空默认本科",
			store:    newMemoryStore(),
			producer: &stubProducer{},
			user: domain.User{
				Name:    "Bob",
				Contact: "wx_bob",
			},
			wantDegree: domain.DegreeBachelor,
			wantCount:  1,
			wantEvts:   1,
		},
		{
			name:  "联系方式已存在",
			store: newMemoryStore(),
			before: func(t *testing.T, repo repository.UserRepository) repository.UserRepository {
				_, err := repo.Create(context.Background(), alice)
				require.NoError(t, err)
				return repo
			},
			producer:  &stubProducer{},
			user:      domain.User{Name: "Alice2", Contact: alice.Contact},
			wantErr:   ErrUserDuplicate,
			wantCount: 1,
		},
		{
			name:  "并发登记，写入的时候被唯一约束拦住",
			store: newMemoryStore(),
			before: func(t *testing.T, repo repository.UserRepository) repository.UserRepository {
				_, err := repo.Create(context.Background(), alice)
				require.NoError(t, err)
				return racingRepository{UserRepository: repo}
			},
			producer:  &stubProducer{},
			user:      alice,
			wantErr:   ErrUserDuplicate,
			wantCount: 1,
		},
		{
			name:      "姓名为空",
			store:     newMemoryStore(),
			producer:  &stubProducer{},
			user:      domain.User{Contact: "13800000002"},
			wantErr:   ErrInvalidUser,
			wantCount: 0,
		},
		{
			name:      "联系方式为空",
			store:     newMemoryStore(),
			producer:  &stubProducer{},
			user:      domain.User{Name: "Carol"},
			wantErr:   ErrInvalidUser,
			wantCount: 0,
		},
		{
			name:      "学历不合法",
			store:     newMemoryStore(),
			producer:  &stubProducer{},
			user:      domain.User{Name: "Dave", Contact: "13800000003", Degree: "小学"},
			wantErr:   ErrInvalidDegree,
			wantCount: 0,
		},
		{
			name:       "发送消息失败不影响登记",
			store:      newMemoryStore(),
			producer:   &stubProducer{err: errors.New("mq down")},
			user:       alice,
			wantDegree: domain.DegreeBachelor,
			wantCount:  1,
			wantEvts:   1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := repository.NewUserRepository(dao.NewUserDAO(tc.store))
			if tc.before != nil {
				repo = tc.before(t, repo)
			}
			svc := NewUserService(repo, tc.producer)
			start := time.Now().Truncate(time.Millisecond)
			u, err := svc.Register(context.Background(), tc.user)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, tc.producer.evts, tc.wantEvts)
			if tc.user.Contact != "" {
				assert.Equal(t, tc.wantCount, countByContact(t, tc.store, tc.user.Contact))
			}
			if err != nil {
				return
			}
			assert.True(t, u.Id > 0)
			assert.Equal(t, tc.user.Name, u.Name)
			assert.Equal(t, tc.user.Contact, u.Contact)
			assert.Equal(t, tc.wantDegree, u.Degree)
			assert.False(t, u.RegTime.Before(start))
			assert.Equal(t, u.Id, tc.producer.evts[0].Uid)
		})
	}
}

func TestUserService_RegisterStoreError(t *testing.T) {
	svc := NewUserService(repository.NewUserRepository(dao.NewUserDAO(brokenStore{})), &stubProducer{})
	_, err := svc.Register(context.Background(), domain.User{Name: "Alice", Contact: "13800000001"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserDuplicate)
	_, err = svc.List(context.Background())
	assert.Error(t, err)
	assert.Error(t, svc.Export(context.Background(), &bytes.Buffer{}))
}

func TestUserService_ListAndExport(t *testing.T) {
	store := newMemoryStore()
	producer := &stubProducer{}
	svc := NewUserService(repository.NewUserRepository(dao.NewUserDAO(store)), producer)
	ctx := context.Background()

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	for _, u := range []domain.User{
		{Name: "Alice", School: "X-U", Major: "CS", Degree: domain.DegreeBachelor, Contact: "13800000001"},
		{Name: "Bob", School: "Y-U", Major: "EE", Degree: domain.DegreeMaster, Contact: "13800000002"},
		{Name: "Carol, Jr.", School: "Z-U", Major: "数学", Degree: domain.DegreeDoctor, Contact: "wx_carol"},
	} {
		_, err = svc.Register(ctx, u)
		require.NoError(t, err)
	}

	users, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i := 1; i < len(users); i++ {
		assert.False(t, users[i-1].RegTime.Before(users[i].RegTime))
	}
	// 最后登记的在最前面，同一毫秒内的按照主键倒序
	assert.Equal(t, "Carol, Jr.", users[0].Name)
	assert.Equal(t, "Alice", users[2].Name)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"name", "school", "major", "degree", "contact", "reg_time"}, records[0])
	for i, u := range users {
		assert.Equal(t, []string{u.Name, u.School, u.Major, string(u.Degree), u.Contact,
			u.RegTime.Format(time.DateTime)}, records[i+1])
	}
}
