package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/projecthall/internal/pkg/tablestore"
	"github.com/ecodeclub/projecthall/internal/project/internal/domain"
	"github.com/ecodeclub/projecthall/internal/project/internal/event"
	"github.com/ecodeclub/projecthall/internal/project/internal/repository"
	"github.com/ecodeclub/projecthall/internal/project/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProducer struct {
	err  error
	evts []event.ProjectPublishedEvent
}

func (p *stubProducer) Produce(ctx context.Context, evt event.ProjectPublishedEvent) error {
	p.evts = append(p.evts, evt)
	return p.err
}

type brokenStore struct{}

func (brokenStore) Insert(ctx context.Context, row dao.Project) (dao.Project, error) {
	return row, errors.New("store down")
}

func (brokenStore) Select(ctx context.Context, q tablestore.Query) ([]dao.Project, error) {
	return nil, errors.New("store down")
}

func newService(store tablestore.Store[dao.Project], p event.PublishedEventProducer) Service {
	return NewService(repository.NewRepository(dao.NewProjectDAO(store)), p)
}

func TestService_Publish(t *testing.T) {
	testCases := []struct {
		name     string
		store    tablestore.Store[dao.Project]
		producer *stubProducer
		prj      domain.Project

		wantErr   error
		wantCount int
		wantEvts  int
	}{
		{
			name:     "发布成功",
			store:    tablestore.NewMemoryStore[dao.Project](dao.Table),
			producer: &stubProducer{},
			prj: domain.Project{
				Title:        "Proj A",
				Content:      "做一个登记系统",
				Requirements: "会 Go",
			},
			wantCount: 1,
			wantEvts:  1,
		},
		{
			name:      "标题为空",
			store:     tablestore.NewMemoryStore[dao.Project](dao.Table),
			producer:  &stubProducer{},
			prj:       domain.Project{Content: "没有标题"},
			wantErr:   ErrInvalidProject,
			wantCount: 0,
		},
		{
			name:      "消息发送失败不影响发布",
			store:     tablestore.NewMemoryStore[dao.Project](dao.Table),
			producer:  &stubProducer{err: errors.New("mq down")},
			prj:       domain.Project{Title: "Proj A"},
			wantCount: 1,
			wantEvts:  1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(tc.store, tc.producer)
			p, err := svc.Publish(context.Background(), tc.prj)
			assert.ErrorIs(t, err, tc.wantErr)
			rows, err := tc.store.Select(context.Background(), tablestore.Query{})
			require.NoError(t, err)
			assert.Len(t, rows, tc.wantCount)
			assert.Len(t, tc.producer.evts, tc.wantEvts)
			if tc.wantErr != nil {
				return
			}
			assert.True(t, p.Id > 0)
			assert.Equal(t, domain.ProjectStatusOngoing, p.Status)
			assert.Equal(t, tc.prj.Title, p.Title)
			assert.False(t, p.Ctime.IsZero())
			assert.Equal(t, p.Id, tc.producer.evts[0].Id)
		})
	}
}

func TestService_PublishStoreError(t *testing.T) {
	p := &stubProducer{}
	_, err := newService(brokenStore{}, p).Publish(context.Background(), domain.Project{Title: "Proj A"})
	assert.Error(t, err)
	assert.Empty(t, p.evts)
}

func TestService_List(t *testing.T) {
	store := tablestore.NewMemoryStore[dao.Project](dao.Table)
	svc := newService(store, &stubProducer{})
	ctx := context.Background()

	ps, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ps)

	_, err = svc.Publish(ctx, domain.Project{Title: "Proj A"})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, domain.Project{Title: "Proj B"})
	require.NoError(t, err)

	ps, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "Proj B", ps[0].Title)
	assert.Equal(t, "Proj A", ps[1].Title)
	for i := 1; i < len(ps); i++ {
		assert.False(t, ps[i-1].Ctime.Before(ps[i].Ctime))
	}

	_, err = newService(brokenStore{}, &stubProducer{}).List(ctx)
	assert.Error(t, err)
}
