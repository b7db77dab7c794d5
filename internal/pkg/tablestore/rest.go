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
	"fmt"
	"net/http"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/imroc/req/v3"
	"github.com/pkg/errors"
)

// PostgreSQL 的唯一约束冲突
const uniqueViolation = "23505"

// NewRESTClient 访问托管的 PostgREST 服务（例如 Supabase），key 同时作为 apikey 和 Bearer token
func NewRESTClient(baseURL, key string) *req.Client {
	return req.C().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetCommonHeader("apikey", key).
		SetCommonBearerAuthToken(key).
		SetCommonContentType("application/json")
}

// RESTStore 按照 PostgREST 的约定访问 /rest/v1/{table}
type RESTStore[T any] struct {
	client *req.Client
	table  string
}

func NewRESTStore[T any](client *req.Client, table string) *RESTStore[T] {
	return &RESTStore[T]{
		client: client,
		table:  table,
	}
}

type restError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func (s *RESTStore[T]) Insert(ctx context.Context, row T) (T, error) {
	var (
		rows   []T
		apiErr restError
	)
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(row).
		SetSuccessResult(&rows).
		SetErrorResult(&apiErr).
		Post(s.path())
	if err != nil {
		return row, errors.Wrapf(err, "写入 %s 失败", s.table)
	}
	if resp.IsErrorState() {
		if resp.StatusCode == http.StatusConflict || apiErr.Code == uniqueViolation {
			return row, ErrDuplicate
		}
		return row, errors.Errorf("写入 %s 失败 status: %d, code: %s, msg: %s",
			s.table, resp.StatusCode, apiErr.Code, apiErr.Message)
	}
	if len(rows) == 0 {
		return row, errors.Errorf("写入 %s 之后没有返回数据 status: %d", s.table, resp.StatusCode)
	}
	return rows[0], nil
}

func (s *RESTStore[T]) Select(ctx context.Context, q Query) ([]T, error) {
	r := s.client.R().SetContext(ctx).SetQueryParam("select", "*")
	for _, c := range q.Where {
		r.AddQueryParam(c.Column, fmt.Sprintf("eq.%v", c.Value))
	}
	if len(q.Order) > 0 {
		r.SetQueryParam("order", strings.Join(slice.Map(q.Order, func(idx int, src Order) string {
			if src.Desc {
				return src.Column + ".desc"
			}
			return src.Column + ".asc"
		}), ","))
	}
	var (
		rows   []T
		apiErr restError
	)
	resp, err := r.SetSuccessResult(&rows).SetErrorResult(&apiErr).Get(s.path())
	if err != nil {
		return nil, errors.Wrapf(err, "查询 %s 失败", s.table)
	}
	if resp.IsErrorState() {
		return nil, errors.Errorf("查询 %s 失败 status: %d, code: %s, msg: %s",
			s.table, resp.StatusCode, apiErr.Code, apiErr.Message)
	}
	if rows == nil {
		rows = make([]T, 0)
	}
	return rows, nil
}

func (s *RESTStore[T]) path() string {
	return "/rest/v1/" + s.table
}
