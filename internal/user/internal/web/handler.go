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

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/projecthall/internal/user/internal/domain"
	"github.com/ecodeclub/projecthall/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 同学登记，不需要登录
type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/users")
	g.POST("/register", ginx.B[RegisterReq](h.Register))
	g.GET("/degrees", ginx.W(h.Degrees))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	u, err := h.svc.Register(ctx, req.toDomain())
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  fmt.Sprintf("🎉 登记成功！%s 同学你好。", u.Name),
			Data: newUser(u),
		}, nil
	case errors.Is(err, service.ErrInvalidUser):
		return validationErrorResult, nil
	case errors.Is(err, service.ErrInvalidDegree):
		return invalidDegreeResult, nil
	case errors.Is(err, service.ErrUserDuplicate):
		return duplicateContactResult, nil
	default:
		return systemErrorResult, err
	}
}

// Degrees 学历的可选项，第一个是默认值
func (h *Handler) Degrees(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: slice.Map(domain.Degrees(), func(idx int, src domain.Degree) string {
			return string(src)
		}),
	}, nil
}
