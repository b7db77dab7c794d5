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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/projecthall/internal/admin"
	"github.com/ecodeclub/projecthall/internal/pkg/middleware"
	"github.com/ecodeclub/projecthall/internal/project"
	"github.com/ecodeclub/projecthall/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(adminHdl *admin.Handler,
	gate admin.Gate,
	prj *project.AdminHandler,
	usr *user.AdminHandler,
	metrics *middleware.MetricsBuilder,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(metrics.Build("admin"))
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		AllowHeaders:     []string{middleware.AdminPasswordHeader, "Content-Type"},
		AllowOriginFunc:  allowOrigin,
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	adminHdl.PublicRoutes(res.Engine)

	// 口令校验
	res.Use(middleware.NewCheckAdminBuilder(gate).Build())
	prj.PrivateRoutes(res.Engine)
	usr.PrivateRoutes(res.Engine)
	return res
}
