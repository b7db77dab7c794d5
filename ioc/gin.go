package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/projecthall/internal/pkg/middleware"
	"github.com/ecodeclub/projecthall/internal/project"
	"github.com/ecodeclub/projecthall/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(userHdl *user.Handler,
	prjHdl *project.Handler,
	metrics *middleware.MetricsBuilder,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(metrics.Build("web"))
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type"},
		AllowOriginFunc:  allowOrigin,
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	prjHdl.PublicRoutes(res.Engine)
	return res
}

func InitMetricsBuilder() *middleware.MetricsBuilder {
	return middleware.NewMetricsBuilder(prometheus.DefaultRegisterer)
}

// allowOrigin 本地开发的页面，以及 cors.origins 里面配置的域名
func allowOrigin(origin string) bool {
	if strings.HasPrefix(origin, "http://localhost") {
		return true
	}
	for _, domain := range econf.GetStringSlice("cors.origins") {
		if strings.Contains(origin, domain) {
			return true
		}
	}
	return false
}
