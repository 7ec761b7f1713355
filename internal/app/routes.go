package app

import (
	"github.com/agrotech/core/internal/middleware"
	"github.com/agrotech/core/internal/modules/auth"
	"github.com/agrotech/core/internal/modules/company"
	"github.com/agrotech/core/internal/modules/content/blog"
	"github.com/agrotech/core/internal/modules/content/category"
	"github.com/agrotech/core/internal/modules/content/heroslide"
	"github.com/agrotech/core/internal/modules/content/service"
	"github.com/agrotech/core/internal/modules/inbox/contact"
	"github.com/agrotech/core/internal/modules/inbox/inquiry"
	"github.com/agrotech/core/internal/modules/inbox/newsletter"
	"github.com/agrotech/core/internal/modules/people/team"
	"github.com/agrotech/core/internal/modules/people/testimonial"
	"github.com/agrotech/core/internal/modules/stats/aggregate"
	"github.com/agrotech/core/internal/modules/stats/statistic"
	"github.com/agrotech/core/internal/modules/storage/upload"
	pkgredis "github.com/agrotech/core/internal/pkg/redis"
	"github.com/agrotech/core/internal/pkg/response"
	"github.com/agrotech/core/internal/pkg/seen"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(rc *pkgredis.Client, seenStore seen.Store) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":    "agrotech-core",
			"version": "1.0.0",
		})
	})

	// uploaded files when running on local storage
	r.Static("/static", a.cfg.ResolveStaticDir())

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.RateLimit(rc.Raw()))

	companyService := company.NewService(db)

	modules := []interface {
		RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc)
	}{
		auth.NewHandler(auth.NewService(db)),
		service.NewHandler(service.NewService(db)),
		category.NewHandler(category.NewService(db)),
		blog.NewHandler(blog.NewService(db, seenStore)),
		heroslide.NewHandler(db),
		team.NewHandler(db),
		testimonial.NewHandler(db),
		contact.NewHandler(contact.NewService(db)),
		inquiry.NewHandler(inquiry.NewService(db)),
		newsletter.NewHandler(db),
		company.NewHandler(companyService),
		statistic.NewHandler(db),
		aggregate.NewHandler(db, companyService, a.logger),
		upload.NewHandler(db, a.cfg, a.logger),
	}
	for _, m := range modules {
		m.RegisterRoutes(api, authMW)
	}
}
