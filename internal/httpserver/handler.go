package httpserver

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	barangHTTP "backoffice-dashboard/internal/barang/delivery/http"
	barangRepo "backoffice-dashboard/internal/barang/repository/rest"
	barangUC "backoffice-dashboard/internal/barang/usecase"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/middleware"
	"backoffice-dashboard/internal/model"
	pelangganHTTP "backoffice-dashboard/internal/pelanggan/delivery/http"
	pelangganRepo "backoffice-dashboard/internal/pelanggan/repository/rest"
	pelangganUC "backoffice-dashboard/internal/pelanggan/usecase"
	penjualanHTTP "backoffice-dashboard/internal/penjualan/delivery/http"
	penjualanRepo "backoffice-dashboard/internal/penjualan/repository/rest"
	penjualanUC "backoffice-dashboard/internal/penjualan/usecase"
	"backoffice-dashboard/web"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(cors.New(srv.corsConfig()))
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.corsOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins %v", srv.environment, srv.corsOrigins)
	}
}

func (srv *HTTPServer) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(srv.corsOrigins) == 0 || slices.Contains(srv.corsOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = srv.corsOrigins
	}
	return cfg
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires repository, use case and pages of every domain.
// Sales orders reuse the item and customer use cases for their dropdowns.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	srv.gin.SetHTMLTemplate(web.Templates())

	size := srv.cache.Size
	if !srv.cache.Enabled {
		size = 0
	}

	barangCache := listview.NewCache[model.Barang](size, srv.cache.TTL)
	pelangganCache := listview.NewCache[model.Pelanggan](size, srv.cache.TTL)
	penjualanCache := listview.NewCache[model.Penjualan](size, srv.cache.TTL)

	// Order rows embed item and customer names.
	barangCache.OnInvalidate(penjualanCache.Purge)
	pelangganCache.OnInvalidate(penjualanCache.Purge)

	bUC := barangUC.New(barangRepo.New(srv.client, srv.l), barangCache, srv.l)
	barangHTTP.MapRoutes(srv.gin, barangHTTP.New(srv.l, bUC, srv.dismissAfter), mw)

	pUC := pelangganUC.New(pelangganRepo.New(srv.client, srv.l), pelangganCache, srv.l)
	pelangganHTTP.MapRoutes(srv.gin, pelangganHTTP.New(srv.l, pUC, srv.dismissAfter), mw)

	jUC := penjualanUC.New(penjualanRepo.New(srv.client, srv.l), bUC, pUC, penjualanCache, srv.l)
	penjualanHTTP.MapRoutes(srv.gin, penjualanHTTP.New(srv.l, jUC, srv.dismissAfter), mw)

	srv.gin.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, web.SectionBarang)
	})

	srv.l.Infof(ctx, "Dashboard routes registered against %s", srv.client.BaseURL())
}
