package http

import (
	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/middleware"
)

const (
	listPath   = "/kelola-barang"
	createPath = listPath + "/tambah-barang"
	editPath   = listPath + "/ubah-barang"
	deletePath = listPath + "/hapus"
)

// MapRoutes registers the item pages. Form submissions go through the rate limiter.
func MapRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	g := r.Group(listPath)
	{
		g.GET("", h.List)
		g.POST("/hapus/:id", mw.RateLimit(), h.Delete)
		g.GET("/tambah-barang", h.CreateForm)
		g.POST("/tambah-barang", mw.RateLimit(), h.Create)
		g.GET("/ubah-barang/:id", h.EditForm)
		g.POST("/ubah-barang/:id", mw.RateLimit(), h.Update)
	}
}
