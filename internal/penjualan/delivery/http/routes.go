package http

import (
	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/middleware"
)

const (
	listPath   = "/kelola-penjualan"
	createPath = listPath + "/tambah-penjualan"
	editPath   = listPath + "/ubah-penjualan"
	deletePath = listPath + "/hapus"
	notaPath   = listPath + "/nota"
)

func MapRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	g := r.Group(listPath)
	{
		g.GET("", h.List)
		g.POST("/hapus/:id", mw.RateLimit(), h.Delete)
		g.GET("/tambah-penjualan", h.CreateForm)
		g.POST("/tambah-penjualan", mw.RateLimit(), h.Create)
		g.GET("/ubah-penjualan/:id", h.EditForm)
		g.POST("/ubah-penjualan/:id", mw.RateLimit(), h.Update)
		g.GET("/nota/:id", h.Nota)
	}
}
