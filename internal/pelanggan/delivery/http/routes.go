package http

import (
	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/middleware"
)

const (
	listPath   = "/kelola-pelanggan"
	createPath = listPath + "/tambah-pelanggan"
	editPath   = listPath + "/ubah-pelanggan"
	deletePath = listPath + "/hapus"
)

func MapRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	g := r.Group(listPath)
	{
		g.GET("", h.List)
		g.POST("/hapus/:id", mw.RateLimit(), h.Delete)
		g.GET("/tambah-pelanggan", h.CreateForm)
		g.POST("/tambah-pelanggan", mw.RateLimit(), h.Create)
		g.GET("/ubah-pelanggan/:id", h.EditForm)
		g.POST("/ubah-pelanggan/:id", mw.RateLimit(), h.Update)
	}
}
