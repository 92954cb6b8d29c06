package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/barang"
	"backoffice-dashboard/pkg/log"
)

// Handler is the public interface of the item pages.
type Handler interface {
	List(c *gin.Context)
	Delete(c *gin.Context)
	CreateForm(c *gin.Context)
	Create(c *gin.Context)
	EditForm(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           barang.UseCase
	dismissAfter time.Duration
}

// New creates the item page handler. dismissAfter is how long success banners stay.
func New(l log.Logger, uc barang.UseCase, dismissAfter time.Duration) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		dismissAfter: dismissAfter,
	}
}
