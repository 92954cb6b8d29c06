package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/pelanggan"
	"backoffice-dashboard/pkg/log"
)

// Handler is the public interface of the customer pages.
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
	uc           pelanggan.UseCase
	dismissAfter time.Duration
}

func New(l log.Logger, uc pelanggan.UseCase, dismissAfter time.Duration) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		dismissAfter: dismissAfter,
	}
}
