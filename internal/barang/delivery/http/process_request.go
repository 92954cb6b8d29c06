package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/barang"
	"backoffice-dashboard/internal/model"
)

var errInvalidID = errors.New("invalid id")

type formReq struct {
	Nama     string `form:"nama"`
	Kategori string `form:"kategori"`
	Harga    string `form:"harga"`
}

func (r formReq) toDraft() barang.Draft {
	d := barang.Draft{Nama: r.Nama, Kategori: model.Kategori(r.Kategori)}
	d.SetHargaInput(r.Harga)
	return d
}

// processFormReq binds the posted item form.
func (h *handler) processFormReq(c *gin.Context) (barang.Draft, error) {
	var req formReq
	if err := c.ShouldBind(&req); err != nil {
		return barang.Draft{}, err
	}
	return req.toDraft(), nil
}

// processID reads a positive :id path parameter.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// processDialogID reads the ?hapus= selection of the list page, 0 when absent.
func (h *handler) processDialogID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Query("hapus"), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
