package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/pelanggan"
)

var errInvalidID = errors.New("invalid id")

type formReq struct {
	Nama         string `form:"nama"`
	Domisili     string `form:"domisili"`
	JenisKelamin string `form:"jenis_kelamin"`
}

func (r formReq) toDraft() pelanggan.Draft {
	return pelanggan.Draft{
		Nama:         r.Nama,
		Domisili:     model.Domisili(r.Domisili),
		JenisKelamin: model.JenisKelamin(r.JenisKelamin),
	}
}

func (h *handler) processFormReq(c *gin.Context) (pelanggan.Draft, error) {
	var req formReq
	if err := c.ShouldBind(&req); err != nil {
		return pelanggan.Draft{}, err
	}
	return req.toDraft(), nil
}

func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processDialogID(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Query("hapus"), 10, 64)
	if id < 0 {
		return 0
	}
	return id
}
