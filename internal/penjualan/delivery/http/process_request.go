package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/penjualan"
)

// Form field names outside the header/line keys of package form.
const (
	fieldAction    = "action"
	fieldLines     = "lines"
	fieldCommitted = "qty_committed_%d"

	actionAddItem    = "tambah-item"
	actionRemoveItem = "hapus-item-"
	actionSave       = "simpan"

	maxLines = 100
)

var errInvalidID = errors.New("invalid id")

// formAction is the button that submitted the order form.
type formAction struct {
	kind  string
	index int
}

func parseAction(raw string) formAction {
	switch {
	case raw == actionAddItem:
		return formAction{kind: actionAddItem}
	case strings.HasPrefix(raw, actionRemoveItem):
		i, err := strconv.Atoi(strings.TrimPrefix(raw, actionRemoveItem))
		if err != nil {
			// An unreadable index removes nothing and re-renders the form.
			return formAction{kind: actionRemoveItem, index: -1}
		}
		return formAction{kind: actionRemoveItem, index: i}
	default:
		return formAction{kind: actionSave}
	}
}

type formReq struct {
	action formAction
	draft  penjualan.Draft
}

// processFormReq rebuilds the draft from the posted form. Each line carries its committed
// quantity in a hidden field next to the raw input; leaving the form commits every buffer.
func (h *handler) processFormReq(c *gin.Context) (formReq, error) {
	if err := c.Request.ParseForm(); err != nil {
		return formReq{draft: penjualan.NewDraft()}, err
	}

	n, _ := strconv.Atoi(c.PostForm(fieldLines))
	n = min(max(n, 1), maxLines)

	d := penjualan.Draft{
		Tgl:         strings.TrimSpace(c.PostForm(form.Header(form.FieldTgl).String())),
		PelangganID: parseRef(c.PostForm(form.Header(form.FieldPelanggan).String())),
		Items:       make([]penjualan.Line, 0, n),
	}
	for i := 0; i < n; i++ {
		committed, _ := strconv.Atoi(c.PostForm(fmt.Sprintf(fieldCommitted, i)))
		d.Items = append(d.Items, penjualan.Line{
			BarangID: parseRef(c.PostForm(form.Line(i, form.LineBarang).String())),
			Qty:      form.RestoreQuantity(committed, c.PostForm(form.Line(i, form.LineQty).String())),
		})
	}
	d.BlurAll()

	return formReq{action: parseAction(c.PostForm(fieldAction)), draft: d}, nil
}

// parseRef reads a selected record id; anything else means nothing selected.
func parseRef(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// processID reads a positive :id path parameter.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id := parseRef(c.Param("id"))
	if id == 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// processDialogID reads the ?hapus= selection of the list page, 0 when absent.
func (h *handler) processDialogID(c *gin.Context) int64 {
	return parseRef(c.Query("hapus"))
}
