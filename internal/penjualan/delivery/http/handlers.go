package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/notice"
	"backoffice-dashboard/internal/penjualan"
	"backoffice-dashboard/internal/penjualan/nota"
	"backoffice-dashboard/web"
)

// List renders the order table. ?success=1 and ?updated=1 show a banner, ?hapus={id} opens the delete dialog.
func (h *handler) List(c *gin.Context) {
	var dialog listview.ConfirmDialog
	if id := h.processDialogID(c); id != 0 {
		dialog.Open(id)
	}
	h.renderList(c, notice.FromURL(c.Request.URL), dialog)
}

// Delete confirms the dialog for :id and renders the list in place.
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	state := notice.FromURL(&url.URL{Path: listPath})

	id, err := h.processID(c)
	if err != nil {
		h.l.Warnf(ctx, "penjualan/delivery/http.Delete: %v", err)
		h.renderList(c, state, listview.ConfirmDialog{})
		return
	}

	var dialog listview.ConfirmDialog
	dialog.Open(id)
	if err := dialog.Confirm(ctx, h.uc.Delete, func() { state = state.Show(notice.Deleted) }); err != nil {
		h.l.Errorf(ctx, "penjualan/delivery/http.Delete uc.Delete: %v", err)
	}
	h.renderList(c, state, dialog)
}

func (h *handler) renderList(c *gin.Context, state notice.State, dialog listview.ConfirmDialog) {
	ctx := c.Request.Context()
	out, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "penjualan/delivery/http.List uc.List: %v", err)
	}

	page := web.NewPage(web.SectionPenjualan, titleList, newListView(out.Items, dialog))
	page.Banner = state.Banner(messages, h.dismissAfter)
	if c.Request.Method != http.MethodGet {
		page.ReplaceURL = state.URL()
	}
	c.HTML(http.StatusOK, tmplList, page)
}

// CreateForm renders a blank order with one line of quantity 1.
func (h *handler) CreateForm(c *gin.Context) {
	opts := h.formOptions(c)
	h.renderForm(c, http.StatusOK, titleCreate, newCreateFormView(penjualan.NewDraft(), opts, form.Errors{}), "")
}

// Create applies the pressed button to the posted draft. Adding or removing a line
// re-renders without validation; simpan validates, posts and redirects with ?success=1.
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	req, err := h.processFormReq(c)
	if err != nil {
		h.l.Warnf(ctx, "penjualan/delivery/http.Create processFormReq: %v", err)
	}

	if req.action.kind != actionSave {
		applyLineAction(&req.draft, req.action)
		h.renderForm(c, http.StatusOK, titleCreate, newCreateFormView(req.draft, h.formOptions(c), form.Errors{}), "")
		return
	}

	if _, err := h.uc.Create(ctx, penjualan.CreateInput{Draft: req.draft}); err != nil {
		errs, alert, status := h.mapFormError(err, alertCreateFailed)
		h.renderForm(c, status, titleCreate, newCreateFormView(req.draft, h.formOptions(c), errs), alert)
		return
	}
	c.Redirect(http.StatusSeeOther, listPath+"?"+notice.FlagCreated+"=1")
}

// EditForm loads the order and both dropdown lists. A failed load shows an alert over a blank form.
func (h *handler) EditForm(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := h.processID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, listPath)
		return
	}

	out, err := h.uc.LoadEdit(ctx, id)
	if err != nil {
		_, alert, status := h.mapFormError(err, alertLoadFailed)
		h.renderForm(c, status, titleEdit, newEditFormView(id, out.Draft, out.Options, form.Errors{}), alert)
		return
	}
	h.renderForm(c, http.StatusOK, titleEdit, newEditFormView(id, out.Draft, out.Options, form.Errors{}), "")
}

// Update works like Create, except that line actions re-validate the draft right away.
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := h.processID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, listPath)
		return
	}
	req, err := h.processFormReq(c)
	if err != nil {
		h.l.Warnf(ctx, "penjualan/delivery/http.Update processFormReq: %v", err)
	}

	if req.action.kind != actionSave {
		applyLineAction(&req.draft, req.action)
		view := newEditFormView(id, req.draft, h.formOptions(c), req.draft.Validate())
		h.renderForm(c, http.StatusOK, titleEdit, view, "")
		return
	}

	if _, err := h.uc.Update(ctx, penjualan.UpdateInput{ID: id, Draft: req.draft}); err != nil {
		errs, alert, status := h.mapFormError(err, alertUpdateFailed)
		h.renderForm(c, status, titleEdit, newEditFormView(id, req.draft, h.formOptions(c), errs), alert)
		return
	}
	c.Redirect(http.StatusSeeOther, listPath+"?"+notice.FlagUpdated+"=1")
}

// Nota streams the printable receipt of :id.
func (h *handler) Nota(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := h.processID(c)
	if err != nil {
		c.String(http.StatusNotFound, alertLoadFailed)
		return
	}

	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, penjualan.ErrPenjualanNotFound) {
			status = http.StatusNotFound
		}
		c.String(status, alertLoadFailed)
		return
	}

	var buf bytes.Buffer
	if err := nota.Render(&buf, out.Penjualan); err != nil {
		h.l.Errorf(ctx, "penjualan/delivery/http.Nota nota.Render: %v", err)
		c.String(http.StatusInternalServerError, alertLoadFailed)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", notaFilename(out.Penjualan)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func notaFilename(p model.Penjualan) string {
	return p.NoNota() + ".pdf"
}

// applyLineAction adds or removes a line. Removing the only line is a no-op.
func applyLineAction(d *penjualan.Draft, a formAction) {
	switch a.kind {
	case actionAddItem:
		d.AddItem()
	case actionRemoveItem:
		d.RemoveItem(a.index)
	}
}

// formOptions loads the dropdown lists. A failure is logged and leaves the lists that loaded.
func (h *handler) formOptions(c *gin.Context) penjualan.FormOptions {
	ctx := c.Request.Context()
	opts, err := h.uc.FormOptions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "penjualan/delivery/http.formOptions uc.FormOptions: %v", err)
	}
	return opts
}

func (h *handler) renderForm(c *gin.Context, status int, title string, view formView, alert string) {
	page := web.NewPage(web.SectionPenjualan, title, view)
	page.Alert = alert
	c.HTML(status, tmplForm, page)
}
