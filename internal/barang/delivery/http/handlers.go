package http

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/barang"
	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/notice"
	"backoffice-dashboard/web"
)

// List renders the item table. ?success=1 and ?updated=1 show a banner, ?hapus={id} opens the delete dialog.
func (h *handler) List(c *gin.Context) {
	var dialog listview.ConfirmDialog
	if id := h.processDialogID(c); id != 0 {
		dialog.Open(id)
	}
	h.renderList(c, notice.FromURL(c.Request.URL), dialog)
}

// Delete confirms the dialog for :id and renders the list in place.
// A failed delete is only logged; the dialog closes either way.
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	state := notice.FromURL(&url.URL{Path: listPath})
	id, err := h.processID(c)
	if err != nil {
		h.l.Warnf(ctx, "barang/delivery/http.Delete: %v", err)
		h.renderList(c, state, listview.ConfirmDialog{})
		return
	}

	var dialog listview.ConfirmDialog
	dialog.Open(id)
	if err := dialog.Confirm(ctx, h.uc.Delete, func() { state = state.Show(notice.Deleted) }); err != nil {
		h.l.Errorf(ctx, "barang/delivery/http.Delete uc.Delete: %v", err)
	}
	h.renderList(c, state, dialog)
}

func (h *handler) renderList(c *gin.Context, state notice.State, dialog listview.ConfirmDialog) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "barang/delivery/http.List uc.List: %v", err)
	}

	page := web.NewPage(web.SectionBarang, titleList, newListView(out.Items, dialog))
	page.Banner = state.Banner(messages, h.dismissAfter)
	if c.Request.Method != http.MethodGet {
		page.ReplaceURL = state.URL()
	}
	c.HTML(http.StatusOK, tmplList, page)
}

// CreateForm renders a blank item form.
func (h *handler) CreateForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, titleCreate, newCreateFormView(barang.Draft{}, form.Errors{}), "")
}

// Create validates and posts the item, then redirects to the list with ?success=1.
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	draft, err := h.processFormReq(c)
	if err != nil {
		h.l.Warnf(ctx, "barang/delivery/http.Create processFormReq: %v", err)
	}

	if _, err := h.uc.Create(ctx, barang.CreateInput{Draft: draft}); err != nil {
		errs, alert, status := h.mapFormError(err, alertCreateFailed)
		h.renderForm(c, status, titleCreate, newCreateFormView(draft, errs), alert)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath+"?"+notice.FlagCreated+"=1")
}

// EditForm loads the item and pre-populates the form. A failed load shows an alert over a blank form.
func (h *handler) EditForm(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, listPath)
		return
	}

	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "barang/delivery/http.EditForm uc.Detail: %v", err)
		_, alert, status := h.mapFormError(err, alertLoadFailed)
		h.renderForm(c, status, titleEdit, newEditFormView(id, barang.Draft{}, form.Errors{}), alert)
		return
	}

	h.renderForm(c, http.StatusOK, titleEdit, newEditFormView(id, barang.DraftFromBarang(out.Barang), form.Errors{}), "")
}

// Update validates and replaces the item, then redirects to the list with ?updated=1.
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, listPath)
		return
	}

	draft, err := h.processFormReq(c)
	if err != nil {
		h.l.Warnf(ctx, "barang/delivery/http.Update processFormReq: %v", err)
	}

	if _, err := h.uc.Update(ctx, barang.UpdateInput{ID: id, Draft: draft}); err != nil {
		errs, alert, status := h.mapFormError(err, alertUpdateFailed)
		h.renderForm(c, status, titleEdit, newEditFormView(id, draft, errs), alert)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath+"?"+notice.FlagUpdated+"=1")
}

func (h *handler) renderForm(c *gin.Context, status int, title string, view formView, alert string) {
	page := web.NewPage(web.SectionBarang, title, view)
	page.Alert = alert
	c.HTML(status, tmplForm, page)
}
