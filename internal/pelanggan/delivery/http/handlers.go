package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/notice"
	"backoffice-dashboard/internal/pelanggan"
	"backoffice-dashboard/web"
)

// List renders the customer table with the banner and delete dialog state carried in the URL.
func (h *handler) List(c *gin.Context) {
	var dialog listview.ConfirmDialog
	if id := h.processDialogID(c); id != 0 {
		dialog.Open(id)
	}
	h.renderList(c, notice.FromURL(c.Request.URL), dialog)
}

// Delete confirms the delete dialog. Failures are logged only.
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	state := notice.FromURL(&url.URL{Path: listPath})

	var dialog listview.ConfirmDialog
	if id, err := h.processID(c); err == nil {
		dialog.Open(id)
	}
	if err := dialog.Confirm(ctx, h.uc.Delete, func() { state = state.Show(notice.Deleted) }); err != nil {
		h.l.Errorf(ctx, "pelanggan/delivery/http.Delete uc.Delete: %v", err)
	}
	h.renderList(c, state, dialog)
}

func (h *handler) renderList(c *gin.Context, state notice.State, dialog listview.ConfirmDialog) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "pelanggan/delivery/http.List uc.List: %v", err)
	}

	page := web.NewPage(web.SectionPelanggan, titleList, newListView(out.Items, dialog))
	page.Banner = state.Banner(messages, h.dismissAfter)
	if c.Request.Method != http.MethodGet {
		page.ReplaceURL = state.URL()
	}
	c.HTML(http.StatusOK, tmplList, page)
}

func (h *handler) CreateForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, titleCreate, newFormView("Form Tambah Pelanggan", createPath, pelanggan.NewDraft(), form.Errors{}), "")
}

// Create posts the customer and redirects with ?success=1.
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	draft, err := h.processFormReq(c)
	if err != nil {
		h.l.Warnf(ctx, "pelanggan/delivery/http.Create processFormReq: %v", err)
	}

	if _, err := h.uc.Create(ctx, pelanggan.CreateInput{Draft: draft}); err != nil {
		errs, alert, status := h.mapFormError(err, alertCreateFailed)
		h.renderForm(c, status, titleCreate, newFormView("Form Tambah Pelanggan", createPath, draft, errs), alert)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath+"?"+notice.FlagCreated+"=1")
}

func (h *handler) EditForm(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, listPath)
		return
	}
	action := fmt.Sprintf("%s/%d", editPath, id)

	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "pelanggan/delivery/http.EditForm uc.Detail: %v", err)
		_, alert, status := h.mapFormError(err, alertLoadFailed)
		h.renderForm(c, status, titleEdit, newFormView("Form Ubah Pelanggan", action, pelanggan.NewDraft(), form.Errors{}), alert)
		return
	}

	h.renderForm(c, http.StatusOK, titleEdit, newFormView("Form Ubah Pelanggan", action, pelanggan.DraftFromPelanggan(out.Pelanggan), form.Errors{}), "")
}

// Update replaces the customer and redirects with ?updated=1.
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, listPath)
		return
	}

	draft, err := h.processFormReq(c)
	if err != nil {
		h.l.Warnf(ctx, "pelanggan/delivery/http.Update processFormReq: %v", err)
	}

	if _, err := h.uc.Update(ctx, pelanggan.UpdateInput{ID: id, Draft: draft}); err != nil {
		errs, alert, status := h.mapFormError(err, alertUpdateFailed)
		h.renderForm(c, status, titleEdit, newFormView("Form Ubah Pelanggan", fmt.Sprintf("%s/%d", editPath, id), draft, errs), alert)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath+"?"+notice.FlagUpdated+"=1")
}

func (h *handler) renderForm(c *gin.Context, status int, title string, view formView, alert string) {
	page := web.NewPage(web.SectionPelanggan, title, view)
	page.Alert = alert
	c.HTML(status, tmplForm, page)
}
