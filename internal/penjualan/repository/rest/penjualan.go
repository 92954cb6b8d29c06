package rest

import (
	"context"
	"errors"

	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/penjualan/repository"
	"backoffice-dashboard/pkg/restapi"
)

type itemBody struct {
	BarangID int64 `json:"barang_id"`
	Qty      int   `json:"qty"`
}

type saveBody struct {
	Tgl         string     `json:"tgl"`
	PelangganID int64      `json:"pelanggan_id"`
	Items       []itemBody `json:"items"`
}

func newSaveBody(opt repository.SavePenjualanOptions) saveBody {
	body := saveBody{Tgl: opt.Tgl, PelangganID: opt.PelangganID, Items: make([]itemBody, len(opt.Items))}
	for i, it := range opt.Items {
		body.Items[i] = itemBody{BarangID: it.BarangID, Qty: it.Qty}
	}
	return body
}

// logFailure logs the server payload of a failed call, or the transport error.
func (r *implRepository) logFailure(ctx context.Context, method string, err error) {
	var apiErr *restapi.APIError
	if errors.As(err, &apiErr) {
		r.l.Errorf(ctx, "penjualan/repository/rest.%s: status=%d payload=%s", method, apiErr.StatusCode, apiErr.Body)
		return
	}
	r.l.Errorf(ctx, "penjualan/repository/rest.%s: %v", method, err)
}

func (r *implRepository) ListPenjualans(ctx context.Context) ([]model.Penjualan, error) {
	var items []model.Penjualan
	if err := r.client.Get(ctx, basePath, &items); err != nil {
		r.logFailure(ctx, "ListPenjualans", err)
		return nil, wrap(repository.ErrFailedToList, err)
	}
	return items, nil
}

func (r *implRepository) GetPenjualan(ctx context.Context, id int64) (model.Penjualan, error) {
	var p model.Penjualan
	if err := r.client.Get(ctx, orderPath(id), &p); err != nil {
		r.logFailure(ctx, "GetPenjualan", err)
		return model.Penjualan{}, wrap(repository.ErrFailedToGet, err)
	}
	return p, nil
}

func (r *implRepository) CreatePenjualan(ctx context.Context, opt repository.SavePenjualanOptions) (model.Penjualan, error) {
	var p model.Penjualan
	if err := r.client.Post(ctx, basePath, newSaveBody(opt), &p); err != nil {
		r.logFailure(ctx, "CreatePenjualan", err)
		return model.Penjualan{}, wrap(repository.ErrFailedToInsert, err)
	}
	return p, nil
}

func (r *implRepository) UpdatePenjualan(ctx context.Context, id int64, opt repository.SavePenjualanOptions) (model.Penjualan, error) {
	var p model.Penjualan
	if err := r.client.Put(ctx, orderPath(id), newSaveBody(opt), &p); err != nil {
		r.logFailure(ctx, "UpdatePenjualan", err)
		return model.Penjualan{}, wrap(repository.ErrFailedToUpdate, err)
	}
	return p, nil
}

func (r *implRepository) DeletePenjualan(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, orderPath(id)); err != nil {
		r.logFailure(ctx, "DeletePenjualan", err)
		return wrap(repository.ErrFailedToDelete, err)
	}
	return nil
}
