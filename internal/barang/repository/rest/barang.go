package rest

import (
	"context"

	"backoffice-dashboard/internal/barang/repository"
	"backoffice-dashboard/internal/model"
)

type saveBody struct {
	Nama     string         `json:"nama"`
	Kategori model.Kategori `json:"kategori"`
	Harga    *int64         `json:"harga"`
}

func newSaveBody(opt repository.SaveBarangOptions) saveBody {
	return saveBody{Nama: opt.Nama, Kategori: opt.Kategori, Harga: opt.Harga}
}

// ListBarangs fetches GET /barangs.
func (r *implRepository) ListBarangs(ctx context.Context) ([]model.Barang, error) {
	var items []model.Barang
	if err := r.client.Get(ctx, basePath, &items); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBarangs"), err)
		return nil, wrap(repository.ErrFailedToList, err)
	}
	return items, nil
}

// GetBarang fetches GET /barangs/{id}.
func (r *implRepository) GetBarang(ctx context.Context, id int64) (model.Barang, error) {
	var b model.Barang
	if err := r.client.Get(ctx, itemPath(id), &b); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetBarang"), err)
		return model.Barang{}, wrap(repository.ErrFailedToGet, err)
	}
	return b, nil
}

// CreateBarang sends POST /barangs {nama, kategori, harga}.
func (r *implRepository) CreateBarang(ctx context.Context, opt repository.SaveBarangOptions) (model.Barang, error) {
	var b model.Barang
	if err := r.client.Post(ctx, basePath, newSaveBody(opt), &b); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBarang"), err)
		return model.Barang{}, wrap(repository.ErrFailedToInsert, err)
	}
	return b, nil
}

// UpdateBarang sends PUT /barangs/{id} {nama, kategori, harga}.
func (r *implRepository) UpdateBarang(ctx context.Context, id int64, opt repository.SaveBarangOptions) (model.Barang, error) {
	var b model.Barang
	if err := r.client.Put(ctx, itemPath(id), newSaveBody(opt), &b); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBarang"), err)
		return model.Barang{}, wrap(repository.ErrFailedToUpdate, err)
	}
	return b, nil
}

// DeleteBarang sends DELETE /barangs/{id}.
func (r *implRepository) DeleteBarang(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, itemPath(id)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteBarang"), err)
		return wrap(repository.ErrFailedToDelete, err)
	}
	return nil
}
