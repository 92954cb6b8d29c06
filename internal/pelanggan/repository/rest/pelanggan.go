package rest

import (
	"context"

	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/pelanggan/repository"
)

type saveBody struct {
	Nama         string             `json:"nama"`
	Domisili     model.Domisili     `json:"domisili"`
	JenisKelamin model.JenisKelamin `json:"jenis_kelamin"`
}

func (r *implRepository) ListPelanggans(ctx context.Context) ([]model.Pelanggan, error) {
	var items []model.Pelanggan
	if err := r.client.Get(ctx, basePath, &items); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPelanggans"), err)
		return nil, wrap(repository.ErrFailedToList, err)
	}
	return items, nil
}

func (r *implRepository) GetPelanggan(ctx context.Context, id int64) (model.Pelanggan, error) {
	var p model.Pelanggan
	if err := r.client.Get(ctx, itemPath(id), &p); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPelanggan"), err)
		return model.Pelanggan{}, wrap(repository.ErrFailedToGet, err)
	}
	return p, nil
}

func (r *implRepository) CreatePelanggan(ctx context.Context, opt repository.SavePelangganOptions) (model.Pelanggan, error) {
	var p model.Pelanggan
	body := saveBody{Nama: opt.Nama, Domisili: opt.Domisili, JenisKelamin: opt.JenisKelamin}
	if err := r.client.Post(ctx, basePath, body, &p); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePelanggan"), err)
		return model.Pelanggan{}, wrap(repository.ErrFailedToInsert, err)
	}
	return p, nil
}

func (r *implRepository) UpdatePelanggan(ctx context.Context, id int64, opt repository.SavePelangganOptions) (model.Pelanggan, error) {
	var p model.Pelanggan
	body := saveBody{Nama: opt.Nama, Domisili: opt.Domisili, JenisKelamin: opt.JenisKelamin}
	if err := r.client.Put(ctx, itemPath(id), body, &p); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePelanggan"), err)
		return model.Pelanggan{}, wrap(repository.ErrFailedToUpdate, err)
	}
	return p, nil
}

func (r *implRepository) DeletePelanggan(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, itemPath(id)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeletePelanggan"), err)
		return wrap(repository.ErrFailedToDelete, err)
	}
	return nil
}
