package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/model"
	"backoffice-dashboard/internal/pelanggan"
	"backoffice-dashboard/internal/pelanggan/repository"
	"backoffice-dashboard/internal/pelanggan/usecase"
	"backoffice-dashboard/pkg/log"
)

type stubRepo struct {
	items   []model.Pelanggan
	err     error
	lists   int
	created []repository.SavePelangganOptions
	deleted []int64
}

func (s *stubRepo) ListPelanggans(ctx context.Context) ([]model.Pelanggan, error) {
	s.lists++
	return s.items, s.err
}

func (s *stubRepo) GetPelanggan(ctx context.Context, id int64) (model.Pelanggan, error) {
	if s.err != nil {
		return model.Pelanggan{}, s.err
	}
	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Pelanggan{}, repository.ErrNotFound
}

func (s *stubRepo) CreatePelanggan(ctx context.Context, opt repository.SavePelangganOptions) (model.Pelanggan, error) {
	s.created = append(s.created, opt)
	return model.Pelanggan{ID: 10, Nama: opt.Nama}, s.err
}

func (s *stubRepo) UpdatePelanggan(ctx context.Context, id int64, opt repository.SavePelangganOptions) (model.Pelanggan, error) {
	return model.Pelanggan{ID: id, Nama: opt.Nama}, s.err
}

func (s *stubRepo) DeletePelanggan(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func newUseCase(repo *stubRepo) pelanggan.UseCase {
	return usecase.New(repo, listview.NewCache[model.Pelanggan](4, time.Minute), log.NewNop())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty draft never reaches the API", func(t *testing.T) {
		repo := &stubRepo{}
		_, err := newUseCase(repo).Create(ctx, pelanggan.CreateInput{Draft: pelanggan.Draft{}})

		var vErr *form.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, 3, vErr.Errors.Len())
		assert.Empty(t, repo.created)
	})

	t.Run("sends nama domisili jenis kelamin", func(t *testing.T) {
		repo := &stubRepo{}
		d := pelanggan.NewDraft()
		d.Nama, d.Domisili = "Budi", model.DomisiliJakUt

		out, err := newUseCase(repo).Create(ctx, pelanggan.CreateInput{Draft: d})
		require.NoError(t, err)
		assert.Equal(t, int64(10), out.Pelanggan.ID)
		require.Len(t, repo.created, 1)
		assert.Equal(t, repository.SavePelangganOptions{
			Nama: "Budi", Domisili: model.DomisiliJakUt, JenisKelamin: model.JenisKelaminPria,
		}, repo.created[0])
	})

	t.Run("network failure", func(t *testing.T) {
		repo := &stubRepo{err: errors.New("boom")}
		d := pelanggan.Draft{Nama: "Budi", Domisili: model.DomisiliJakUt, JenisKelamin: model.JenisKelaminPria}
		_, err := newUseCase(repo).Create(ctx, pelanggan.CreateInput{Draft: d})
		assert.ErrorIs(t, err, pelanggan.ErrCreateFailed)
	})
}

func TestDetail(t *testing.T) {
	repo := &stubRepo{items: []model.Pelanggan{{ID: 2, Nama: "Siti"}}}
	uc := newUseCase(repo)

	out, err := uc.Detail(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Siti", out.Pelanggan.Nama)

	_, err = uc.Detail(context.Background(), 3)
	assert.ErrorIs(t, err, pelanggan.ErrPelangganNotFound)
}

func TestListAfterFailedDelete(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{items: []model.Pelanggan{{ID: 1, Nama: "Budi"}}}
	uc := newUseCase(repo)

	_, err := uc.List(ctx)
	require.NoError(t, err)

	repo.err = errors.New("boom")
	assert.ErrorIs(t, uc.Delete(ctx, 1), pelanggan.ErrDeleteFailed)

	repo.err = nil
	out, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lists)
	assert.Equal(t, []model.Pelanggan{{ID: 1, Nama: "Budi"}}, out.Items)
}
