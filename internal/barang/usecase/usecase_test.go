package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice-dashboard/internal/barang"
	"backoffice-dashboard/internal/form"
	"backoffice-dashboard/internal/listview"
	"backoffice-dashboard/internal/model"
)

func newTestUseCase(repo *mockRepo) barang.UseCase {
	return New(repo, listview.NewCache[model.Barang](4, time.Minute), &mockLogger{})
}

func TestList_UsesCacheUntilMutation(t *testing.T) {
	repo := &mockRepo{items: []model.Barang{{ID: 1, Nama: "Pulpen"}}}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		out, err := uc.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(out.Items))
		}
	}
	if repo.listCalls != 1 {
		t.Errorf("expected 1 fetch, got %d", repo.listCalls)
	}

	if err := uc.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.List(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listCalls != 2 {
		t.Errorf("expected refetch after delete, got %d fetches", repo.listCalls)
	}
}

func TestList_Failure(t *testing.T) {
	repo := &mockRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo)

	if _, err := uc.List(context.Background()); !errors.Is(err, barang.ErrListFailed) {
		t.Fatalf("expected ErrListFailed, got %v", err)
	}
}

func TestCreate_ValidationBlocksNetwork(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Create(context.Background(), barang.CreateInput{Draft: barang.Draft{Nama: "  "}})
	var vErr *form.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, f := range []form.Field{form.FieldNama, form.FieldKategori, form.FieldHarga} {
		if vErr.Errors.Header(f) == "" {
			t.Errorf("expected error for %s", f)
		}
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no request, got %d", len(repo.created))
	}
}

func TestCreate_SendsNumericHarga(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	d := barang.Draft{Nama: "Pulpen", Kategori: model.KategoriATK}
	d.SetHargaInput("Rp 5.000")

	out, err := uc.Create(context.Background(), barang.CreateInput{Draft: d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Barang.Harga != 5000 {
		t.Errorf("expected harga 5000, got %d", out.Barang.Harga)
	}
	if len(repo.created) != 1 || *repo.created[0].Harga != 5000 {
		t.Errorf("unexpected payload: %+v", repo.created)
	}
}

func TestCreate_Failure(t *testing.T) {
	repo := &mockRepo{err: errors.New("boom")}
	uc := newTestUseCase(repo)

	d := barang.Draft{Nama: "Pulpen", Kategori: model.KategoriATK, HargaDigits: "5000"}
	if _, err := uc.Create(context.Background(), barang.CreateInput{Draft: d}); !errors.Is(err, barang.ErrCreateFailed) {
		t.Fatalf("expected ErrCreateFailed, got %v", err)
	}
}

func TestDetail(t *testing.T) {
	repo := &mockRepo{items: []model.Barang{{ID: 4, Nama: "Wajan", Kategori: model.KategoriMasak, Harga: 75000}}}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	out, err := uc.Detail(ctx, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Barang.Nama != "Wajan" {
		t.Errorf("unexpected barang: %+v", out.Barang)
	}

	if _, err := uc.Detail(ctx, 5); !errors.Is(err, barang.ErrBarangNotFound) {
		t.Errorf("expected ErrBarangNotFound, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	d := barang.DraftFromBarang(model.Barang{ID: 4, Nama: "Wajan", Kategori: model.KategoriMasak, Harga: 75000})
	d.Nama = "Wajan Besar"

	out, err := uc.Update(context.Background(), barang.UpdateInput{ID: 4, Draft: d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Barang.ID != 4 || out.Barang.Nama != "Wajan Besar" || out.Barang.Harga != 75000 {
		t.Errorf("unexpected barang: %+v", out.Barang)
	}
}

func TestDelete_FailureStillInvalidates(t *testing.T) {
	repo := &mockRepo{items: []model.Barang{{ID: 1}}}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	if _, err := uc.List(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.err = errors.New("boom")
	if err := uc.Delete(ctx, 1); !errors.Is(err, barang.ErrDeleteFailed) {
		t.Fatalf("expected ErrDeleteFailed, got %v", err)
	}

	repo.err = nil
	if _, err := uc.List(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listCalls != 2 {
		t.Errorf("expected refetch after failed delete, got %d fetches", repo.listCalls)
	}
}
