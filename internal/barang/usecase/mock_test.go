package usecase

import (
	"context"

	"backoffice-dashboard/internal/barang/repository"
	"backoffice-dashboard/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository recording every call
type mockRepo struct {
	items []model.Barang
	err   error

	listCalls   int
	created     []repository.SaveBarangOptions
	updated     []repository.SaveBarangOptions
	deletedIDs  []int64
	requestedID int64
}

func (m *mockRepo) ListBarangs(ctx context.Context) ([]model.Barang, error) {
	m.listCalls++
	return m.items, m.err
}

func (m *mockRepo) GetBarang(ctx context.Context, id int64) (model.Barang, error) {
	m.requestedID = id
	if m.err != nil {
		return model.Barang{}, m.err
	}
	for _, b := range m.items {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Barang{}, repository.ErrNotFound
}

func (m *mockRepo) CreateBarang(ctx context.Context, opt repository.SaveBarangOptions) (model.Barang, error) {
	m.created = append(m.created, opt)
	if m.err != nil {
		return model.Barang{}, m.err
	}
	return model.Barang{ID: 99, Nama: opt.Nama, Kategori: opt.Kategori, Harga: *opt.Harga}, nil
}

func (m *mockRepo) UpdateBarang(ctx context.Context, id int64, opt repository.SaveBarangOptions) (model.Barang, error) {
	m.updated = append(m.updated, opt)
	if m.err != nil {
		return model.Barang{}, m.err
	}
	return model.Barang{ID: id, Nama: opt.Nama, Kategori: opt.Kategori, Harga: *opt.Harga}, nil
}

func (m *mockRepo) DeleteBarang(ctx context.Context, id int64) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.err
}
