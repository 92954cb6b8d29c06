package rest_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-dashboard/internal/penjualan/repository"
	"backoffice-dashboard/internal/penjualan/repository/rest"
	"backoffice-dashboard/pkg/log"
	"backoffice-dashboard/pkg/restapi"
)

const listJSON = `{"statusCode":200,"status":"OK","message":"ok","data":[
  {"id":7,"tgl":"2026-10-01","pelanggan":{"id":3,"nama":"Budi"},"subtotal":"15000.00",
   "item_penjualans":[{"id":1,"barang":{"id":11,"nama":"Pulpen"},"qty":3}]},
  {"id":8,"tgl":"2026-10-02","pelanggan_id":4,"subtotal":2500,
   "item_penjualans":[{"id":2,"barang_id":12,"qty":1}]}
]}`

func TestPenjualanRepository(t *testing.T) {
	var lastMethod, lastPath string
	var lastBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastMethod, lastPath = r.Method, r.URL.Path
		lastBody, _ = io.ReadAll(r.Body)
		switch {
		case r.URL.Path == "/penjualans" && r.Method == http.MethodGet:
			io.WriteString(w, listJSON)
		case r.URL.Path == "/penjualans/404":
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"statusCode":404,"message":"Penjualan tidak ditemukan","data":null}`)
		case r.URL.Path == "/penjualans" && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusUnprocessableEntity)
			io.WriteString(w, `{"statusCode":422,"message":"stok tidak cukup","data":null}`)
		default:
			io.WriteString(w, `{"statusCode":200,"message":"ok","data":{"id":7,"tgl":"2026-10-01","pelanggan_id":3}}`)
		}
	}))
	defer ts.Close()

	repo := rest.New(restapi.NewClient(ts.URL, 0, log.NewNop()), log.NewNop())
	ctx := context.Background()

	t.Run("list decodes nested references and subtotal", func(t *testing.T) {
		items, err := repo.ListPenjualans(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "NOTA_7", items[0].NoNota())
		assert.Equal(t, int64(3), items[0].CustomerID())
		assert.Equal(t, "Budi", items[0].CustomerName())
		assert.Equal(t, "15000", items[0].Subtotal.String())
		assert.Equal(t, int64(11), items[0].Items[0].ItemID())
		assert.Equal(t, "Pulpen", items[0].Items[0].ItemName())

		assert.Equal(t, int64(4), items[1].CustomerID())
		assert.Equal(t, "2500", items[1].Subtotal.String())
		assert.Equal(t, int64(12), items[1].Items[0].ItemID())
	})

	t.Run("update sends tgl pelanggan_id items", func(t *testing.T) {
		_, err := repo.UpdatePenjualan(ctx, 7, repository.SavePenjualanOptions{
			Tgl: "2026-10-01", PelangganID: 3,
			Items: []repository.SaveItemOptions{{BarangID: 11, Qty: 5}},
		})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, lastMethod)
		assert.Equal(t, "/penjualans/7", lastPath)
		assert.JSONEq(t, `{"tgl":"2026-10-01","pelanggan_id":3,"items":[{"barang_id":11,"qty":5}]}`, string(lastBody))
	})

	t.Run("create failure keeps server payload", func(t *testing.T) {
		_, err := repo.CreatePenjualan(ctx, repository.SavePenjualanOptions{Tgl: "2026-10-01", PelangganID: 3})
		require.ErrorIs(t, err, repository.ErrFailedToInsert)
		var apiErr *restapi.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "stok tidak cukup", apiErr.Message)
		assert.JSONEq(t, `{"tgl":"2026-10-01","pelanggan_id":3,"items":[]}`, string(lastBody))
	})

	t.Run("get not found", func(t *testing.T) {
		_, err := repo.GetPenjualan(ctx, 404)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeletePenjualan(ctx, 7))
		assert.Equal(t, http.MethodDelete, lastMethod)
	})
}
