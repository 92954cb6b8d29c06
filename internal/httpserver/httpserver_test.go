package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/config"
	"backoffice-dashboard/pkg/log"
	"backoffice-dashboard/pkg/response"
	"backoffice-dashboard/pkg/restapi"
)

func newBackoffice(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for _, path := range []string{"GET /barangs", "GET /pelanggans", "GET /penjualans"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(restapi.Envelope{StatusCode: http.StatusOK, Data: json.RawMessage("[]")})
		})
	}
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func newTestServer(t *testing.T, baseURL string, origins []string) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:       l,
		Port:         8080,
		Mode:         gin.TestMode,
		Environment:  "test",
		CORSOrigins:  origins,
		Client:       restapi.NewClient(baseURL, time.Second, l),
		Cache:        config.CacheConfig{Enabled: true, Size: 4, TTL: time.Minute},
		DismissAfter: 3 * time.Second,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(srv *HTTPServer, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestNewValidates(t *testing.T) {
	l := log.NewNop()
	cases := map[string]Config{
		"missing mode":   {Port: 8080, Client: restapi.NewClient("http://x", 0, l)},
		"missing port":   {Mode: gin.TestMode, Client: restapi.NewClient("http://x", 0, l)},
		"missing client": {Mode: gin.TestMode, Port: 8080},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := New(l, cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
	if _, err := New(nil, Config{Mode: gin.TestMode, Port: 8080, Client: restapi.NewClient("http://x", 0, l)}); err == nil {
		t.Error("expected an error without a logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, newBackoffice(t).URL, nil)

	for _, path := range []string{"/health", "/live", "/ready"} {
		w := get(srv, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: unmarshal: %v", path, err)
		}
		if resp.Message != response.MessageSuccess {
			t.Errorf("%s: unexpected message %q", path, resp.Message)
		}
	}
}

func TestReadyWithoutBackoffice(t *testing.T) {
	ts := newBackoffice(t)
	srv := newTestServer(t, ts.URL, nil)
	ts.Close()

	w := get(srv, "/ready", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if w := get(srv, "/live", nil); w.Code != http.StatusOK {
		t.Errorf("expected live to stay 200, got %d", w.Code)
	}
}

func TestDashboardRoutes(t *testing.T) {
	srv := newTestServer(t, newBackoffice(t).URL, nil)

	w := get(srv, "/", nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/kelola-barang" {
		t.Errorf("expected redirect to /kelola-barang, got %d %q", w.Code, w.Header().Get("Location"))
	}

	for _, path := range []string{"/kelola-barang", "/kelola-pelanggan", "/kelola-penjualan", "/kelola-penjualan/tambah-penjualan"} {
		if w := get(srv, path, nil); w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestRequestIDAndCORS(t *testing.T) {
	srv := newTestServer(t, newBackoffice(t).URL, []string{"https://admin.example.com"})

	w := get(srv, "/live", http.Header{
		"Origin":       {"https://admin.example.com"},
		"X-Request-Id": {"req-123"},
	})
	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("expected request id to be echoed, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example.com" {
		t.Errorf("unexpected allow origin %q", got)
	}

	w = get(srv, "/live", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id")
	}
}

func TestRenamedItemRefreshesOrderList(t *testing.T) {
	var (
		mu   sync.Mutex
		nama = "Pulpen"
	)
	writeData := func(w http.ResponseWriter, data any) {
		raw, _ := json.Marshal(data)
		json.NewEncoder(w).Encode(restapi.Envelope{StatusCode: http.StatusOK, Data: raw})
	}
	barang := func() map[string]any {
		mu.Lock()
		defer mu.Unlock()
		return map[string]any{"id": 11, "nama": nama, "kategori": "ATK", "harga": 5000}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /penjualans", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []map[string]any{{
			"id": 1, "tgl": "2024-05-01", "pelanggan_id": 3, "subtotal": "10000",
			"item_penjualans": []map[string]any{{"id": 1, "barang_id": 11, "barang": barang(), "qty": 2}},
		}})
	})
	mux.HandleFunc("GET /barangs/11", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, barang())
	})
	mux.HandleFunc("PUT /barangs/11", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Nama string `json:"nama"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		nama = body.Nama
		mu.Unlock()
		writeData(w, barang())
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	srv := newTestServer(t, ts.URL, nil)

	if body := get(srv, "/kelola-penjualan", nil).Body.String(); !strings.Contains(body, "Pulpen x 2") {
		t.Fatalf("expected the seeded item name, got %s", body)
	}

	form := url.Values{"nama": {"Pena"}, "kategori": {"ATK"}, "harga": {"Rp 5.000"}}
	req := httptest.NewRequest(http.MethodPost, "/kelola-barang/ubah-barang/11", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after the rename, got %d", w.Code)
	}

	body := get(srv, "/kelola-penjualan", nil).Body.String()
	if !strings.Contains(body, "Pena x 2") || strings.Contains(body, "Pulpen") {
		t.Errorf("expected the order list to show the renamed item, got %s", body)
	}
}
