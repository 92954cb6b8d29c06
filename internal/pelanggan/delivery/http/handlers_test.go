package http_test

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-dashboard/config"
	"backoffice-dashboard/internal/middleware"
	"backoffice-dashboard/internal/model"
	pelangganHTTP "backoffice-dashboard/internal/pelanggan/delivery/http"
	"backoffice-dashboard/internal/pelanggan/repository/rest"
	"backoffice-dashboard/internal/pelanggan/usecase"
	"backoffice-dashboard/pkg/log"
	"backoffice-dashboard/pkg/restapi"
	"backoffice-dashboard/web"
)

// backoffice is a minimal in-memory /pelanggans service.
type backoffice struct {
	mu       sync.Mutex
	items    []model.Pelanggan
	bodies   []map[string]any
	failPost bool
}

func (b *backoffice) handler() http.Handler {
	write := func(w http.ResponseWriter, code int, data any) {
		raw, _ := json.Marshal(data)
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(restapi.Envelope{StatusCode: code, Data: raw})
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /pelanggans", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		write(w, http.StatusOK, b.items)
	})
	mux.HandleFunc("POST /pelanggans", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		b.bodies = append(b.bodies, body)
		if b.failPost {
			write(w, http.StatusInternalServerError, nil)
			return
		}
		p := model.Pelanggan{
			ID:           int64(len(b.items) + 1),
			Nama:         body["nama"].(string),
			Domisili:     model.Domisili(body["domisili"].(string)),
			JenisKelamin: model.JenisKelamin(body["jenis_kelamin"].(string)),
		}
		b.items = append(b.items, p)
		write(w, http.StatusCreated, p)
	})
	mux.HandleFunc("GET /pelanggans/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, p := range b.items {
			if r.PathValue("id") == "1" && p.ID == 1 {
				write(w, http.StatusOK, p)
				return
			}
		}
		write(w, http.StatusNotFound, nil)
	})
	return mux
}

func newRouter(t *testing.T, b *backoffice) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := httptest.NewServer(b.handler())
	t.Cleanup(ts.Close)

	l := log.NewNop()
	uc := usecase.New(rest.New(restapi.NewClient(ts.URL, 0, l), l), nil, l)

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	pelangganHTTP.MapRoutes(r, pelangganHTTP.New(l, uc, 3*time.Second), middleware.New(l, config.RateLimitConfig{}))
	return r
}

func serve(r *gin.Engine, method, target string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form == nil {
		body = strings.NewReader("")
	} else {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateThenList(t *testing.T) {
	b := &backoffice{}
	r := newRouter(t, b)

	w := serve(r, http.MethodGet, "/kelola-pelanggan/tambah-pelanggan", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="PRIA" checked`)

	w = serve(r, http.MethodPost, "/kelola-pelanggan/tambah-pelanggan", url.Values{
		"nama": {"Budi"}, "domisili": {"JAK-UT"}, "jenis_kelamin": {"PRIA"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/kelola-pelanggan?success=1", w.Header().Get("Location"))

	require.Len(t, b.bodies, 1)
	assert.Equal(t, map[string]any{"nama": "Budi", "domisili": "JAK-UT", "jenis_kelamin": "PRIA"}, b.bodies[0])

	w = serve(r, http.MethodGet, "/kelola-pelanggan?success=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Pelanggan berhasil ditambahkan.")
	assert.Contains(t, body, `data-clean-url="/kelola-pelanggan"`)
	assert.Contains(t, body, "Budi")
	assert.Contains(t, body, "JAK-UT")
}

func TestCreateValidation(t *testing.T) {
	b := &backoffice{}
	r := newRouter(t, b)

	w := serve(r, http.MethodPost, "/kelola-pelanggan/tambah-pelanggan", url.Values{"jenis_kelamin": {"PRIA"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Nama wajib diisi")
	assert.Contains(t, w.Body.String(), "Domisili wajib dipilih")
	assert.Empty(t, b.bodies)
}

func TestCreateFailureKeepsDraft(t *testing.T) {
	b := &backoffice{failPost: true}
	r := newRouter(t, b)

	w := serve(r, http.MethodPost, "/kelola-pelanggan/tambah-pelanggan", url.Values{
		"nama": {"Siti"}, "domisili": {"JAK-SEL"}, "jenis_kelamin": {"WANITA"},
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Gagal menambahkan pelanggan")
	assert.Contains(t, body, `value="Siti"`)
	assert.Contains(t, body, `value="JAK-SEL" selected`)
	assert.Contains(t, body, `value="WANITA" checked`)
}

func TestEditForm(t *testing.T) {
	b := &backoffice{items: []model.Pelanggan{{ID: 1, Nama: "Budi", Domisili: model.DomisiliJakBar}}}
	r := newRouter(t, b)

	w := serve(r, http.MethodGet, "/kelola-pelanggan/ubah-pelanggan/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Budi"`)
	// missing gender falls back to the default
	assert.Contains(t, w.Body.String(), `value="PRIA" checked`)

	w = serve(r, http.MethodGet, "/kelola-pelanggan/ubah-pelanggan/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Gagal mengambil data pelanggan")
}

func TestEmptyList(t *testing.T) {
	r := newRouter(t, &backoffice{})

	w := serve(r, http.MethodGet, "/kelola-pelanggan", nil)
	assert.Contains(t, w.Body.String(), "Tidak ada data pelanggan.")
	assert.Contains(t, w.Body.String(), `colspan="5"`)
}
