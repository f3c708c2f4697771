package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucas-Aron/Retail/internal/dto"
	"github.com/Lucas-Aron/Retail/internal/models"
	"github.com/Lucas-Aron/Retail/internal/pkg/clock"
	"github.com/Lucas-Aron/Retail/internal/service/access"
	"github.com/Lucas-Aron/Retail/internal/service/product"
	"github.com/Lucas-Aron/Retail/internal/service/supplier"
	"github.com/Lucas-Aron/Retail/internal/store"
	"github.com/Lucas-Aron/Retail/internal/testutil"
)

type server struct {
	handler http.Handler
	store   *store.Store
	clock   *clock.MockClock
}

func newServer(t *testing.T) server {
	t.Helper()
	ids, clk := testutil.NewAllocator()
	st := testutil.NewStore(t)
	suppliers := supplier.NewSupplierService(st, ids)
	return server{
		handler: NewRouter(Services{
			Store:     st,
			Products:  product.NewProductService(st, ids, suppliers),
			Suppliers: suppliers,
			Access:    access.NewAccessService(st, ids),
		}),
		store: st,
		clock: clk,
	}
}

func (s server) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	s.clock.Advance(time.Second)
	return rec
}

func (s server) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s server) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func (s server) postJSON(path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func supplierForm() url.Values {
	return url.Values{
		"nama":    {"Acme"},
		"alamat":  {"1 Main St"},
		"email":   {"a@acme.com"},
		"telepon": {"555-0100"},
	}
}

func TestPages_RootRedirects(t *testing.T) {
	s := newServer(t)
	rec := s.get("/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products/new", rec.Header().Get("Location"))
}

func TestPages_ProductFormWithoutSuppliers(t *testing.T) {
	s := newServer(t)

	rec := s.get("/products/new")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Belum ada supplier")
	assert.Contains(t, body, "disabled")
}

func TestPages_SupplierThenProduct(t *testing.T) {
	s := newServer(t)

	rec := s.postForm("/suppliers", supplierForm())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Supplier berhasil ditambahkan! (SUP-20240517093000)")

	rec = s.get("/products/new")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme (SUP-20240517093000)")
	assert.NotContains(t, rec.Body.String(), "Belum ada supplier")

	rec = s.postForm("/products", url.Values{
		"merek": {"X"}, "model": {"Y"}, "tipe": {"Z"}, "warna": {"Red"}, "ukuran": {"M"},
		"stok": {"10"}, "harga_beli": {"5.0"}, "harga_jual": {"9.99"},
		"kode_supplier": {"SUP-20240517093000"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Produk berhasil ditambahkan!")

	rec = s.get("/products")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "9.99")
	assert.Contains(t, body, "SUP-20240517093000")
	assert.NotContains(t, body, "Tidak ada data produk")
}

func TestPages_ProductUnknownSupplierWarns(t *testing.T) {
	s := newServer(t)

	rec := s.postForm("/products", url.Values{
		"merek": {"X"}, "model": {"Y"}, "tipe": {"Z"}, "stok": {"1"},
		"kode_supplier": {"SUP-19990101000000"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown supplier")
	assert.Contains(t, rec.Body.String(), `value="X"`)
}

func TestPages_ProductBadNumber(t *testing.T) {
	s := newServer(t)

	rec := s.postForm("/products", url.Values{"merek": {"X"}, "stok": {"sepuluh"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Stok harus bilangan bulat")
}

func TestPages_EmptyLists(t *testing.T) {
	s := newServer(t)

	assert.Contains(t, s.get("/products").Body.String(), "Tidak ada data produk.")
	assert.Contains(t, s.get("/suppliers").Body.String(), "Tidak ada data supplier.")
	assert.Contains(t, s.get("/access").Body.String(), "Tidak ada data akses karyawan.")
}

func TestPages_SupplierMissingField(t *testing.T) {
	s := newServer(t)

	form := supplierForm()
	form.Set("telepon", "")
	rec := s.postForm("/suppliers", form)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Supplier.Telepon is required")
}

func TestPages_AccessLog(t *testing.T) {
	s := newServer(t)

	rec := s.postForm("/access", url.Values{"nama_karyawan": {"Budi"}, "waktu_akses": {"2024-05-17T08:00"}})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.postForm("/access", url.Values{"nama_karyawan": {"Sari"}})
	require.Equal(t, http.StatusOK, rec.Code)

	body := s.get("/access").Body.String()
	assert.Less(t, strings.Index(body, "Sari"), strings.Index(body, "Budi"))

	rec = s.postForm("/access", url.Values{"nama_karyawan": {"Andi"}, "waktu_akses": {"kemarin"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPages_CloseThenUnavailable(t *testing.T) {
	s := newServer(t)

	rec := s.postForm("/close", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Koneksi database ditutup.")
	assert.True(t, s.store.Closed())

	rec = s.get("/products")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Koneksi database sudah ditutup.")

	rec = s.postForm("/suppliers", supplierForm())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = s.get(HealthPath)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAPI_Flow(t *testing.T) {
	s := newServer(t)

	rec := s.get(HealthPath)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.postJSON(SuppliersPath, dto.CreateSupplierDto{Name: "Acme", Address: "1 Main St", Email: "a@acme.com", Phone: "555-0100"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var sup models.Supplier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sup))
	assert.Regexp(t, `^SUP-\d{14}$`, sup.ID)

	rec = s.get(SuppliersPath + "/choices")
	require.Equal(t, http.StatusOK, rec.Code)
	var choices []dto.SupplierChoice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &choices))
	assert.Equal(t, []dto.SupplierChoice{{ID: sup.ID, Name: "Acme"}}, choices)

	rec = s.postJSON(ProductsPath, dto.CreateProductDto{
		Brand: "X", Model: "Y", Type: "Z", Color: "Red", Size: "M",
		Stock: 10, BuyPrice: 5.0, SellPrice: 9.99, SupplierCode: sup.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.get(ProductsPath)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, sup.ID, products[0].SupplierCode)
	assert.Regexp(t, `^PROD-\d{14}$`, products[0].ID)

	rec = s.postJSON(AccessPath, dto.LogAccessDto{Employee: "Budi"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = s.get(AccessPath)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.EmployeeAccess
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
}

func TestAPI_ErrorStatuses(t *testing.T) {
	s := newServer(t)

	req := httptest.NewRequest(http.MethodPost, ProductsPath, strings.NewReader("{"))
	assert.Equal(t, http.StatusBadRequest, s.do(req).Code)

	rec := s.postJSON(ProductsPath, dto.CreateProductDto{Brand: "X", Model: "Y", Type: "Z", SupplierCode: "SUP-1"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := dto.CreateSupplierDto{Name: "Acme", Address: "a", Email: "e", Phone: "p"}
	s.postJSON(SuppliersPath, body)
	s.clock.Advance(-time.Second)
	rec = s.postJSON(SuppliersPath, body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.NoError(t, s.store.Close())
	assert.Equal(t, http.StatusServiceUnavailable, s.get(AccessPath).Code)
}
