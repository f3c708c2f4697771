package handlers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Lucas-Aron/Retail/internal/dto"
	"github.com/Lucas-Aron/Retail/internal/models"
	"github.com/Lucas-Aron/Retail/internal/service/access"
	"github.com/Lucas-Aron/Retail/internal/service/product"
	"github.com/Lucas-Aron/Retail/internal/service/supplier"
	"github.com/Lucas-Aron/Retail/internal/store"
	"github.com/Lucas-Aron/Retail/internal/utils"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const accessTimeLayout = "2006-01-02T15:04"

var pageNames = []string{
	"product_form", "product_list",
	"supplier_form", "supplier_list",
	"access_form", "access_list",
	"closed",
}

type pageData struct {
	Title   string
	Active  string
	Success string
	Warning string
	Form    map[string]string

	Choices   []dto.SupplierChoice
	Products  []models.Product
	Suppliers []models.Supplier
	Entries   []models.EmployeeAccess
}

// PageHandler renders the operator forms and list views.
type PageHandler struct {
	store     *store.Store
	products  product.ProductService
	suppliers supplier.SupplierService
	access    access.AccessService
	pages     map[string]*template.Template
}

func NewPageHandler(st *store.Store, products product.ProductService, suppliers supplier.SupplierService, accessSvc access.AccessService) *PageHandler {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name+".gohtml"))
	}
	return &PageHandler{store: st, products: products, suppliers: suppliers, access: accessSvc, pages: pages}
}

func (h *PageHandler) render(w http.ResponseWriter, status int, page string, data pageData) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("render %s: %v", page, err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *PageHandler) ProductForm(w http.ResponseWriter, r *http.Request) {
	h.renderProductForm(w, r, http.StatusOK, pageData{})
}

func (h *PageHandler) renderProductForm(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	ctx, cancel := requestContext(r)
	defer cancel()

	data.Title = "Tambah Produk Baru"
	data.Active = "product-new"

	choices, err := h.suppliers.Choices(ctx)
	if err != nil {
		if data.Warning == "" {
			data.Warning = messageFor(err)
		}
		if status < http.StatusBadRequest {
			status = statusFor(err)
		}
	}
	data.Choices = choices
	h.render(w, status, "product_form", data)
}

func (h *PageHandler) ProductCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderProductForm(w, r, http.StatusBadRequest, pageData{Warning: "Form tidak valid."})
		return
	}
	form := formValues(r, "merek", "model", "tipe", "warna", "ukuran", "stok", "harga_beli", "harga_jual", "kode_supplier")

	req, err := productFromForm(form)
	if err != nil {
		h.renderProductForm(w, r, http.StatusBadRequest, pageData{Warning: err.Error(), Form: form})
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	created, err := h.products.Create(ctx, req)
	if err != nil {
		h.renderProductForm(w, r, statusFor(err), pageData{Warning: messageFor(err), Form: form})
		return
	}
	h.renderProductForm(w, r, http.StatusOK, pageData{Success: fmt.Sprintf("Produk berhasil ditambahkan! (%s)", created.ID)})
}

func (h *PageHandler) ProductList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	data := pageData{Title: "Daftar Produk", Active: "product-list"}
	list, err := h.products.List(ctx)
	if err != nil {
		data.Warning = messageFor(err)
		h.render(w, statusFor(err), "product_list", data)
		return
	}
	data.Products = list
	h.render(w, http.StatusOK, "product_list", data)
}

func (h *PageHandler) SupplierForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "supplier_form", pageData{Title: "Tambah Supplier Baru", Active: "supplier-new"})
}

func (h *PageHandler) SupplierCreate(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Tambah Supplier Baru", Active: "supplier-new"}
	if err := r.ParseForm(); err != nil {
		data.Warning = "Form tidak valid."
		h.render(w, http.StatusBadRequest, "supplier_form", data)
		return
	}
	form := formValues(r, "nama", "alamat", "email", "telepon")

	ctx, cancel := requestContext(r)
	defer cancel()

	created, err := h.suppliers.Create(ctx, dto.CreateSupplierDto{
		Name:    form["nama"],
		Address: form["alamat"],
		Email:   form["email"],
		Phone:   form["telepon"],
	})
	if err != nil {
		data.Warning = messageFor(err)
		data.Form = form
		h.render(w, statusFor(err), "supplier_form", data)
		return
	}
	data.Success = fmt.Sprintf("Supplier berhasil ditambahkan! (%s)", created.ID)
	h.render(w, http.StatusOK, "supplier_form", data)
}

func (h *PageHandler) SupplierList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	data := pageData{Title: "Daftar Supplier", Active: "supplier-list"}
	list, err := h.suppliers.List(ctx)
	if err != nil {
		data.Warning = messageFor(err)
		h.render(w, statusFor(err), "supplier_list", data)
		return
	}
	data.Suppliers = list
	h.render(w, http.StatusOK, "supplier_list", data)
}

func (h *PageHandler) AccessForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "access_form", pageData{Title: "Catat Akses Karyawan", Active: "access-new"})
}

func (h *PageHandler) AccessCreate(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Catat Akses Karyawan", Active: "access-new"}
	if err := r.ParseForm(); err != nil {
		data.Warning = "Form tidak valid."
		h.render(w, http.StatusBadRequest, "access_form", data)
		return
	}
	form := formValues(r, "nama_karyawan", "waktu_akses")

	req := dto.LogAccessDto{Employee: form["nama_karyawan"]}
	if form["waktu_akses"] != "" {
		at, err := time.ParseInLocation(accessTimeLayout, form["waktu_akses"], time.Local)
		if err != nil {
			data.Warning = "Waktu akses tidak valid."
			data.Form = form
			h.render(w, http.StatusBadRequest, "access_form", data)
			return
		}
		req.AccessedAt = &at
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	entry, err := h.access.Log(ctx, req)
	if err != nil {
		data.Warning = messageFor(err)
		data.Form = form
		h.render(w, statusFor(err), "access_form", data)
		return
	}
	data.Success = fmt.Sprintf("Akses %s tercatat (%s)", entry.Employee, entry.ID)
	h.render(w, http.StatusOK, "access_form", data)
}

func (h *PageHandler) AccessList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	data := pageData{Title: "Log Akses Karyawan", Active: "access-list"}
	list, err := h.access.List(ctx)
	if err != nil {
		data.Warning = messageFor(err)
		h.render(w, statusFor(err), "access_list", data)
		return
	}
	data.Entries = list
	h.render(w, http.StatusOK, "access_list", data)
}

// Close is the operator's "close application" action. It releases the
// database handle; every later page reports the store as unavailable.
func (h *PageHandler) Close(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Aplikasi Ditutup"}
	if err := h.store.Close(); err != nil {
		log.Printf("close store: %v", err)
		data.Warning = "Gagal menutup koneksi database."
		h.render(w, http.StatusInternalServerError, "closed", data)
		return
	}
	log.Println("store closed by operator")
	data.Success = "Koneksi database ditutup."
	h.render(w, http.StatusOK, "closed", data)
}

func formValues(r *http.Request, keys ...string) map[string]string {
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		values[k] = strings.TrimSpace(r.PostFormValue(k))
	}
	return values
}

func productFromForm(form map[string]string) (dto.CreateProductDto, error) {
	stock, err := utils.IntOrZero(form["stok"])
	if err != nil {
		return dto.CreateProductDto{}, errors.New("Stok harus bilangan bulat.")
	}
	buy, err := utils.FloatOrZero(form["harga_beli"])
	if err != nil {
		return dto.CreateProductDto{}, errors.New("Harga beli harus berupa angka.")
	}
	sell, err := utils.FloatOrZero(form["harga_jual"])
	if err != nil {
		return dto.CreateProductDto{}, errors.New("Harga jual harus berupa angka.")
	}

	return dto.CreateProductDto{
		Brand:        form["merek"],
		Model:        form["model"],
		Type:         form["tipe"],
		Color:        form["warna"],
		Size:         form["ukuran"],
		Stock:        stock,
		BuyPrice:     buy,
		SellPrice:    sell,
		SupplierCode: form["kode_supplier"],
	}, nil
}
