package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Lucas-Aron/Retail/internal/dto"
	"github.com/Lucas-Aron/Retail/internal/models"
)

func newTable(out io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

func renderProducts(out io.Writer, products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(out, "Tidak ada data produk.")
		return
	}
	t := newTable(out, table.Row{"ID", "Merek", "Model", "Tipe", "Warna", "Ukuran", "Stok", "Harga Beli", "Harga Jual", "Kode Supplier"})
	for _, p := range products {
		t.AppendRow(table.Row{p.ID, p.Brand, p.Model, p.Type, p.Color, p.Size, p.Stock,
			fmt.Sprintf("%.2f", p.BuyPrice), fmt.Sprintf("%.2f", p.SellPrice), p.SupplierCode})
	}
	t.Render()
}

func renderSuppliers(out io.Writer, suppliers []models.Supplier) {
	if len(suppliers) == 0 {
		fmt.Fprintln(out, "Tidak ada data supplier.")
		return
	}
	t := newTable(out, table.Row{"ID", "Nama", "Alamat", "Email", "Telepon"})
	for _, s := range suppliers {
		t.AppendRow(table.Row{s.ID, s.Name, s.Address, s.Email, s.Phone})
	}
	t.Render()
}

func renderChoices(out io.Writer, choices []dto.SupplierChoice) {
	if len(choices) == 0 {
		fmt.Fprintln(out, "Belum ada supplier.")
		return
	}
	t := newTable(out, table.Row{"Kode Supplier", "Supplier"})
	for _, c := range choices {
		t.AppendRow(table.Row{c.ID, c.Label()})
	}
	t.Render()
}

func renderAccess(out io.Writer, entries []models.EmployeeAccess) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "Tidak ada data akses karyawan.")
		return
	}
	t := newTable(out, table.Row{"ID", "Nama Karyawan", "Waktu Akses"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.ID, e.Employee, e.AccessedAt.Local().Format("2006-01-02 15:04:05")})
	}
	t.Render()
}
