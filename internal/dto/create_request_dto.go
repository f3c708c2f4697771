package dto

import (
	"fmt"
	"strings"
	"time"
)

type CreateProductDto struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Type         string  `json:"type"`
	Color        string  `json:"color"`
	Size         string  `json:"size"`
	Stock        int     `json:"stock"`
	BuyPrice     float64 `json:"buy_price"`
	SellPrice    float64 `json:"sell_price"`
	SupplierCode string  `json:"supplier_id"`
}

type CreateSupplierDto struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// LogAccessDto records one access. A nil AccessedAt means "now".
type LogAccessDto struct {
	Employee   string     `json:"employee"`
	AccessedAt *time.Time `json:"accessed_at,omitempty"`
}

// SupplierChoice feeds the supplier selector of the product form.
type SupplierChoice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Label keeps suppliers sharing a name distinguishable.
func (c SupplierChoice) Label() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}

// Trim strips surrounding whitespace from every text field.
func (d CreateProductDto) Trim() CreateProductDto {
	d.Brand = strings.TrimSpace(d.Brand)
	d.Model = strings.TrimSpace(d.Model)
	d.Type = strings.TrimSpace(d.Type)
	d.Color = strings.TrimSpace(d.Color)
	d.Size = strings.TrimSpace(d.Size)
	d.SupplierCode = strings.TrimSpace(d.SupplierCode)
	return d
}

func (d CreateSupplierDto) Trim() CreateSupplierDto {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	return d
}
