package product

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Lucas-Aron/Retail/internal/dto"
	"github.com/Lucas-Aron/Retail/internal/ident"
	"github.com/Lucas-Aron/Retail/internal/models"
	"github.com/Lucas-Aron/Retail/internal/service/supplier"
	"github.com/Lucas-Aron/Retail/internal/store"
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductDto) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
}

type productService struct {
	store     *store.Store
	ids       *ident.Allocator
	suppliers supplier.SupplierService
}

func NewProductService(st *store.Store, ids *ident.Allocator, suppliers supplier.SupplierService) ProductService {
	return &productService{store: st, ids: ids, suppliers: suppliers}
}

// Create inserts a product after checking that KodeSupplier names an
// existing supplier; the column itself carries no foreign key.
func (s productService) Create(ctx context.Context, req dto.CreateProductDto) (models.Product, error) {
	req = req.Trim()
	if err := validate(req); err != nil {
		return models.Product{}, err
	}

	ok, err := s.suppliers.Exists(ctx, req.SupplierCode)
	if err != nil {
		return models.Product{}, err
	}
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", store.ErrUnknownSupplier, req.SupplierCode)
	}

	product := models.Product{
		ID:           s.ids.Next(ident.PrefixProduct),
		Brand:        req.Brand,
		Model:        req.Model,
		Type:         req.Type,
		Color:        req.Color,
		Size:         req.Size,
		Stock:        req.Stock,
		BuyPrice:     req.BuyPrice,
		SellPrice:    req.SellPrice,
		SupplierCode: req.SupplierCode,
	}

	err = s.store.Do(ctx, func(tx *gorm.DB) error {
		return tx.Create(&product).Error
	})
	if err != nil {
		return models.Product{}, err
	}

	log.Printf("product %s created (supplier %s)", product.ID, product.SupplierCode)
	return product, nil
}

// List returns every product. Ids are timestamp-derived, so sorting by id
// follows creation order.
func (s productService) List(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := s.store.Do(ctx, func(tx *gorm.DB) error {
		return tx.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "ProductID"}}).
			Find(&products).Error
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func validate(req dto.CreateProductDto) error {
	switch {
	case req.Brand == "":
		return store.MissingField("Product", "Merek")
	case req.Model == "":
		return store.MissingField("Product", "Model")
	case req.Type == "":
		return store.MissingField("Product", "Type")
	case req.SupplierCode == "":
		return store.MissingField("Product", "KodeSupplier")
	case req.Stock < 0:
		return store.Negative("Product", "Stok")
	case req.BuyPrice < 0:
		return store.Negative("Product", "HargaBeli")
	case req.SellPrice < 0:
		return store.Negative("Product", "HargaJual")
	}
	return nil
}
