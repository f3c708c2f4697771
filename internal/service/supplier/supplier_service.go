package supplier

import (
	"context"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Lucas-Aron/Retail/internal/dto"
	"github.com/Lucas-Aron/Retail/internal/ident"
	"github.com/Lucas-Aron/Retail/internal/models"
	"github.com/Lucas-Aron/Retail/internal/store"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierDto) (models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
	Exists(ctx context.Context, id string) (bool, error)
	// Choices lists (id, name) pairs for the product form's supplier selector.
	Choices(ctx context.Context) ([]dto.SupplierChoice, error)
}

type supplierService struct {
	store *store.Store
	ids   *ident.Allocator
}

func NewSupplierService(st *store.Store, ids *ident.Allocator) SupplierService {
	return &supplierService{store: st, ids: ids}
}

func (s supplierService) Create(ctx context.Context, req dto.CreateSupplierDto) (models.Supplier, error) {
	req = req.Trim()
	if err := validate(req); err != nil {
		return models.Supplier{}, err
	}

	supplier := models.Supplier{
		ID:      s.ids.Next(ident.PrefixSupplier),
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	}

	err := s.store.Do(ctx, func(tx *gorm.DB) error {
		return tx.Create(&supplier).Error
	})
	if err != nil {
		return models.Supplier{}, err
	}

	log.Printf("supplier %s created", supplier.ID)
	return supplier, nil
}

func (s supplierService) List(ctx context.Context) ([]models.Supplier, error) {
	suppliers := make([]models.Supplier, 0)
	err := s.store.Do(ctx, func(tx *gorm.DB) error {
		return tx.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "SupplierID"}}).
			Find(&suppliers).Error
	})
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (s supplierService) Exists(ctx context.Context, id string) (bool, error) {
	var total int64
	err := s.store.Do(ctx, func(tx *gorm.DB) error {
		return tx.Model(&models.Supplier{}).
			Where(clause.Eq{Column: clause.Column{Name: "SupplierID"}, Value: id}).
			Count(&total).Error
	})
	if err != nil {
		return false, err
	}
	return total > 0, nil
}

func (s supplierService) Choices(ctx context.Context) ([]dto.SupplierChoice, error) {
	var suppliers []models.Supplier
	err := s.store.Do(ctx, func(tx *gorm.DB) error {
		return tx.
			Select("SupplierID", "NamaSupplier").
			Order(clause.OrderByColumn{Column: clause.Column{Name: "NamaSupplier"}}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "SupplierID"}}).
			Find(&suppliers).Error
	})
	if err != nil {
		return nil, err
	}

	choices := make([]dto.SupplierChoice, 0, len(suppliers))
	for _, sup := range suppliers {
		choices = append(choices, dto.SupplierChoice{ID: sup.ID, Name: sup.Name})
	}
	return choices, nil
}

func validate(req dto.CreateSupplierDto) error {
	required := []struct {
		column string
		value  string
	}{
		{"NamaSupplier", req.Name},
		{"Alamat", req.Address},
		{"Email", req.Email},
		{"Telepon", req.Phone},
	}
	for _, f := range required {
		if f.value == "" {
			return store.MissingField("Supplier", f.column)
		}
	}
	return nil
}
