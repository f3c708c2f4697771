package access

import (
	"context"
	"log"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Lucas-Aron/Retail/internal/dto"
	"github.com/Lucas-Aron/Retail/internal/ident"
	"github.com/Lucas-Aron/Retail/internal/models"
	"github.com/Lucas-Aron/Retail/internal/store"
)

// AccessService appends to and reads the employee access log. Entries are
// never updated or removed.
type AccessService interface {
	Log(ctx context.Context, req dto.LogAccessDto) (models.EmployeeAccess, error)
	// List returns the log most recent first.
	List(ctx context.Context) ([]models.EmployeeAccess, error)
}

type accessService struct {
	store *store.Store
	ids   *ident.Allocator
}

func NewAccessService(st *store.Store, ids *ident.Allocator) AccessService {
	return &accessService{store: st, ids: ids}
}

func (s accessService) Log(ctx context.Context, req dto.LogAccessDto) (models.EmployeeAccess, error) {
	employee := strings.TrimSpace(req.Employee)
	if employee == "" {
		return models.EmployeeAccess{}, store.MissingField("EmployeeAccess", "NamaKaryawan")
	}

	accessedAt := s.ids.Clock().Now()
	if req.AccessedAt != nil && !req.AccessedAt.IsZero() {
		accessedAt = *req.AccessedAt
	}

	entry := models.EmployeeAccess{
		ID:         s.ids.Next(ident.PrefixEmployee),
		Employee:   employee,
		AccessedAt: accessedAt.UTC(),
	}

	err := s.store.Do(ctx, func(tx *gorm.DB) error {
		return tx.Create(&entry).Error
	})
	if err != nil {
		return models.EmployeeAccess{}, err
	}

	log.Printf("access %s logged for %q", entry.ID, entry.Employee)
	return entry, nil
}

func (s accessService) List(ctx context.Context) ([]models.EmployeeAccess, error) {
	entries := make([]models.EmployeeAccess, 0)
	err := s.store.Do(ctx, func(tx *gorm.DB) error {
		return tx.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "WaktuAkses"}, Desc: true}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "AccessID"}, Desc: true}).
			Find(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
