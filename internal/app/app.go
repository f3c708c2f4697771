package app

import (
	"context"
	"fmt"
	"log"

	"github.com/Lucas-Aron/Retail/internal/config"
	"github.com/Lucas-Aron/Retail/internal/ident"
	"github.com/Lucas-Aron/Retail/internal/pkg/clock"
	"github.com/Lucas-Aron/Retail/internal/service/access"
	"github.com/Lucas-Aron/Retail/internal/service/product"
	"github.com/Lucas-Aron/Retail/internal/service/supplier"
	"github.com/Lucas-Aron/Retail/internal/store"
)

// App wires the store and the services shared by the web server and the CLI.
type App struct {
	Config    config.Config
	Clock     clock.Clock
	IDs       *ident.Allocator
	Store     *store.Store
	Products  product.ProductService
	Suppliers supplier.SupplierService
	Access    access.AccessService
}

// New opens the database and ensures the schema. Any error here means the
// application must not start serving.
func New(ctx context.Context, cfg config.Config, clk clock.Clock) (*App, error) {
	policy, err := ident.ParsePolicy(cfg.IDPolicy)
	if err != nil {
		return nil, err
	}

	db, err := config.NewDB(cfg.DB)
	if err != nil {
		return nil, err
	}

	st := store.New(db)
	if err := st.EnsureSchema(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("schema: %w", err)
	}
	log.Printf("schema ready (%s)", st.Dialect())

	ids := ident.NewAllocator(clk, policy)
	suppliers := supplier.NewSupplierService(st, ids)

	return &App{
		Config:    cfg,
		Clock:     clk,
		IDs:       ids,
		Store:     st,
		Products:  product.NewProductService(st, ids, suppliers),
		Suppliers: suppliers,
		Access:    access.NewAccessService(st, ids),
	}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}
