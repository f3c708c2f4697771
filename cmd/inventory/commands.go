package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lucas-Aron/Retail/internal/app"
	"github.com/Lucas-Aron/Retail/internal/config"
	"github.com/Lucas-Aron/Retail/internal/dto"
	"github.com/Lucas-Aron/Retail/internal/pkg/clock"
	"github.com/Lucas-Aron/Retail/internal/service/backup"
	"github.com/Lucas-Aron/Retail/internal/utils"
)

const accessTimeLayout = "2006-01-02 15:04"

// session holds the application opened for the running command.
type session struct {
	app    *app.App
	prompt *prompter
}

// close releases whatever the command opened.
func (s *session) close() error {
	if s.prompt != nil {
		s.prompt.Close()
	}
	if s.app != nil {
		return s.app.Close()
	}
	return nil
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Manage products, suppliers and the employee access log",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), cfg, clock.NewRealClock())
			if err != nil {
				return err
			}
			s.app = a
			s.prompt = newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
	}

	root.AddCommand(newProductCmd(s), newSupplierCmd(s), newAccessCmd(s), newBackupCmd(s))
	return root
}

func newProductCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "product", Short: "Add or list products"}

	var f struct {
		brand, model, typ, color, size, stock, buy, sell, supplier string
	}
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a product; missing fields are prompted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			choices, err := s.app.Suppliers.Choices(ctx)
			if err != nil {
				return err
			}
			if len(choices) == 0 {
				return fmt.Errorf("no suppliers available: add a supplier first")
			}

			answers := []struct {
				label string
				value *string
			}{
				{"Merek", &f.brand}, {"Model", &f.model}, {"Tipe", &f.typ},
				{"Stok", &f.stock}, {"Harga Beli", &f.buy}, {"Harga Jual", &f.sell},
			}
			for _, a := range answers {
				if *a.value, err = s.prompt.Ask(a.label, *a.value); err != nil {
					return err
				}
			}
			if f.supplier == "" {
				renderChoices(cmd.OutOrStdout(), choices)
				if f.supplier, err = s.prompt.Ask("Kode Supplier", ""); err != nil {
					return err
				}
			}

			req, err := productRequest(f.brand, f.model, f.typ, f.color, f.size, f.stock, f.buy, f.sell, f.supplier)
			if err != nil {
				return err
			}
			created, err := s.app.Products.Create(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Produk berhasil ditambahkan! (%s)\n", created.ID)
			return nil
		},
	}
	add.Flags().StringVar(&f.brand, "merek", "", "brand")
	add.Flags().StringVar(&f.model, "model", "", "model")
	add.Flags().StringVar(&f.typ, "tipe", "", "type")
	add.Flags().StringVar(&f.color, "warna", "", "color")
	add.Flags().StringVar(&f.size, "ukuran", "", "size")
	add.Flags().StringVar(&f.stock, "stok", "", "units in stock")
	add.Flags().StringVar(&f.buy, "harga-beli", "", "purchase price")
	add.Flags().StringVar(&f.sell, "harga-jual", "", "sale price")
	add.Flags().StringVar(&f.supplier, "supplier", "", "supplier id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := s.app.Products.List(cmd.Context())
			if err != nil {
				return err
			}
			renderProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func newSupplierCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "supplier", Short: "Add or list suppliers"}

	var req dto.CreateSupplierDto
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a supplier; missing fields are prompted",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			fields := []struct {
				label string
				value *string
			}{
				{"Nama Supplier", &req.Name}, {"Alamat", &req.Address}, {"Email", &req.Email}, {"Telepon", &req.Phone},
			}
			for _, f := range fields {
				if *f.value, err = s.prompt.Ask(f.label, *f.value); err != nil {
					return err
				}
			}
			created, err := s.app.Suppliers.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Supplier berhasil ditambahkan! (%s)\n", created.ID)
			return nil
		},
	}
	add.Flags().StringVar(&req.Name, "nama", "", "supplier name")
	add.Flags().StringVar(&req.Address, "alamat", "", "address")
	add.Flags().StringVar(&req.Email, "email", "", "email")
	add.Flags().StringVar(&req.Phone, "telepon", "", "phone")

	list := &cobra.Command{
		Use:   "list",
		Short: "List suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			suppliers, err := s.app.Suppliers.List(cmd.Context())
			if err != nil {
				return err
			}
			renderSuppliers(cmd.OutOrStdout(), suppliers)
			return nil
		},
	}

	choices := &cobra.Command{
		Use:   "choices",
		Short: "List supplier ids usable as a product's supplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.app.Suppliers.Choices(cmd.Context())
			if err != nil {
				return err
			}
			renderChoices(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.AddCommand(add, list, choices)
	return cmd
}

func newAccessCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "access", Short: "Record or view employee access"}

	var at string
	logCmd := &cobra.Command{
		Use:   "log [employee]",
		Short: "Record an access; time defaults to now",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			name, err := s.prompt.Ask("Nama Karyawan", name)
			if err != nil {
				return err
			}

			req := dto.LogAccessDto{Employee: name}
			if at != "" {
				t, err := time.ParseInLocation(accessTimeLayout, at, time.Local)
				if err != nil {
					return fmt.Errorf("--at must look like %q: %w", accessTimeLayout, err)
				}
				req.AccessedAt = &t
			}

			entry, err := s.app.Access.Log(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Akses %s tercatat (%s)\n", entry.Employee, entry.ID)
			return nil
		},
	}
	logCmd.Flags().StringVar(&at, "at", "", "access time, "+accessTimeLayout)

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the access log, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := s.app.Access.List(cmd.Context())
			if err != nil {
				return err
			}
			renderAccess(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.AddCommand(logCmd, list)
	return cmd
}

func newBackupCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload a snapshot of the database file to S3",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := s.app.Config.S3
			uploader, err := config.S3Uploader(ctx, cfg)
			if err != nil {
				return err
			}
			key, err := backup.NewBackupService(s.app.Store, uploader, cfg.Bucket, s.app.Clock).Snapshot(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "s3://%s/%s\n", cfg.Bucket, key)
			return nil
		},
	}
}

func productRequest(brand, model, typ, color, size, stock, buy, sell, supplier string) (dto.CreateProductDto, error) {
	n, err := utils.IntOrZero(stock)
	if err != nil {
		return dto.CreateProductDto{}, err
	}
	b, err := utils.FloatOrZero(buy)
	if err != nil {
		return dto.CreateProductDto{}, err
	}
	sp, err := utils.FloatOrZero(sell)
	if err != nil {
		return dto.CreateProductDto{}, err
	}
	return dto.CreateProductDto{
		Brand: brand, Model: model, Type: typ, Color: color, Size: size,
		Stock: n, BuyPrice: b, SellPrice: sp, SupplierCode: supplier,
	}, nil
}
