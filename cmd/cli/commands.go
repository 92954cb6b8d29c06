package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"backoffice-dashboard/config"
	"backoffice-dashboard/internal/barang"
	barangRepo "backoffice-dashboard/internal/barang/repository/rest"
	barangUC "backoffice-dashboard/internal/barang/usecase"
	"backoffice-dashboard/internal/pelanggan"
	pelangganRepo "backoffice-dashboard/internal/pelanggan/repository/rest"
	pelangganUC "backoffice-dashboard/internal/pelanggan/usecase"
	"backoffice-dashboard/internal/penjualan"
	penjualanRepo "backoffice-dashboard/internal/penjualan/repository/rest"
	penjualanUC "backoffice-dashboard/internal/penjualan/usecase"
	"backoffice-dashboard/pkg/currency"
	"backoffice-dashboard/pkg/log"
	"backoffice-dashboard/pkg/restapi"
)

// useCases are built once in Before and shared by every command.
type useCases struct {
	barang    barang.UseCase
	pelanggan pelanggan.UseCase
	penjualan penjualan.UseCase
}

var ucs useCases

var errMissingID = errors.New("--id must be a positive number")

func setup(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	baseURL := cfg.Backoffice.BaseURL
	if u := c.String("base-url"); u != "" {
		baseURL = strings.TrimRight(u, "/")
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})
	ucs = newUseCases(restapi.NewClient(baseURL, cfg.Backoffice.Timeout, logger), logger)
	return nil
}

// newUseCases wires the use cases without list caches; every command is a single call.
func newUseCases(client *restapi.Client, l log.Logger) useCases {
	b := barangUC.New(barangRepo.New(client, l), nil, l)
	p := pelangganUC.New(pelangganRepo.New(client, l), nil, l)
	return useCases{
		barang:    b,
		pelanggan: p,
		penjualan: penjualanUC.New(penjualanRepo.New(client, l), b, p, nil, l),
	}
}

func idFlag() *cli.Int64Flag {
	return &cli.Int64Flag{Name: "id", Usage: "record id", Required: true}
}

func deleteCommand(entity string, del func(c *cli.Context, id int64) error) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "delete one " + entity,
		Flags: []cli.Flag{idFlag()},
		Action: func(c *cli.Context) error {
			id := c.Int64("id")
			if id <= 0 {
				return errMissingID
			}
			if err := del(c, id); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s %d dihapus\n", entity, id)
			return nil
		},
	}
}

func barangCommand() *cli.Command {
	return &cli.Command{
		Name:  "barang",
		Usage: "items",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list every item",
				Action: func(c *cli.Context) error {
					out, err := ucs.barang.List(c.Context)
					if err != nil {
						return err
					}
					return printBarangs(c.App.Writer, out)
				},
			},
			deleteCommand("barang", func(c *cli.Context, id int64) error {
				return ucs.barang.Delete(c.Context, id)
			}),
		},
	}
}

func pelangganCommand() *cli.Command {
	return &cli.Command{
		Name:  "pelanggan",
		Usage: "customers",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list every customer",
				Action: func(c *cli.Context) error {
					out, err := ucs.pelanggan.List(c.Context)
					if err != nil {
						return err
					}
					return printPelanggans(c.App.Writer, out)
				},
			},
			deleteCommand("pelanggan", func(c *cli.Context, id int64) error {
				return ucs.pelanggan.Delete(c.Context, id)
			}),
		},
	}
}

func penjualanCommand() *cli.Command {
	return &cli.Command{
		Name:  "penjualan",
		Usage: "sales orders",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list every sales order",
				Action: func(c *cli.Context) error {
					out, err := ucs.penjualan.List(c.Context)
					if err != nil {
						return err
					}
					return printPenjualans(c.App.Writer, out)
				},
			},
			deleteCommand("penjualan", func(c *cli.Context, id int64) error {
				return ucs.penjualan.Delete(c.Context, id)
			}),
		},
	}
}

func printBarangs(w io.Writer, out barang.ListOutput) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KODE\tNAMA\tKATEGORI\tHARGA")
	for _, b := range out.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.Kode(), b.Nama, b.Kategori.Label(), currency.Format(b.Harga))
	}
	return tw.Flush()
}

func printPelanggans(w io.Writer, out pelanggan.ListOutput) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAMA\tDOMISILI\tJENIS KELAMIN")
	for _, p := range out.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Nama, p.Domisili, p.JenisKelamin.Label())
	}
	return tw.Flush()
}

func printPenjualans(w io.Writer, out penjualan.ListOutput) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NOTA\tTANGGAL\tPELANGGAN\tSUBTOTAL\tITEMS")
	for _, p := range out.Items {
		items := make([]string, 0, len(p.Items))
		for _, item := range p.Items {
			items = append(items, fmt.Sprintf("%s x %d", item.ItemName(), item.Qty))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.NoNota(), p.Tgl, p.CustomerName(), currency.FormatDecimal(p.Subtotal), strings.Join(items, ", "))
	}
	return tw.Flush()
}
