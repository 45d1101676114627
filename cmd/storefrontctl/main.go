package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"priyasi-storefront/internal/browse"
	"priyasi-storefront/internal/catalog"
	"priyasi-storefront/internal/config"
	"priyasi-storefront/internal/logger"
	"priyasi-storefront/internal/variant"

	"github.com/spf13/cobra"
)

// Catalog is the slice of catalog.Service the CLI reads from.
type Catalog interface {
	ListProducts(ctx context.Context, limit int) []catalog.Product
	Search(ctx context.Context, query string, limit int) []catalog.Product
	ProductByHandle(ctx context.Context, handle string) *catalog.Product
}

var newCatalogFunc = func() (Catalog, int) {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	gateway := catalog.NewStorefrontClient(cfg.StoreDomain, cfg.APIVersion, cfg.StorefrontToken)
	return catalog.NewService(gateway), cfg.CatalogLimit
}

func main() {
	defer logger.Sync()

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type productsFlags struct {
	category string
	min      float64
	max      float64
	sizes    []string
	sort     string
	search   string
	limit    int
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "storefrontctl",
		Short:        "Inspect the Priyasi storefront catalog",
		SilenceUsage: true,
	}
	root.SetOut(out)

	root.AddCommand(newProductsCmd(), newProductCmd())
	return root
}

func newProductsCmd() *cobra.Command {
	var flags productsFlags

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products through the collection filters, or search them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProducts(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.category, "category", browse.CategoryAll, "Category slug or product type (kurtas, sarees, ...)")
	f.Float64Var(&flags.min, "min", 0, "Minimum price")
	f.Float64Var(&flags.max, "max", browse.DefaultMaxPrice, "Maximum price")
	f.StringSliceVar(&flags.sizes, "size", nil, "Size to keep (may be repeated)")
	f.StringVar(&flags.sort, "sort", string(browse.SortFeatured), "Sort order: featured, newest, price-asc or price-desc")
	f.StringVar(&flags.search, "search", "", "Search title and description instead of filtering")
	f.IntVar(&flags.limit, "limit", 0, "Products to fetch (defaults to CATALOG_LIMIT)")
	return cmd
}

func runProducts(cmd *cobra.Command, flags productsFlags) error {
	cat, defaultLimit := newCatalogFunc()
	limit := flags.limit
	if limit <= 0 {
		limit = defaultLimit
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flags.search != "" {
		return printProducts(cmd.OutOrStdout(), cat.Search(ctx, flags.search, limit))
	}

	order, err := browse.ParseSortOrder(flags.sort)
	if err != nil {
		return err
	}
	state := browse.FilterState{
		Category: browse.CategoryFromSlug(flags.category),
		Price:    browse.PriceRange{Min: flags.min, Max: flags.max},
		Sizes:    flags.sizes,
		Sort:     order,
	}
	if err := state.Validate(); err != nil {
		return err
	}

	return printProducts(cmd.OutOrStdout(), browse.DeriveView(cat.ListProducts(ctx, limit), state))
}

func printProducts(out io.Writer, products []catalog.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(out, "no products")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HANDLE\tTITLE\tTYPE\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Handle, p.Title, p.ProductType, p.PriceRange.MinVariantPrice.Format())
	}
	return tw.Flush()
}

func newProductCmd() *cobra.Command {
	var options []string

	cmd := &cobra.Command{
		Use:   "product <handle>",
		Short: "Show a product and resolve the variant for the chosen options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProduct(cmd, args[0], options)
		},
	}

	cmd.Flags().StringArrayVar(&options, "option", nil, "Option choice as Name=Value (may be repeated)")
	return cmd
}

func runProduct(cmd *cobra.Command, handle string, options []string) error {
	cat, _ := newCatalogFunc()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p := cat.ProductByHandle(ctx, handle)
	if p == nil {
		return fmt.Errorf("product %q not found", handle)
	}

	sel, err := variant.NewSelection(p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, opt := range options {
		name, value, ok := strings.Cut(opt, "=")
		if !ok {
			return fmt.Errorf("invalid --option %q, want Name=Value", opt)
		}
		matched, err := sel.Choose(strings.TrimSpace(name), strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("option %q: %w", name, err)
		}
		if !matched {
			fmt.Fprintf(out, "no variant for %s=%s, keeping previous selection\n", name, value)
		}
	}

	v := sel.Variant()
	fmt.Fprintf(out, "%s (%s)\n", p.Title, p.Handle)
	fmt.Fprintf(out, "variant:   %s\n", v.Title)
	fmt.Fprintf(out, "id:        %s\n", v.ID)
	fmt.Fprintf(out, "price:     %s\n", v.Price.Format())
	fmt.Fprintf(out, "available: %t\n", v.AvailableForSale)
	return nil
}
