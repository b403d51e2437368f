package app

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/inc-inventory/inventory-system/internal/console/apiclient"
	"github.com/inc-inventory/inventory-system/internal/console/router"
	"github.com/inc-inventory/inventory-system/internal/console/view"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// recentOrders is how many orders the employee dashboard lists.
const recentOrders = 5

type viewArgs struct {
	period string
	search string
}

// open resolves path through the navigator and renders where it lands.
func (a *App) open(ctx context.Context, path string, va viewArgs) error {
	res, err := a.nav.Await(ctx, path)
	if err != nil {
		return err
	}
	a.log.Debug().Str("requested", path).Str("path", res.Path).
		Str("outcome", res.Decision.Outcome.String()).Int("hops", res.Hops).Msg("navigate")

	if res.Path == router.PathLogin {
		if s := a.store.Get(); s.IsAuthenticated && s.User != nil {
			_, err := fmt.Fprintf(a.out, "Already logged in as %s.\n", s.User.Username)
			return err
		}
		if res.From != "" {
			_, err := fmt.Fprintf(a.out, "Login required for %s. Run: inventory login <username> [password] %s\n", res.From, res.From)
			return err
		}
		_, err := fmt.Fprintln(a.out, "Not logged in. Run: inventory login <username>")
		return err
	}
	return a.render(ctx, res.Path, va)
}

func (a *App) render(ctx context.Context, path string, va viewArgs) error {
	s := a.store.Get()
	if s.IsAuthenticated && path != router.PathLogout {
		if err := a.sidebar(s.User, path); err != nil {
			return err
		}
		fmt.Fprintln(a.out)
	}

	switch path {
	case router.PathRegister:
		_, err := fmt.Fprintln(a.out, "Run: inventory register <username> <password> [role] [full name]")
		return err
	case router.PathLogout:
		return a.logout(ctx)
	case router.PathDashboard, router.PathEmployeeDashboard:
		sum, err := a.api.Dashboard(ctx, va.period)
		if err != nil {
			return err
		}
		if err := view.Dashboard(a.out, sum); err != nil {
			return err
		}
		if path != router.PathEmployeeDashboard {
			return nil
		}
		orders, err := a.api.ListOrders(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "\nRecent orders")
		return view.Orders(a.out, orders[:min(len(orders), recentOrders)])
	case router.PathProducts, router.PathEmployeeProducts:
		products, err := a.api.ListProducts(ctx, apiclient.ProductQuery{
			Search:     va.search,
			IncludeAll: s.Role() == domain.RoleOwner,
		})
		if err != nil {
			return err
		}
		return view.Products(a.out, products)
	case router.PathEmployeeOrders:
		orders, err := a.api.ListOrders(ctx)
		if err != nil {
			return err
		}
		return view.Orders(a.out, orders)
	case router.PathUsers:
		users, err := a.api.ListUsers(ctx)
		if err != nil {
			return err
		}
		return view.Users(a.out, users)
	case router.PathAccount, router.PathEmployeeAccount:
		return a.account(s.User)
	default:
		return fmt.Errorf("no view for %s", path)
	}
}

func (a *App) sidebar(u *domain.User, active string) error {
	if u == nil {
		return nil
	}
	var entries []view.MenuEntry
	for _, m := range router.Menu(u.Role) {
		entries = append(entries, view.MenuEntry{Label: m.Label, Path: m.Path, Active: m.Path == active})
	}
	account := router.AccountPath(u.Role)
	entries = append(entries, view.MenuEntry{Label: "Account", Path: account, Active: account == active})
	return view.Sidebar(a.out, u, entries)
}

// placeOrder handles: order [-customer name] [-phone p] <product-id:qty>...
func (a *App) placeOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.SetOutput(a.out)
	customer := fs.String("customer", "Walk-in", "customer name")
	phone := fs.String("phone", "", "customer phone")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	lines, err := parseOrderLines(fs.Args())
	if err != nil {
		return err
	}

	// Orders need an authenticated session; reuse the navigator's verdict.
	res, err := a.nav.Await(ctx, router.PathEmployeeOrders)
	if err != nil {
		return err
	}
	if res.Path == router.PathLogin {
		_, err := fmt.Fprintln(a.out, "Not logged in. Run: inventory login <username>")
		return err
	}

	o, err := a.api.CreateOrder(ctx, apiclient.OrderRequest{
		CustomerName:  *customer,
		CustomerPhone: *phone,
		Items:         lines,
	})
	if err != nil {
		return fmt.Errorf("place order: %w", err)
	}
	_, err = fmt.Fprintf(a.out, "Order %s placed: %s (%s)\n", o.ID, view.FormatPHP(o.Total), o.Status)
	return err
}

func parseOrderLines(args []string) ([]apiclient.OrderLine, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one <product-id:qty>", ErrUsage)
	}
	lines := make([]apiclient.OrderLine, 0, len(args))
	for _, arg := range args {
		id, qty, ok := strings.Cut(arg, ":")
		if !ok || id == "" {
			return nil, fmt.Errorf("%w: bad order line %q", ErrUsage, arg)
		}
		n, err := strconv.Atoi(qty)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: bad quantity in %q", ErrUsage, arg)
		}
		lines = append(lines, apiclient.OrderLine{ProductID: id, Quantity: n})
	}
	return lines, nil
}

// report handles: report sales|inventory <file> [-from date] [-to date]
func (a *App) report(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: report sales|inventory <file>", ErrUsage)
	}
	kind, file := args[0], args[1]
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(a.out)
	from := fs.String("from", "", "start date (YYYY-MM-DD)")
	to := fs.String("to", "", "end date (YYYY-MM-DD)")
	if err := fs.Parse(args[2:]); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	var (
		data []byte
		err  error
	)
	switch kind {
	case "sales":
		var start, end time.Time
		if start, err = parseDate(*from); err != nil {
			return err
		}
		if end, err = parseDate(*to); err != nil {
			return err
		}
		data, err = a.api.SalesReport(ctx, start, end)
	case "inventory":
		data, err = a.api.InventoryReport(ctx)
	default:
		return fmt.Errorf("%w: unknown report %q", ErrUsage, kind)
	}
	if err != nil {
		return fmt.Errorf("%s report: %w", kind, err)
	}
	if a.writeFile == nil {
		return fmt.Errorf("%s report: no file writer configured", kind)
	}
	if err := a.writeFile(file, data); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	_, err = fmt.Fprintf(a.out, "Saved %s report to %s (%d bytes).\n", kind, file, len(data))
	return err
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrUsage, s)
	}
	return t, nil
}
