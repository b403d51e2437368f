package view

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// MenuEntry is one sidebar line.
type MenuEntry struct {
	Label  string
	Path   string
	Active bool
}

// Sidebar prints the user header and menu, marking the active entry.
func Sidebar(w io.Writer, u *domain.User, entries []MenuEntry) error {
	if u != nil {
		name := u.FullName
		if name == "" {
			name = u.Username
		}
		if _, err := fmt.Fprintf(w, "%s (%s)\n", name, u.Role); err != nil {
			return err
		}
	}
	for _, e := range entries {
		marker := " "
		if e.Active {
			marker = ">"
		}
		if _, err := fmt.Fprintf(w, "%s %-12s %s\n", marker, e.Label, e.Path); err != nil {
			return err
		}
	}
	return nil
}

// Products prints a product table.
func Products(w io.Writer, products []domain.Product) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTOCK\tSTATUS")
	for _, p := range products {
		status := "active"
		if !p.IsActive {
			status = "inactive"
		}
		if p.LowStock() {
			status += ", low stock"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, FormatPHP(p.Price), p.Stock, status)
	}
	return tw.Flush()
}

// Orders prints an order table.
func Orders(w io.Writer, orders []domain.Order) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCUSTOMER\tITEMS\tTOTAL\tSTATUS\tCREATED")
	for _, o := range orders {
		items := 0
		for _, it := range o.Items {
			items += it.Quantity
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			o.ID, o.Customer.Name, items, FormatPHP(o.Total), o.Status, o.CreatedAt.Local().Format(timeLayout))
	}
	return tw.Flush()
}

// Users prints a user table.
func Users(w io.Writer, users []domain.User) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tROLE\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.FullName, u.Role, strconv.FormatBool(u.IsActive))
	}
	return tw.Flush()
}

// Dashboard prints the metric cards, product status and sales trend.
func Dashboard(w io.Writer, s *domain.DashboardSummary) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Period\t%s (%d days)\n", s.Period, s.Days)
	fmt.Fprintf(tw, "Revenue\t%s\n", FormatPHP(s.Orders.TotalRevenue))
	fmt.Fprintf(tw, "Orders\t%s\n", FormatCompact(float64(s.Orders.TotalOrders)))
	fmt.Fprintf(tw, "Items sold\t%s\n", FormatCompact(float64(s.Orders.TotalItemsSold)))
	fmt.Fprintf(tw, "Products\t%s active / %s total\n",
		FormatCompact(float64(s.Products.ActiveProducts)), FormatCompact(float64(s.Products.TotalProducts)))
	fmt.Fprintf(tw, "Inventory value\t%s\n", FormatPHP(s.Products.InventoryValue))
	for _, sl := range ProductStatusSlices(s.Products) {
		fmt.Fprintf(tw, "%s\t%d (%d%%)\n", sl.Label, sl.Count, sl.Percent)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	trend := ShapeTrend(s.SalesTrend)
	fmt.Fprintf(w, "\nSales trend: %s over %d orders\n", FormatPHP(trend.TotalRevenue), trend.TotalOrders)
	tw = newTable(w)
	fmt.Fprintln(tw, "DATE\tREVENUE\tORDERS")
	for _, p := range trend.Points {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", p.Date, FormatPHP(p.Revenue), p.Orders)
	}
	return tw.Flush()
}
