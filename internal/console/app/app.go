// Package app wires the console session, navigator and views into the
// inventory command line client.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/console/apiclient"
	"github.com/inc-inventory/inventory-system/internal/console/router"
	"github.com/inc-inventory/inventory-system/internal/console/session"
	"github.com/inc-inventory/inventory-system/internal/console/storage"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// ErrUsage is returned for malformed command lines.
var ErrUsage = errors.New("invalid usage")

// API is the backend surface the console uses.
type API interface {
	session.AuthClient
	ListProducts(ctx context.Context, q apiclient.ProductQuery) ([]domain.Product, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, in apiclient.OrderRequest) (*domain.Order, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	Dashboard(ctx context.Context, period string) (*domain.DashboardSummary, error)
	SalesReport(ctx context.Context, from, to time.Time) ([]byte, error)
	InventoryReport(ctx context.Context) ([]byte, error)
}

// App runs one console command against a session.
type App struct {
	store *session.Store
	boot  *session.Bootstrapper
	auth  *session.Auth
	nav   *router.Navigator
	api   API

	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger

	// writeFile saves downloaded reports.
	writeFile func(name string, data []byte) error
}

// Options configures an App.
type Options struct {
	In        io.Reader
	Out       io.Writer
	Log       zerolog.Logger
	WriteFile func(name string, data []byte) error
}

func New(store *session.Store, st storage.Storage, api API, opts Options) *App {
	policy := session.DefaultPolicy()
	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &App{
		store:     store,
		boot:      session.NewBootstrapper(store, st, api, opts.Log),
		auth:      session.NewAuth(store, st, api, policy, opts.Log),
		nav:       router.NewNavigator(store, policy),
		api:       api,
		in:        bufio.NewReader(in),
		out:       out,
		log:       opts.Log,
		writeFile: opts.WriteFile,
	}
}

// Run bootstraps the session and executes the command in args.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd, rest := ParseCommand(args)
	switch cmd {
	case CommandHelp:
		_, err := io.WriteString(a.out, usage)
		return err
	case CommandUnknown:
		io.WriteString(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	if _, err := a.boot.Start(ctx).Wait(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	switch cmd {
	case CommandLogin:
		return a.login(ctx, rest)
	case CommandLogout:
		return a.logout(ctx)
	case CommandWhoami:
		return a.whoami()
	case CommandRegister:
		return a.register(ctx, rest)
	case CommandOpen:
		if len(rest) != 1 {
			return fmt.Errorf("%w: open <path>", ErrUsage)
		}
		return a.open(ctx, rest[0], viewArgs{})
	case CommandProducts:
		return a.open(ctx, a.rolePath(router.PathProducts, router.PathEmployeeProducts),
			viewArgs{search: strings.Join(rest, " ")})
	case CommandOrders:
		return a.open(ctx, router.PathEmployeeOrders, viewArgs{})
	case CommandDashboard:
		va := viewArgs{}
		if len(rest) > 0 {
			va.period = rest[0]
		}
		return a.open(ctx, a.rolePath(router.PathDashboard, router.PathEmployeeDashboard), va)
	case CommandOrder:
		return a.placeOrder(ctx, rest)
	case CommandReport:
		return a.report(ctx, rest)
	}
	return nil
}

// rolePath picks the employee variant of a view for employees.
func (a *App) rolePath(staff, employee string) string {
	if a.store.Get().Role() == domain.RoleEmployee {
		return employee
	}
	return staff
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: login <username> [password] [from]", ErrUsage)
	}
	username, password, from := args[0], "", ""
	if len(args) > 1 {
		password = args[1]
	} else {
		fmt.Fprint(a.out, "Password: ")
		line, err := a.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if len(args) > 2 {
		from = args[2]
	}

	next, err := a.auth.Login(ctx, username, password, from)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Fprintf(a.out, "Logged in as %s.\n", username)
	return a.open(ctx, next, viewArgs{})
}

func (a *App) logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, "Logged out.")
	return err
}

func (a *App) whoami() error {
	s := a.store.Get()
	if !s.IsAuthenticated || s.User == nil {
		_, err := fmt.Fprintln(a.out, "Not logged in.")
		return err
	}
	return a.account(s.User)
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: register <username> <password> [role] [full name]", ErrUsage)
	}
	req := apiclient.SignupRequest{Username: args[0], Password: args[1]}
	if len(args) > 2 {
		role, err := domain.ParseRole(args[2])
		if err != nil {
			return err
		}
		req.Role = role
	}
	if len(args) > 3 {
		req.FullName = strings.Join(args[3:], " ")
	}
	u, err := a.auth.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	_, err = fmt.Fprintf(a.out, "Registered %s as %s. Run: inventory login %s\n", u.Username, u.Role, u.Username)
	return err
}

func (a *App) account(u *domain.User) error {
	_, err := fmt.Fprintf(a.out, "Username:  %s\nName:      %s\nEmail:     %s\nRole:      %s\nActive:    %t\n",
		u.Username, u.FullName, u.Email, u.Role, u.IsActive)
	return err
}
