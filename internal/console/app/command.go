package app

// Command is a console subcommand.
type Command string

const (
	CommandLogin     Command = "login"
	CommandLogout    Command = "logout"
	CommandWhoami    Command = "whoami"
	CommandRegister  Command = "register"
	CommandOpen      Command = "open"
	CommandProducts  Command = "products"
	CommandOrders    Command = "orders"
	CommandDashboard Command = "dashboard"
	CommandOrder     Command = "order"
	CommandReport    Command = "report"
	CommandHelp      Command = "help"

	// CommandUnknown is any subcommand not listed above.
	CommandUnknown Command = ""
)

// ParseCommand splits args into the subcommand and its arguments. No
// arguments, help, -h or --help yield CommandHelp; anything unrecognised
// yields CommandUnknown.
func ParseCommand(args []string) (Command, []string) {
	if len(args) == 0 {
		return CommandHelp, nil
	}
	switch cmd := Command(args[0]); cmd {
	case CommandLogin, CommandLogout, CommandWhoami, CommandRegister, CommandOpen,
		CommandProducts, CommandOrders, CommandDashboard, CommandOrder, CommandReport,
		CommandHelp:
		return cmd, args[1:]
	case "-h", "--help":
		return CommandHelp, args[1:]
	default:
		return CommandUnknown, args[1:]
	}
}

const usage = `usage: inventory <command> [args]

  login <username> [password] [from]   sign in (password is read from stdin when omitted)
  logout                               sign out and forget the stored session
  whoami                               show the signed-in user
  register <username> <password> [role] [full name]
  open <path>                          open a view, e.g. /dashboard or /users
  products [search]                    list products
  orders                               list orders
  dashboard [period]                   week, month, year or all
  order [-customer name] <product-id:qty>...
  report sales|inventory <file> [-from date] [-to date]
`
