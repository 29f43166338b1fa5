package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/foundlab/lostfound/internal/client/models"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Items(ctx context.Context) error
	ShowItem(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) error
	Category(ctx context.Context, category string) error
	FilterStatus(ctx context.Context, status models.ItemStatus) error
	Report(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Mark(ctx context.Context, id int64, status models.ItemStatus) error
	RemoveItem(ctx context.Context, id int64) error
	MyItems(ctx context.Context) error
	Claim(ctx context.Context, itemID int64, notes string) error
	MyRequests(ctx context.Context) error
	Requests(ctx context.Context) error
	Review(ctx context.Context, id int64, status models.RequestStatus, notes string) error
	RemoveRequest(ctx context.Context, id int64) error
	Users(ctx context.Context) error
	ChangeRole(ctx context.Context, id int64, role models.Role) error
	RemoveUser(ctx context.Context, id int64) error
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		printlnFn("Expected a numeric id, got:", s)
		return 0, false
	}
	return id, true
}

const helpLoggedOut = "Available commands: login, signup, exit"

const helpLoggedIn = `Available commands:
  dashboard                     counts and recent items
  items | item <id>             browse items
  search <text>                 full-text item search
  category <name>               items in a category
  status <LOST|FOUND|CLAIMED>   items by status
  report                        report a lost or found item
  my-items                      items you reported
  claim <item-id> [notes]       file a claim request
  my-requests                   your claim requests
  edit <id> / mark <id> <st> / delete <id>     manage items (staff)
  requests / review <id> <APPROVED|REJECTED> [notes] / delreq <id>   manage requests (staff)
  users / role <id> <role> / deluser <id>      manage users (admin)
  whoami, logout, exit`

// runREPL starts a read-eval-print loop. It reads a line, parses the first
// token as the command, and dispatches to methods on a. Handler errors are
// rendered inline; the loop only exits on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn("Error:", renderError(err))
		}
	}

	for {
		printlnFn(fmt.Sprintf("lostfound %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			report(a.Login(ctx))

		case "signup":
			report(a.Signup(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "whoami":
			report(a.Whoami(ctx))

		case "dashboard":
			report(a.Dashboard(ctx))

		case "items":
			report(a.Items(ctx))

		case "item":
			if len(args) != 1 {
				printlnFn("Usage: item <id>")
				continue
			}
			if id, ok := parseID(args[0]); ok {
				report(a.ShowItem(ctx, id))
			}

		case "search":
			report(a.Search(ctx, strings.Join(args, " ")))

		case "category":
			report(a.Category(ctx, strings.Join(args, " ")))

		case "status":
			if len(args) != 1 {
				printlnFn("Usage: status <LOST|FOUND|CLAIMED>")
				continue
			}
			report(a.FilterStatus(ctx, models.ItemStatus(strings.ToUpper(args[0]))))

		case "report":
			report(a.Report(ctx))

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			if id, ok := parseID(args[0]); ok {
				report(a.Edit(ctx, id))
			}

		case "mark":
			if len(args) != 2 {
				printlnFn("Usage: mark <id> <LOST|FOUND|CLAIMED>")
				continue
			}
			if id, ok := parseID(args[0]); ok {
				report(a.Mark(ctx, id, models.ItemStatus(strings.ToUpper(args[1]))))
			}

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			if id, ok := parseID(args[0]); ok {
				report(a.RemoveItem(ctx, id))
			}

		case "my-items":
			report(a.MyItems(ctx))

		case "claim":
			if len(args) < 1 {
				printlnFn("Usage: claim <item-id> [notes]")
				continue
			}
			if id, ok := parseID(args[0]); ok {
				report(a.Claim(ctx, id, strings.Join(args[1:], " ")))
			}

		case "my-requests":
			report(a.MyRequests(ctx))

		case "requests":
			report(a.Requests(ctx))

		case "review":
			if len(args) < 2 {
				printlnFn("Usage: review <id> <APPROVED|REJECTED> [notes]")
				continue
			}
			if id, ok := parseID(args[0]); ok {
				status := models.RequestStatus(strings.ToUpper(args[1]))
				report(a.Review(ctx, id, status, strings.Join(args[2:], " ")))
			}

		case "delreq":
			if len(args) != 1 {
				printlnFn("Usage: delreq <id>")
				continue
			}
			if id, ok := parseID(args[0]); ok {
				report(a.RemoveRequest(ctx, id))
			}

		case "users":
			report(a.Users(ctx))

		case "role":
			if len(args) != 2 {
				printlnFn("Usage: role <user-id> <ADMIN|STAFF|USER>")
				continue
			}
			if id, ok := parseID(args[0]); ok {
				report(a.ChangeRole(ctx, id, models.Role(strings.ToUpper(args[1]))))
			}

		case "deluser":
			if len(args) != 1 {
				printlnFn("Usage: deluser <id>")
				continue
			}
			if id, ok := parseID(args[0]); ok {
				report(a.RemoveUser(ctx, id))
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
