package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Browse(ctx context.Context, query string) error
	Filter(ctx context.Context, category string) error
	Sort(ctx context.Context, criterion string) error
	Mine(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Back(ctx context.Context) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Sold(ctx context.Context, id string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Status(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, status, exit"
	helpLoggedIn  = "Available commands: browse [query], filter <category|all>, sort <title|price-low|price-high|category>, " +
		"mine, show <id>, back, new, edit <id>, sold <id>, delete <id>, profile, editprofile, status, logout, exit"
)

// argCommands lists the commands that need an argument, with their usage line.
var argCommands = map[string]string{
	"filter": "Usage: filter <school|apparel|living|services|tickets|all>",
	"sort":   "Usage: sort <title|price-low|price-high|category>",
	"show":   "Usage: show <id>",
	"edit":   "Usage: edit <id>",
	"delete": "Usage: delete <id>",
	"sold":   "Usage: sold <id>",
}

// runREPL starts a read–eval–print loop for the marketplace CLI.
//
// It reads a line from the scanner, parses the first token as the command
// and dispatches to methods on a. The rest of the line is the argument.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help, register, login, status, exit | quit
//
//	Logged in:
//	  - browse [query]   other students' listings, optionally searched
//	  - filter <cat|all> narrow browse to one category
//	  - sort <criterion> order the current tab
//	  - mine             own listings
//	  - show <id>, back  open a listing, return from it
//	  - new, edit <id>, sold <id>, delete <id>
//	  - profile, editprofile
//	  - status, logout, exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gator %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		if usage, ok := argCommands[cmd]; ok && arg == "" {
			printlnFn(usage)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "b", "browse":
			_ = a.Browse(ctx, arg)

		case "filter":
			_ = a.Filter(ctx, arg)

		case "sort":
			_ = a.Sort(ctx, arg)

		case "mine":
			_ = a.Mine(ctx)

		case "show":
			_ = a.Show(ctx, arg)

		case "back":
			_ = a.Back(ctx)

		case "new":
			_ = a.New(ctx)

		case "edit":
			_ = a.Edit(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "sold":
			_ = a.Sold(ctx, arg)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
