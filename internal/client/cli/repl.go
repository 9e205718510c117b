package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Listings(ctx context.Context) error
	Show(ctx context.Context, listingID int64) error
	AddListing(ctx context.Context) error

	Cart(ctx context.Context) error
	CartAdd(ctx context.Context, listingID int64, quantity int) error
	CartRemove(ctx context.Context, listingID int64) error
	Wishlist(ctx context.Context) error
	WishlistAdd(ctx context.Context, listingID int64) error
	WishlistRemove(ctx context.Context, listingID int64) error

	Comments(ctx context.Context, listingID int64) error
	Comment(ctx context.Context, listingID int64) error
	Uncomment(ctx context.Context, commentID int64) error

	Profile(ctx context.Context) error
	ProfileEdit(ctx context.Context) error

	Refresh(ctx context.Context) error
}

const (
	helpGuest = "Available commands: (l)istings, show <id>, comments <id>, register, login, exit"
	helpUser  = "Available commands: (l)istings, show <id>, addlisting, cart [add <id> [qty] | rm <id>], " +
		"wishlist [add <id> | rm <id>], comments <id>, comment <id>, uncomment <comment id>, " +
		"profile [edit], refresh, whoami, logout, exit"
)

// runREPL reads commands from reader until EOF or "exit"/"quit".
//
// The first token of a line is the command, the rest are its arguments.
// Numeric arguments are parsed here so handlers get typed values. An error
// returned by a handler is printed as a single line and the loop goes on:
// no command failure ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cards %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, args); err != nil {
			if msg := describe(err); msg != "" {
				printlnFn("Error:", msg)
			}
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpUser)
		} else {
			printlnFn(helpGuest)
		}
		return nil

	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)

	case "l", "listings":
		return a.Listings(ctx)
	case "show":
		return withID(args, "show <listing id>", func(id int64) error { return a.Show(ctx, id) })
	case "addlisting":
		return a.AddListing(ctx)

	case "cart":
		return collection(args, "cart",
			func() error { return a.Cart(ctx) },
			func(id int64, rest []string) error {
				qty := 1
				if len(rest) > 0 {
					n, err := strconv.Atoi(rest[0])
					if err != nil || n < 1 {
						printlnFn("Usage: cart add <listing id> [quantity]")
						return nil
					}
					qty = n
				}
				return a.CartAdd(ctx, id, qty)
			},
			func(id int64) error { return a.CartRemove(ctx, id) })

	case "wishlist":
		return collection(args, "wishlist",
			func() error { return a.Wishlist(ctx) },
			func(id int64, _ []string) error { return a.WishlistAdd(ctx, id) },
			func(id int64) error { return a.WishlistRemove(ctx, id) })

	case "comments":
		return withID(args, "comments <listing id>", func(id int64) error { return a.Comments(ctx, id) })
	case "comment":
		return withID(args, "comment <listing id>", func(id int64) error { return a.Comment(ctx, id) })
	case "uncomment":
		return withID(args, "uncomment <comment id>", func(id int64) error { return a.Uncomment(ctx, id) })

	case "profile":
		if len(args) > 0 && args[0] == "edit" {
			return a.ProfileEdit(ctx)
		}
		return a.Profile(ctx)

	case "refresh":
		return a.Refresh(ctx)
	}

	printlnFn("Unknown command:", cmd)
	return nil
}

// withID parses args[0] as an id and calls fn, or prints usage.
func withID(args []string, usage string, fn func(id int64) error) error {
	if len(args) == 0 {
		printlnFn("Usage: " + usage)
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		printlnFn("Usage: " + usage)
		return nil
	}
	return fn(id)
}

// collection handles "<name>", "<name> add <id> ..." and "<name> rm <id>".
func collection(args []string, name string, show func() error, add func(int64, []string) error, rm func(int64) error) error {
	if len(args) == 0 {
		return show()
	}
	switch args[0] {
	case "add":
		return withID(args[1:], name+" add <listing id>", func(id int64) error {
			rest := args[2:]
			return add(id, rest)
		})
	case "rm", "remove":
		return withID(args[1:], name+" rm <listing id>", rm)
	}
	printlnFn(fmt.Sprintf("Usage: %s [add <listing id> | rm <listing id>]", name))
	return nil
}
