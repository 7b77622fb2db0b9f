package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface is the minimal command surface the REPL dispatches to. The real
// App satisfies it; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Feed(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Follow(ctx context.Context, args []string) error
	Unfollow(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Notifications(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them until the scanner
// hits EOF or the user quits. Handlers report their own errors; the loop only
// relays them to the user and keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("type 'help' for commands")
	for {
		printlnFn(fmt.Sprintf("%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed, search, follow, unfollow, like, comment, notifications, profile, whoami, logout, quit")
			} else {
				printlnFn("Available commands: register, login, quit")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "profile":
			err = a.Profile(ctx)
		case "feed":
			err = a.Feed(ctx, args)
		case "search":
			err = a.Search(ctx, args)
		case "follow":
			err = a.Follow(ctx, args)
		case "unfollow":
			err = a.Unfollow(ctx, args)
		case "like":
			err = a.Like(ctx, args)
		case "comment":
			err = a.Comment(ctx, args)
		case "notifications", "inbox":
			err = a.Notifications(ctx)
		case "exit", "quit", "q":
			return
		default:
			printlnFn("unknown command: " + cmd)
		}
		if err != nil {
			printlnFn("error: " + err.Error())
		}
	}
}
