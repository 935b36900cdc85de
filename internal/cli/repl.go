package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests substitute a recording stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Payments(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	NewPayment(ctx context.Context) error
	Verify(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Customers(ctx context.Context) error
}

// runREPL reads a line, dispatches the first token as a command, and loops
// until EOF or exit. Command handlers report their own errors to the user;
// the loop ignores the returned error to stay resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pay %s> ", statusFn()))
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
				printlnFn("Available commands: dashboard, (p)ayments, show <id>, newpayment, verify <url>, profile, editprofile, customers, logout, exit")
			} else {
				printlnFn("Available commands: login, register, verify <url>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "payments":
			_ = a.Payments(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "newpayment", "new":
			_ = a.NewPayment(ctx)

		case "verify":
			_ = a.Verify(ctx, args)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "customers":
			_ = a.Customers(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
