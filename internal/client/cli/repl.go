package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Users(ctx context.Context) error
	DeleteUser(ctx context.Context, id string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Signed out:
//	  - help            show available commands
//	  - register        create an account
//	  - login           sign in
//	  - exit | quit     leave the program
//
//	Signed in:
//	  - whoami          show the current session
//	  - profile         show your profile
//	  - edit            edit name and e-mail
//	  - password        change your password
//	  - deleteaccount   delete your own account
//	  - users           list all accounts (admin)
//	  - deleteuser ID   delete another account (admin)
//	  - logout          sign out
//
// Handler errors are not printed here: the workflows already report them
// through the notifier.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tc %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("input error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn("Available commands: whoami, profile, edit, password, deleteaccount, users, deleteuser <id>, logout, exit")
			case a.isLoggedIn():
				printlnFn("Available commands: whoami, profile, edit, password, deleteaccount, logout, exit")
			default:
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "password":
			_ = a.ChangePassword(ctx)

		case "deleteaccount":
			_ = a.DeleteAccount(ctx)

		case "users":
			_ = a.Users(ctx)

		case "deleteuser":
			if len(args) == 0 {
				printlnFn("Usage: deleteuser <id>")
				continue
			}
			_ = a.DeleteUser(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
