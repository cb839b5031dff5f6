package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// execIface defines the command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context)
	ListThreads(ctx context.Context) error
	OpenThread(ctx context.Context, counterpartID, listingID string) error
	Show(ctx context.Context, threadID string) error
	Send(ctx context.Context, threadID, text string) error
	MarkRead(ctx context.Context, threadID string) error
	Watch(ctx context.Context, threadID string) error
}

// replCommand builds the command tree for a single REPL line.
func replCommand(a execIface) *cobra.Command {
	root := &cobra.Command{
		Use:           "carswipe",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		&cobra.Command{
			Use:   "register",
			Short: "Create an account",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return a.Register(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "login",
			Short: "Log in and unlock your keys",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return a.Login(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Forget the session and wipe keys from memory",
			Args:  cobra.NoArgs,
			Run:   func(cmd *cobra.Command, _ []string) { a.Logout(cmd.Context()) },
		},
		&cobra.Command{
			Use:     "threads",
			Aliases: []string{"l", "list"},
			Short:   "List conversations with unread counts",
			Args:    cobra.NoArgs,
			RunE:    func(cmd *cobra.Command, _ []string) error { return a.ListThreads(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "open <userID> <listingID>",
			Short: "Start or reopen a conversation about a listing",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.OpenThread(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "show <threadID>",
			Short: "Decrypt and print a conversation",
			Args:  cobra.ExactArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return a.Show(cmd.Context(), args[0]) },
		},
		&cobra.Command{
			Use:                "send <threadID> <message...>",
			Short:              "Encrypt and send a message",
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) < 2 {
					return fmt.Errorf("usage: %s", cmd.Use)
				}
				return a.Send(cmd.Context(), args[0], joinText(args[1:]))
			},
		},
		&cobra.Command{
			Use:   "read <threadID>",
			Short: "Mark a conversation as read",
			Args:  cobra.ExactArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return a.MarkRead(cmd.Context(), args[0]) },
		},
		&cobra.Command{
			Use:   "watch <threadID>",
			Short: "Follow a conversation until Ctrl+C",
			Args:  cobra.ExactArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return a.Watch(cmd.Context(), args[0]) },
		},
	)
	return root
}

// runREPL reads commands from scanner until EOF, "exit" or "quit".
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out func(format string, args ...any)) {
	for {
		out("cs %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "exit", "quit":
			out("Bye!\n")
			return
		case "help":
			if !a.isLoggedIn() {
				out("Log in first: register, login, exit\n")
			}
		}

		cmd := replCommand(a)
		cmd.SetArgs(parts)
		cmd.SetOut(writerFunc(out))
		cmd.SetErr(writerFunc(out))
		if err := cmd.ExecuteContext(ctx); err != nil {
			out("Error: %v\n", err)
		}
	}
}

// writerFunc adapts a printf-style function to io.Writer.
type writerFunc func(format string, args ...any)

func (w writerFunc) Write(p []byte) (int, error) {
	w("%s", p)
	return len(p), nil
}
