package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(s string) error {
	f.calls = append(f.calls, s)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                   { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) {
	f.loggedIn = false
	_ = f.record("logout")
}
func (f *fakeExec) ListThreads(ctx context.Context) error { return f.record("threads") }
func (f *fakeExec) OpenThread(ctx context.Context, counterpartID, listingID string) error {
	return f.record("open " + counterpartID + " " + listingID)
}
func (f *fakeExec) Show(ctx context.Context, threadID string) error {
	return f.record("show " + threadID)
}
func (f *fakeExec) Send(ctx context.Context, threadID, text string) error {
	return f.record("send " + threadID + " " + text)
}
func (f *fakeExec) MarkRead(ctx context.Context, threadID string) error {
	return f.record("read " + threadID)
}
func (f *fakeExec) Watch(ctx context.Context, threadID string) error {
	return fmt.Errorf("watch %s: not here", threadID)
}

func runLines(t *testing.T, exec *fakeExec, lines ...string) string {
	t.Helper()
	var out strings.Builder
	printf := func(format string, args ...any) { fmt.Fprintf(&out, format, args...) }

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc, printf)
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	out := runLines(t, exec,
		"help",
		"login",
		"threads",
		"l",
		"open seller-1 listing-9",
		"show t1",
		"send t1 Is this car   still available? -5% off?",
		"read t1",
		"logout",
		"exit",
		"register",
	)

	assert.Equal(t, []string{
		"login",
		"threads",
		"threads",
		"open seller-1 listing-9",
		"show t1",
		"send t1 Is this car still available? -5% off?",
		"read t1",
		"logout",
	}, exec.calls)
	assert.Contains(t, out, "Log in first")
	assert.Contains(t, out, "Bye!")
	assert.Contains(t, out, "cs status> ")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	out := runLines(t, exec,
		"foobar",
		"show",
		"send t1",
		"open only-one",
		"watch t1",
		"",
		"read t2",
		"quit",
	)

	assert.Equal(t, []string{"read t2"}, exec.calls)
	assert.Contains(t, out, `unknown command "foobar"`)
	assert.Contains(t, out, "usage: send <threadID> <message...>")
	assert.Contains(t, out, "watch t1: not here")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	runLines(t, exec, "register")
	assert.Equal(t, []string{"register"}, exec.calls)
}

func TestReplCommand_HelpListsCommands(t *testing.T) {
	var out strings.Builder
	cmd := replCommand(&fakeExec{})
	cmd.SetArgs([]string{"help"})
	cmd.SetOut(&out)

	assert.NoError(t, cmd.Execute())
	for _, name := range []string{"register", "login", "logout", "threads", "open", "show", "send", "read", "watch"} {
		assert.Contains(t, out.String(), name)
	}
}
