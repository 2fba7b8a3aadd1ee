package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                    { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error  { return f.record("register") }
func (f *fakeExec) Mine(ctx context.Context) error      { return f.record("mine") }
func (f *fakeExec) Back(ctx context.Context) error      { return f.record("back") }
func (f *fakeExec) New(ctx context.Context) error       { return f.record("new") }
func (f *fakeExec) Profile(ctx context.Context) error   { return f.record("profile") }
func (f *fakeExec) Status(ctx context.Context) error    { return f.record("status") }
func (f *fakeExec) EditProfile(context.Context) error   { return f.record("editprofile") }
func (f *fakeExec) Browse(_ context.Context, q string) error {
	return f.record("browse:" + q)
}
func (f *fakeExec) Filter(_ context.Context, c string) error { return f.record("filter:" + c) }
func (f *fakeExec) Sort(_ context.Context, c string) error   { return f.record("sort:" + c) }
func (f *fakeExec) Show(_ context.Context, id string) error  { return f.record("show:" + id) }
func (f *fakeExec) Edit(_ context.Context, id string) error  { return f.record("edit:" + id) }
func (f *fakeExec) Delete(_ context.Context, id string) error {
	return f.record("delete:" + id)
}
func (f *fakeExec) Sold(_ context.Context, id string) error { return f.record("sold:" + id) }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesWithArguments(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"browse mini fridge",
		"filter living",
		"sort price-low",
		"show 7",
		"back",
		"mine",
		"new",
		"edit 7",
		"sold 7",
		"delete 7",
		"profile",
		"editprofile",
		"status",
		"",
		"foobar",
		"logout",
		"exit",
		"status",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"login", "browse:mini fridge", "filter:living", "sort:price-low", "show:7", "back",
		"mine", "new", "edit:7", "sold:7", "delete:7", "profile", "editprofile", "status", "logout",
	}, exec.calls)

	assert.Contains(t, *out, helpLoggedOut)
	assert.Contains(t, *out, helpLoggedIn)
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader("show\nedit  \nfilter\nquit\nshow 1\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Usage: show <id>")
	assert.Contains(t, *out, "Usage: edit <id>")
	assert.Contains(t, *out, argCommands["filter"])
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("register")))
	assert.Equal(t, []string{"register"}, exec.calls)
}
