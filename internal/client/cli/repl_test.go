package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/bowlsignup/internal/client/router"
)

type fakeExec struct {
	r     *router.Router
	calls []string
	ids   []string
}

func newFakeExec() *fakeExec {
	return &fakeExec{r: router.New("", router.Session{})}
}

func (f *fakeExec) view() router.View { return f.r.Current() }
func (f *fakeExec) Navigate(token string) router.View {
	return f.r.Navigate(token)
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.r.LoginSucceeded()
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	f.ids = append(f.ids, id)
	return nil
}
func (f *fakeExec) Clear(ctx context.Context) error { f.calls = append(f.calls, "clear"); return nil }
func (f *fakeExec) Export(ctx context.Context) error {
	f.calls = append(f.calls, "export")
	return nil
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func TestRunREPL_PublicThenAdminFlow(t *testing.T) {
	silence(t)

	input := "help\nsignup\nlist\ngo #/admin\nsignup\nlogin\nlist\ndelete r1\nclear\nexport\nfoobar\nexit\nsignup\n"
	exec := newFakeExec()

	runREPL(context.Background(), exec, func() string { return "s" }, rdr(input))

	assert.Equal(t, []string{"signup", "login", "list", "delete", "clear", "export"}, exec.calls)
	assert.Equal(t, []string{"r1"}, exec.ids)
	assert.Equal(t, router.AdminPanel, exec.view())
}

func TestRunREPL_AdminCommandsRefusedOnLoginView(t *testing.T) {
	printed := silence(t)

	exec := newFakeExec()
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("go #/admin\nclear\nquit\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *printed, `"clear" is not available on the admin-login view`)
}

func TestRunREPL_GoUsageAndEOF(t *testing.T) {
	printed := silence(t)

	exec := newFakeExec()
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("go\n\ngo #/other"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *printed, "Usage: go <token>, e.g. go #/admin")
	assert.Equal(t, router.PublicForm, exec.view())
}

func TestHelpFor(t *testing.T) {
	assert.Contains(t, helpFor(router.PublicForm), "signup")
	assert.Contains(t, helpFor(router.AdminLogin), "login")
	assert.Contains(t, helpFor(router.AdminPanel), "clear")
}
