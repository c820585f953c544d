package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bowlsignup/internal/client/client"
	"github.com/dmitrijs2005/bowlsignup/internal/client/router"
	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

// now is a seam for list rendering.
var now = time.Now

func (a *App) view() router.View {
	return a.router.Current()
}

func (a *App) Navigate(token string) router.View {
	return a.router.Navigate(token)
}

// Signup walks the user through the sign-up form and submits it once.
func (a *App) Signup(ctx context.Context) error {
	var c models.Candidate
	var err error

	if c.Name, err = GetSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if c.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if c.Phone, err = GetSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	if c.OptedIn, err = Confirm(a.reader, "Keep me posted about future contests?", a.out); err != nil {
		return err
	}

	err = a.signup.Submit(ctx, c)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Thanks for signing up!")
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintf(a.out, "Please check the form: %v\n", err)
	case errors.Is(err, common.ErrDuplicateRejected):
		fmt.Fprintln(a.out, "This email or phone number is already signed up.")
	default:
		fmt.Fprintln(a.out, "Could not save your sign-up, please try again later.")
	}
	return err
}

// Login prompts for the admin password and opens the admin view on
// success.
func (a *App) Login(ctx context.Context) error {
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.auth.Login(ctx, password); err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			fmt.Fprintln(a.out, "Wrong password.")
		case errors.Is(err, client.ErrUnavailable):
			fmt.Fprintln(a.out, "Server unavailable, try again later.")
		default:
			fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		}
		return err
	}

	a.router.LoginSucceeded()
	fmt.Fprintln(a.out, "Signed in. View:", a.view().String())
	return nil
}

// List prints the mirrored sign-ups.
func (a *App) List(ctx context.Context) error {
	if a.records.Loading() {
		fmt.Fprintln(a.out, "Loading...")
		return nil
	}
	if err := a.records.Err(); err != nil {
		fmt.Fprintf(a.out, "Live updates stopped, the list may be out of date: %v\n", err)
	}
	return renderList(a.out, a.records.Records(), now())
}

// Delete removes one sign-up after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	var err error
	if id == "" {
		if id, err = GetSimpleText(a.reader, "Enter bowler id to delete", a.out); err != nil {
			return err
		}
		if id == "" {
			return nil
		}
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete bowler %s?", id), a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.admin.Delete(ctx, id); err != nil {
		a.reportAdminError(err)
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// Clear deletes every sign-up currently listed after confirmation.
func (a *App) Clear(ctx context.Context) error {
	n := len(a.records.Records())
	if n == 0 {
		fmt.Fprintln(a.out, "The list is already empty.")
		return nil
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete all %d bowler(s)? This cannot be undone.", n), a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.admin.ClearAll(ctx); err != nil {
		a.reportAdminError(err)
		return err
	}
	fmt.Fprintln(a.out, "List cleared.")
	return nil
}

// Export downloads a CSV of the list.
func (a *App) Export(ctx context.Context) error {
	path, err := a.admin.Export(ctx)
	if err != nil {
		a.reportAdminError(err)
		return err
	}
	fmt.Fprintln(a.out, "Export saved to", path)
	return nil
}

func (a *App) reportAdminError(err error) {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Not authorized, the admin session may have expired.")
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, "No such bowler.")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later.")
	default:
		fmt.Fprintf(a.out, "Operation failed: %v\n", err)
	}
}
