package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/tzpay/payconsole/internal/api"
)

// Profile fetches and prints the business profile.
func (a *App) Profile(ctx context.Context) error {
	b, err := a.api.BusinessProfile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrNoBusiness) {
			fmt.Fprintln(a.out, "No business is associated with this account yet.")
			return err
		}
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Name:         %s\n", b.Name)
	fmt.Fprintf(a.out, "Email:        %s\n", b.Email)
	fmt.Fprintf(a.out, "Phone:        %s\n", b.Phone)
	fmt.Fprintf(a.out, "Address:      %s\n", b.Address)
	fmt.Fprintf(a.out, "Reg. number:  %s\n", b.BusinessRegNumber)
	return nil
}

// EditProfile re-prompts every business field with the current value as the
// default and submits the full object, as the backend expects a complete
// PUT. On failure the edits are shown back so nothing the user typed is
// lost.
func (a *App) EditProfile(ctx context.Context) error {
	b, err := a.api.BusinessProfile(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}

	if b.Name, err = GetWithDefault(a.reader, "Business name", b.Name, a.out); err != nil {
		return err
	}
	if b.Email, err = GetWithDefault(a.reader, "Business email", b.Email, a.out); err != nil {
		return err
	}
	if b.Phone, err = GetWithDefault(a.reader, "Business phone", b.Phone, a.out); err != nil {
		return err
	}
	if b.Address, err = GetWithDefault(a.reader, "Business address", b.Address, a.out); err != nil {
		return err
	}
	if b.BusinessRegNumber, err = GetWithDefault(a.reader, "Registration number", b.BusinessRegNumber, a.out); err != nil {
		return err
	}

	updated, err := a.api.UpdateBusinessProfile(ctx, *b)
	if err != nil {
		fmt.Fprintf(a.out, "Update failed: %s\n", err)
		fmt.Fprintln(a.out, "Your edits were not saved; run editprofile again to retry.")
		return err
	}

	fmt.Fprintf(a.out, "Profile updated: %s\n", updated.Name)
	return nil
}
