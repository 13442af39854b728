package cli

import (
	"bytes"
	"context"

	"github.com/dmitrijs2005/farmkeeper/internal/common"
	"github.com/dmitrijs2005/farmkeeper/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getList       = GetList
)

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := requireFields("Email", email); err != nil {
		return err
	}
	if err := requireSecret("Password", password); err != nil {
		return err
	}

	acc, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.printf("Welcome, %s!\n", acc.Name)
	return nil
}

// Register prompts for the registration form and creates a farmer account.
// Every field is required. Blank fields and a confirmation that differs from
// the password are rejected before the authority is called.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Enter address", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := requireFields("Name", name, "Email", email, "Phone", phone, "Address", address); err != nil {
		return err
	}
	if err := requireSecret("Password", password); err != nil {
		return err
	}
	if err := requireSecret("Confirm password", confirm); err != nil {
		return err
	}
	if !bytes.Equal(password, confirm) {
		return ErrPasswordMismatch
	}

	acc, err := a.auth.Register(ctx, models.Registration{
		Name:     name,
		Email:    email,
		Password: string(password),
		Profile: &models.ProfilePatch{
			Phone:   models.Ptr(phone),
			Address: models.Ptr(address),
		},
	})
	if err != nil {
		return err
	}

	a.printf("Account created. Welcome, %s!\n", acc.Name)
	return nil
}

// Reset runs both steps of the password reset form. The issued ticket is
// printed in place of the e-mailed link; an empty answer to the ticket
// prompt uses it as is.
func (a *App) Reset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your email to reset your password", a.out)
	if err != nil {
		return err
	}
	if err := requireFields("Email", email); err != nil {
		return err
	}

	issued, err := a.auth.RequestPasswordReset(ctx, email)
	if err != nil {
		return err
	}
	a.printf("Reset ticket: %s\n", issued)

	ticket, err := getSimpleText(a.reader, "Enter reset ticket (empty to use the one above)", a.out)
	if err != nil {
		return err
	}
	if ticket == "" {
		ticket = issued
	}

	password, err := getPassword(a.reader, "Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := requireSecret("New password", password); err != nil {
		return err
	}
	if err := a.auth.ResetPassword(ctx, ticket, string(password)); err != nil {
		return err
	}

	a.println("Password updated. Please log in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout()
	a.println("Logged out")
	return nil
}
