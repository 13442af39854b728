package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/farmkeeper/internal/common"
	"github.com/dmitrijs2005/farmkeeper/internal/models"
)

// clearValue, entered in the profile editor, empties a field.
const clearValue = "-"

func (a *App) Whoami(ctx context.Context) error {
	acc, ok := a.auth.CurrentAccount()
	if !ok {
		return common.ErrNoActiveSession
	}
	a.printf("%s <%s> (%s)\n", acc.Name, acc.Email, acc.Role)
	return nil
}

// Profile prints the session account the way the profile screen shows it.
func (a *App) Profile(ctx context.Context) error {
	acc, ok := a.auth.CurrentAccount()
	if !ok {
		return common.ErrNoActiveSession
	}

	rows := [][2]string{
		{"Name", acc.Name},
		{"Email", acc.Email},
		{"Role", acc.Role.String()},
		{"Phone", acc.Profile.Phone},
		{"Address", acc.Profile.Address},
		{"Farm size", acc.Profile.FarmSize},
		{"Preferred crops", strings.Join(acc.Profile.PreferredCrops, ", ")},
		{"Certifications", strings.Join(acc.Profile.Certifications, ", ")},
	}
	for _, r := range rows {
		a.printf("%-16s %s\n", r[0]+":", r[1])
	}
	return nil
}

// Edit walks through the editable fields showing the current value. An empty
// answer keeps the field, "-" clears it.
func (a *App) Edit(ctx context.Context) error {
	acc, ok := a.auth.CurrentAccount()
	if !ok {
		return common.ErrNoActiveSession
	}

	var (
		patch   models.AccountPatch
		profile models.ProfilePatch
		changed bool
	)

	text := func(label, current string) (*string, error) {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), a.out)
		if err != nil || v == "" {
			return nil, err
		}
		if v == clearValue {
			v = ""
		}
		changed = true
		return &v, nil
	}
	list := func(label string, current []string) ([]string, error) {
		v, err := getList(a.reader, fmt.Sprintf("%s, comma-separated [%s]", label, strings.Join(current, ", ")), a.out)
		if err != nil || len(v) == 0 {
			return nil, err
		}
		changed = true
		if len(v) == 1 && v[0] == clearValue {
			return []string{}, nil
		}
		return v, nil
	}

	var err error
	if patch.Name, err = text("Name", acc.Name); err != nil {
		return err
	}
	if profile.Phone, err = text("Phone", acc.Profile.Phone); err != nil {
		return err
	}
	if profile.Address, err = text("Address", acc.Profile.Address); err != nil {
		return err
	}
	if profile.FarmSize, err = text("Farm size", acc.Profile.FarmSize); err != nil {
		return err
	}
	if profile.PreferredCrops, err = list("Preferred crops", acc.Profile.PreferredCrops); err != nil {
		return err
	}
	if profile.Certifications, err = list("Certifications", acc.Profile.Certifications); err != nil {
		return err
	}

	if !changed {
		a.println("Nothing changed")
		return nil
	}
	patch.Profile = &profile

	if _, err := a.auth.UpdateProfile(ctx, patch); err != nil {
		return err
	}
	a.println("Profile updated")
	return nil
}
