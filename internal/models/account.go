// Package models defines the account records kept in the directory and the
// views and patches exchanged with the authority.
package models

import "slices"

// Profile holds the farm-related details of an account.
type Profile struct {
	Phone          string
	Address        string
	FarmSize       string
	PreferredCrops []string
	Certifications []string
}

// Clone returns a deep copy of p. Sequences are never nil in the copy.
func (p Profile) Clone() Profile {
	c := p
	c.PreferredCrops = cloneStrings(p.PreferredCrops)
	c.Certifications = cloneStrings(p.Certifications)
	return c
}

// Account is a directory record. Password is stored and compared verbatim.
type Account struct {
	ID       string
	Email    string
	Password string
	Name     string
	Role     Role
	Profile  Profile
}

// Clone returns a deep copy of a.
func (a *Account) Clone() *Account {
	c := *a
	c.Profile = a.Profile.Clone()
	return &c
}

// PublicAccount is the view of an Account handed to collaborators. It has no
// password field, so a secret can never leak through it.
type PublicAccount struct {
	ID      string
	Email   string
	Name    string
	Role    Role
	Profile Profile
}

// Public projects a onto its public view.
func (a *Account) Public() *PublicAccount {
	return &PublicAccount{
		ID:      a.ID,
		Email:   a.Email,
		Name:    a.Name,
		Role:    a.Role,
		Profile: a.Profile.Clone(),
	}
}

// Clone returns a deep copy of p.
func (p *PublicAccount) Clone() *PublicAccount {
	c := *p
	c.Profile = p.Profile.Clone()
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
