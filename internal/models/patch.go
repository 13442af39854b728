package models

// ProfilePatch is a partial profile. Nil scalar pointers leave the field
// untouched. A nil sequence leaves the field untouched; a non-nil sequence,
// even an empty one, replaces it wholesale.
type ProfilePatch struct {
	Phone          *string
	Address        *string
	FarmSize       *string
	PreferredCrops []string
	Certifications []string
}

// AccountPatch is a partial account accepted by a profile update. Only the
// display name and the profile are editable; id, email, role and password
// are not.
type AccountPatch struct {
	Name    *string
	Profile *ProfilePatch
}

// Registration is the input of a sign-up. Profile optionally seeds profile
// fields that would otherwise start empty.
type Registration struct {
	Name     string
	Email    string
	Password string
	Profile  *ProfilePatch
}

// ApplyTo merges p into prof one level deep and returns the result.
// prof is not modified.
func (p *ProfilePatch) ApplyTo(prof Profile) Profile {
	out := prof.Clone()
	if p == nil {
		return out
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.Address != nil {
		out.Address = *p.Address
	}
	if p.FarmSize != nil {
		out.FarmSize = *p.FarmSize
	}
	if p.PreferredCrops != nil {
		out.PreferredCrops = cloneStrings(p.PreferredCrops)
	}
	if p.Certifications != nil {
		out.Certifications = cloneStrings(p.Certifications)
	}
	return out
}

// ApplyTo merges p into a copy of acc: top-level fields shallowly, the
// profile one level deep.
func (p AccountPatch) ApplyTo(acc *Account) *Account {
	out := acc.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	out.Profile = p.Profile.ApplyTo(out.Profile)
	return out
}

// Ptr returns a pointer to v. It keeps patch literals short.
func Ptr[T any](v T) *T { return &v }
