package provider

import "errors"

// ErrOwnerAlreadyHasProfile is returned when a second live profile would be
// created for the same owner.
var ErrOwnerAlreadyHasProfile = errors.New("owner already has a provider profile")
