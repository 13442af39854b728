// Package common contains shared constants, sentinel errors and small random
// helpers used across FarmKeeper components.
package common

// DefaultResetTicketSize is the number of random bytes behind a password
// reset ticket. The ticket itself is hex encoded, so it is twice as long.
const DefaultResetTicketSize = 16
