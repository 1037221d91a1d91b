// Package domain defines the typed identifiers shared across merit modules.
//
// Identifiers are distinct named types so a badge id can never be passed where
// an account is expected. Parsing lives here because handlers, stores and
// services all sit behind the same trust boundary rules.
package domain

import (
	"strconv"
	"strings"

	dErrors "merit/pkg/domain-errors"
)

// Account is a ledger account address: 0x-prefixed, 40 hex characters,
// normalized to lower case. The execution environment authenticates it; this
// package only validates shape.
type Account string

// ZeroAccount is the null-owner sentinel used internally by minting. It is a
// valid address shape but never a real badge owner.
const ZeroAccount Account = "0x0000000000000000000000000000000000000000"

const accountHexLen = 40

// ParseAccount validates and normalizes an account address.
func ParseAccount(raw string) (Account, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "account is required")
	}
	if !strings.HasPrefix(s, "0x") || len(s) != 2+accountHexLen {
		return "", dErrors.New(dErrors.CodeInvalidInput, "account must be a 0x-prefixed 40-hex-char address")
	}
	for _, c := range s[2:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", dErrors.New(dErrors.CodeInvalidInput, "account contains non-hex characters")
		}
	}
	return Account(s), nil
}

func (a Account) String() string { return string(a) }

// IsZero reports whether the account is empty or the null-owner sentinel.
func (a Account) IsZero() bool {
	return a == "" || a == ZeroAccount
}

// BadgeID identifies an issued badge. IDs start at 1 and are contiguous; 0 is
// never issued.
type BadgeID uint64

// ParseBadgeID parses a decimal badge id from a path or payload.
func ParseBadgeID(raw string) (BadgeID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "badge id is required")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "badge id must be a positive integer")
	}
	if n == 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "badge id 0 is never issued")
	}
	return BadgeID(n), nil
}

func (id BadgeID) String() string { return strconv.FormatUint(uint64(id), 10) }
