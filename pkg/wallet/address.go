package wallet

import "strings"

const (
	addressPrefix = "T"
	addressLength = 34
)

// ValidateAddress reports whether a string looks like a TRON base58 address:
// 'T' prefix, 34 characters.
func ValidateAddress(address string) bool {
	return len(address) == addressLength && strings.HasPrefix(address, addressPrefix)
}
