package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseEIP155 extracts the numeric chain id from a CAIP-2 style
// "eip155:<id>" identifier.
func ParseEIP155(chainID string) (uint64, error) {
	rest, ok := strings.CutPrefix(chainID, "eip155:")
	if !ok {
		return 0, fmt.Errorf("%w: %q is not an eip155 chain id", ErrInvalidChainID, chainID)
	}
	id, err := strconv.ParseUint(rest, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChainID, chainID)
	}
	return id, nil
}

// FormatEIP155 renders a numeric chain id in CAIP-2 form.
func FormatEIP155(id uint64) string {
	return "eip155:" + strconv.FormatUint(id, 10)
}
