package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
)

// parseID returns the id when identifier is made of digits only.
func parseID(identifier string) (int64, bool) {
	if identifier == "" {
		return 0, false
	}
	for _, c := range identifier {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// optionalReference trims value and maps "clear" to an empty reference.
func optionalReference(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, domain.ClearValue) {
		return "", nil
	}
	if value == "" {
		return "", fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidArgument, field)
	}
	return value, nil
}

func requireName(name, kind string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s name cannot be empty", domain.ErrInvalidArgument, kind)
	}
	return name, nil
}
