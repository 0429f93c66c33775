package discord

import (
	"errors"
	"strconv"
)

const DiscordEpoch = 1420070400000

func ValidateSnowflake(snowflake string) error {
	_, err := ParseSnowflake(snowflake)
	return err
}

// ParseSnowflake parses a Discord ID, rejecting values that predate the Discord epoch.
func ParseSnowflake(snowflake string) (uint64, error) {
	if snowflake == "" {
		return 0, errors.New("empty string")
	}

	num, err := strconv.ParseUint(snowflake, 10, 64)
	if err != nil {
		return 0, err
	}

	if num < DiscordEpoch {
		return 0, errors.New("too small (prior to discord epoch)")
	}

	return num, nil
}
