package project

import (
	"log"

	"github.com/gantryhq/gantry/pkg/config"
)

// MigrateAppID rewrites the deprecated app_id key to pro_id. A non-empty
// app_id overwrites any existing pro_id; an empty one is removed without
// setting pro_id. The store runs this once per load, before any read, and
// persists the result.
func MigrateAppID(c config.Config) (bool, error) {
	raw, ok := c.Get("app_id")
	if !ok {
		return false, nil
	}

	if value, ok := raw.(string); ok && value != "" {
		if err := c.Set("pro_id", value); err != nil {
			return false, err
		}
	}

	log.Println("migrating deprecated app_id key to pro_id")

	if err := c.Unset("app_id"); err != nil {
		return false, err
	}

	return true, nil
}
