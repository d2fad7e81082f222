// Package config resolves the catalog backend address for bookdeck.
//
// Resolution order: built-in local default, then the TOML config file
// (~/.config/bookdeck/config.toml), then the BOOKDECK_API environment
// variable. A .env file in the working directory is honored.
package config
