// Package config holds the env-tagged configuration structs shared by the
// commands. Values are loaded with cleanenv; each struct documents its
// environment variables and defaults through struct tags.
package config
