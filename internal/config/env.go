package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// applyEnvOverrides walks the config struct and replaces every field whose
// `env` tag names a set environment variable. Only the field kinds the
// Config struct actually uses are handled; a field of any other kind is a
// programming error and fails loading.
func applyEnvOverrides(config *Config) error {
	return overrideFields(reflect.ValueOf(config).Elem())
}

func overrideFields(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		// Sections (Server, Database, ...) are nested structs
		if field.Kind() == reflect.Struct {
			if err := overrideFields(field); err != nil {
				return err
			}
			continue
		}

		tag := t.Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}
		raw, set := os.LookupEnv(tag)
		if !set {
			continue
		}
		if err := assignEnvValue(field, raw); err != nil {
			return fmt.Errorf("invalid value for %s: %w", tag, err)
		}
	}
	return nil
}

func assignEnvValue(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", raw)
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported config field kind %s", field.Kind())
	}
	return nil
}
