/*
Package config provides type-safe configuration extraction and loading for
the textvars engine.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
Engine tunables are extracted with Settings:

	cfg, err := config.FromFile("textvars.yaml")
	if err != nil {
	    return err
	}
	engine := textvars.New(reg, textvars.WithSettings(cfg.Settings()))

# File Format

A settings file may also carry custom variable definitions, consumed by
registry.ParseDefinitions:

	currency_symbol: "€"
	date_format: "D MMMM YYYY"
	max_placeholders: 64
	missing: keep
	variables:
	  - name: couponCode
	    type: string
	    default: WELCOME10
	    category: custom

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
