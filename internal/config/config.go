// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves the clinote configuration: an explicit file,
// clinote.yaml in the working directory or ~/.config/clinote/, CLINOTE_*
// environment overrides, and built-in defaults, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/meshintel/clinote/pkg/types"
)

// Load resolves the configuration. path may be empty, in which case the
// standard locations are searched and missing files fall back to
// defaults; an explicit path that cannot be read is an error.
func Load(path string) (*types.Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("clinote")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "clinote"))
		}
	}

	v.SetEnvPrefix("CLINOTE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks a resolved configuration: struct shape via validator
// tags, then section-order entries against the canonical vocabulary.
func Validate(cfg *types.Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	orders := map[string][]string{
		"formats.soap":      cfg.Formats.SOAP.SectionOrder,
		"formats.hp":        cfg.Formats.HP.SectionOrder,
		"formats.discharge": cfg.Formats.Discharge.SectionOrder,
	}
	for key, order := range orders {
		for _, name := range order {
			if _, ok := types.ParseSectionName(name); !ok {
				return fmt.Errorf("invalid config: %s.section_order contains unknown section %q", key, name)
			}
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := types.DefaultConfig()
	v.SetDefault("formats.soap.section_order", def.Formats.SOAP.SectionOrder)
	v.SetDefault("formats.hp.section_order", def.Formats.HP.SectionOrder)
	v.SetDefault("formats.discharge.section_order", def.Formats.Discharge.SectionOrder)
	v.SetDefault("heading_aliases", def.HeadingAliases)
	v.SetDefault("enable_fallback_heuristics", def.EnableFallbackHeuristics)
	v.SetDefault("bundle.mode_default", string(def.Bundle.ModeDefault))
	v.SetDefault("bundle.delimiters", def.Bundle.Delimiters)
	v.SetDefault("csv.layout", string(def.CSV.Layout))
	v.SetDefault("glob_default", def.GlobDefault)
}
