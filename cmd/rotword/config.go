package main

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"rotword/internal/ctxlog"
	"rotword/internal/rec"
	"rotword/internal/rotate"

	"github.com/goccy/go-yaml"
)

//go:embed config.yaml
var defaultConfig []byte

type Config struct {
	Log    ctxlog.Config `yaml:"log"`
	Format rotate.Format `yaml:"format"`
}

func LoadConfig(ctx context.Context, r io.Reader) (config Config, err error) {
	defer rec.Wrap(&err, "yaml: %w")

	dec := yaml.NewDecoder(r, yaml.Strict())

	err = dec.Decode(&config)
	if err != nil {
		return Config{}, err
	}

	ctxlog.Get(ctx).Debug("config loaded", "config", config)
	return config, nil
}

func DefaultConfig(ctx context.Context) (Config, error) {
	return LoadConfig(ctx, bytes.NewReader(defaultConfig))
}
