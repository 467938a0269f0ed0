package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-confform/internal/config"
	"github.com/goliatone/go-confform/pkg/client"
)

// newCreator builds the outbound client for the configured endpoint.
func newCreator(ctx context.Context, cfg config.APIConfig, logger zerolog.Logger) (*client.Client, error) {
	opts := []client.Option{
		client.WithPath(cfg.Path),
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(logger),
	}
	if cfg.Contract {
		doc, err := loadContract(ctx)
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithContract(doc))
	}
	c, err := client.New(cfg.BaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}
	return c, nil
}
