package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"emisora/internal/catalog"
	"emisora/internal/config"
	"emisora/internal/logging"
	"emisora/internal/matcher"
	"emisora/internal/vocab"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		if err := loadDotEnv(); err != nil {
			c.configErr = err
			return
		}
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// loadDotEnv applies ./.env without overriding variables already set.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// commandLogger returns the configured logger tagged with a per-invocation
// correlation id.
func (c *commandContext) commandLogger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		ctx := logging.WithCorrelationID(cmd.Context(), "")
		cmd.SetContext(ctx)
		c.logger = logging.WithContext(ctx, logger)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.commandLogger(cmd)
	if err != nil {
		return nil, err
	}
	format, err := catalog.ParseFormat(cfg.Catalog.Format)
	if err != nil {
		return nil, err
	}
	return catalog.Load(commandCtx(cmd), cfg.Catalog.Path, format, logger)
}

func (c *commandContext) newMatcher(cmd *cobra.Command) (*matcher.Matcher, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	cat, err := c.loadCatalog(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := c.commandLogger(cmd)
	if err != nil {
		return nil, err
	}
	voc, err := vocab.New(cfg.Matcher.Language)
	if err != nil {
		return nil, err
	}
	opts, err := matcher.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return matcher.New(cat, voc, opts, logger)
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
