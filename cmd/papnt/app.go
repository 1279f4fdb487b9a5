package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MnacsM/papnt/internal/arxiv"
	"github.com/MnacsM/papnt/internal/cache"
	"github.com/MnacsM/papnt/internal/config"
	"github.com/MnacsM/papnt/internal/crossref"
	"github.com/MnacsM/papnt/internal/jalc"
	"github.com/MnacsM/papnt/internal/notion"
	"github.com/MnacsM/papnt/internal/notionprop"
	"github.com/MnacsM/papnt/internal/pipeline"
)

// app bundles the configured clients shared by every command.
type app struct {
	cfg    *config.Config
	creds  config.Credentials
	notion *notion.Client
	pipe   *pipeline.Pipeline
	cache  *cache.Cache
}

// newApp loads configuration and credentials and wires up the clients.
func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		creds:  creds,
		notion: notion.NewClient(creds.Token),
	}

	if cfg.CachePath != "" {
		c, err := cache.Open(cfg.CachePath)
		if err != nil {
			return nil, err
		}
		a.cache = c
	}

	var crossrefOpts []crossref.ClientOption
	if cfg.Mailto != "" {
		crossrefOpts = append(crossrefOpts, crossref.WithMailto(cfg.Mailto))
	}
	a.pipe = &pipeline.Pipeline{
		Crossref:  crossref.NewClient(crossrefOpts...),
		Arxiv:     arxiv.NewClient(),
		JaLC:      jalc.NewClient(),
		Cache:     a.cache,
		Propnames: cfg.Propnames,
	}
	return a, nil
}

// mustApp exits with ExitConfigError when the app cannot be built.
func mustApp() *app {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitConfigError)
	}
	return a
}

// Close releases the cache, if one is open.
func (a *app) Close() {
	if a.cache != nil {
		a.cache.Close()
	}
}

// propname resolves a canonical destination key through the configured
// mapping, falling back to the key itself.
func (a *app) propname(key string) string {
	if name := a.cfg.Propnames[key]; name != "" {
		return name
	}
	return key
}

// uncheckedFilter selects records whose info checkbox is unset and whose
// given property is non-empty. kind names the property's Notion type.
func uncheckedFilter(prop, kind string) map[string]any {
	return map[string]any{
		"and": []any{
			map[string]any{
				"property": "info",
				"checkbox": map[string]any{"equals": false},
			},
			map[string]any{
				"property": prop,
				kind:       map[string]any{"is_not_empty": true},
			},
		},
	}
}

// applyResult writes a serializer result back to an existing page: the
// properties plus the info checkbox, then one paragraph per note.
func (a *app) applyResult(ctx context.Context, pageID string, result *notionprop.Result) error {
	props := result.Properties
	props["info"] = notionprop.NewCheckbox(true)
	if err := a.notion.UpdatePage(ctx, pageID, props); err != nil {
		return err
	}
	for _, note := range result.Notes {
		if err := a.notion.AppendParagraph(ctx, pageID, note); err != nil {
			return err
		}
	}
	return nil
}
