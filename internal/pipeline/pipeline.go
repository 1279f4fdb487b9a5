// Package pipeline composes the source adapters, the citekey generator and
// the property serializer behind one entry point per source type.
package pipeline

import (
	"context"
	"encoding/json"

	"github.com/MnacsM/papnt/internal/arxiv"
	"github.com/MnacsM/papnt/internal/bibtex"
	"github.com/MnacsM/papnt/internal/cache"
	"github.com/MnacsM/papnt/internal/crossref"
	"github.com/MnacsM/papnt/internal/jalc"
	"github.com/MnacsM/papnt/internal/notionprop"
	"github.com/MnacsM/papnt/internal/record"
)

// Pipeline turns source payloads into Notion property sets. Each call
// builds a fresh record and a fresh result; no state crosses invocations,
// so one Pipeline may serve concurrent lookups of different records.
type Pipeline struct {
	Crossref *crossref.Client
	Arxiv    *arxiv.Client
	JaLC     *jalc.Client

	// Cache, when set, stores raw source payloads keyed by DOI.
	Cache *cache.Cache

	// Propnames renames destination property keys.
	Propnames map[string]string
}

// FromDOI resolves a DOI through the registry, or through arXiv when the
// DOI carries the arXiv marker, and serializes the result.
func (p *Pipeline) FromDOI(ctx context.Context, doi string) (*notionprop.Result, error) {
	var rec record.Record

	if arxiv.IsArxivDOI(doi) {
		id, err := arxiv.ExtractID(doi)
		if err != nil {
			return nil, err
		}
		res, err := fetchCached(p.Cache, record.SourceArxiv, id, func() (arxiv.Result, error) {
			return p.Arxiv.Lookup(ctx, id)
		})
		if err != nil {
			return nil, err
		}
		rec = arxiv.MapResult(doi, res)
	} else {
		work, err := fetchCached(p.Cache, record.SourceCrossref, doi, func() (crossref.Work, error) {
			return p.Crossref.Work(ctx, doi)
		})
		if err != nil {
			return nil, err
		}
		rec = crossref.MapWork(work)
	}

	return notionprop.FromRecord(rec, p.Propnames)
}

// FromJaLC resolves a DOI through the Japan Link Center and serializes the
// result.
func (p *Pipeline) FromJaLC(ctx context.Context, doi string) (*notionprop.Result, error) {
	meta, err := fetchCached(p.Cache, record.SourceJaLC, doi, func() (jalc.Metadata, error) {
		return p.JaLC.Lookup(ctx, doi)
	})
	if err != nil {
		return nil, err
	}
	return notionprop.FromRecord(jalc.MapResponse(doi, meta), p.Propnames)
}

// FromBibTeX parses one raw BibTeX entry and serializes it. No network is
// involved.
func (p *Pipeline) FromBibTeX(src string) (*notionprop.Result, error) {
	return notionprop.FromRecord(bibtex.ParseEntry(src), p.Propnames)
}

// fetchCached looks the payload up in the cache before calling fetch, and
// stores fresh payloads afterwards. Cache failures fall through to a
// fetch; an unreadable cached payload is refetched and overwritten.
func fetchCached[T any](c *cache.Cache, source record.Source, key string, fetch func() (T, error)) (T, error) {
	if c != nil {
		if payload, ok, err := c.Get(string(source), key); err == nil && ok {
			var v T
			if err := json.Unmarshal(payload, &v); err == nil {
				return v, nil
			}
		}
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}

	if c != nil {
		if payload, err := json.Marshal(v); err == nil {
			_ = c.Put(string(source), key, payload)
		}
	}
	return v, nil
}
