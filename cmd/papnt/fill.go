package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MnacsM/papnt/internal/notionprop"
)

// fillUnchecked queries every unchecked page whose srcProp is non-empty,
// resolves the property's plain text through resolve, and writes the
// result back. A failing record is reported and skipped so one bad entry
// does not stall the rest.
func (a *app) fillUnchecked(ctx context.Context, srcProp, kind string, resolve func(ctx context.Context, src string) (*notionprop.Result, error)) error {
	pages, err := a.notion.QueryDatabase(ctx, a.creds.DatabaseID, uncheckedFilter(srcProp, kind))
	if err != nil {
		return fmt.Errorf("querying database: %w", err)
	}

	var failed int
	for _, page := range pages {
		src := page.Properties[srcProp].Plain()
		if src == "" {
			continue
		}
		result, err := resolve(ctx, src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", src, err)
			failed++
			continue
		}
		if err := a.applyResult(ctx, page.ID, result); err != nil {
			fmt.Fprintf(os.Stderr, "updating %q: %v\n", src, err)
			failed++
			continue
		}
		fmt.Printf("Updated: %s\n", src)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d records failed: %w", failed, len(pages), errRecordsFailed)
	}
	return nil
}
