package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/circlegrid/pkg/dataset"
	"github.com/matzehuels/circlegrid/pkg/grid"
	"github.com/matzehuels/circlegrid/pkg/hierarchy"
	"github.com/matzehuels/circlegrid/pkg/observability"
	"github.com/matzehuels/circlegrid/pkg/render/circles"
)

// Load parses CSV data into clusters: records are nested by the key
// fields, leaves sum the value field, and the top-level groups are dealt
// round-robin into opts.Clusters clusters.
func Load(ctx context.Context, data []byte, opts Options) (hierarchy.Input, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()

	records, err := dataset.Load(bytes.NewReader(data))
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Input, 0, time.Since(start), err)
		return nil, err
	}
	groups, err := dataset.Nest(records, opts.KeyFields, opts.ValueField)
	hooks.OnLoadComplete(ctx, opts.Input, len(records), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("loaded records", "records", len(records), "groups", len(groups))
	return dataset.Partition(groups, opts.Clusters), nil
}

// GenerateLayout packs every cluster of in into its grid cell.
func GenerateLayout(ctx context.Context, in hierarchy.Input, opts Options) (circles.Layout, error) {
	hooks := observability.Pipeline()
	nodes := 0
	for _, c := range in.Clusters() {
		nodes += hierarchy.Count(c)
	}
	hooks.OnLayoutStart(ctx, len(in.Clusters()), nodes)
	start := time.Now()

	l, err := circles.Build(grid.Config{
		Width:   opts.Width,
		Height:  opts.Height,
		Size:    opts.SizeFunc(),
		Padding: opts.Padding,
	}, in, opts.Margin)

	hooks.OnLayoutComplete(ctx, len(l.Circles), time.Since(start), err)
	return l, err
}
