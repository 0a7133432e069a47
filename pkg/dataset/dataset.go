// Package dataset turns flat tabular records into hierarchies for the layout
// engine.
//
// The usual flow loads a CSV file, groups rows by a key column while summing a
// value column, and optionally splits the resulting groups into several
// clusters:
//
//	records, _ := dataset.Load(f)
//	groups, _ := dataset.Group(records, "groupid", "value")
//	in := dataset.Partition(groups, 4)
package dataset

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/hierarchy"
)

// Record is one data row keyed by column header.
type Record map[string]string

// Load reads CSV data with a header row.
func Load(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse csv")
	}
	if len(rows) == 0 {
		return nil, errors.InvalidInput("csv has no header row")
	}

	headers := rows[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := make(Record, len(headers))
		for j, h := range headers {
			if j < len(row) {
				rec[h] = row[j]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Columns returns the header names present in records, in sorted order.
func Columns(records []Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		for k := range r {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				out = append(out, k)
			}
		}
	}
	slices.Sort(out)
	return out
}

// Group buckets records by keyField in first-seen order and sums valueField
// per bucket. Each bucket becomes one leaf whose Value is the sum and whose
// Record holds the key and summed value.
func Group(records []Record, keyField, valueField string) ([]*hierarchy.Node, error) {
	return Nest(records, []string{keyField}, valueField)
}

// Nest groups records by each key field in turn, producing one tree level per
// key. Leaves sum valueField over their records.
func Nest(records []Record, keys []string, valueField string) ([]*hierarchy.Node, error) {
	if len(keys) == 0 {
		return nil, errors.InvalidInput("at least one key field is required")
	}
	for _, k := range append(slices.Clone(keys), valueField) {
		if err := errors.ValidateFieldName(k); err != nil {
			return nil, err
		}
	}
	if len(records) > 0 {
		cols := Columns(records)
		for _, k := range append(slices.Clone(keys), valueField) {
			if !slices.Contains(cols, k) {
				return nil, errors.InvalidInput("column %q not found (have %s)", k, strings.Join(cols, ", "))
			}
		}
	}
	return nest(records, keys, valueField)
}

func nest(records []Record, keys []string, valueField string) ([]*hierarchy.Node, error) {
	field := keys[0]

	var order []string
	buckets := make(map[string][]Record)
	for _, r := range records {
		k, ok := r[field]
		if !ok {
			return nil, errors.InvalidInput("record is missing key field %q", field)
		}
		if _, seen := buckets[k]; !seen {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], r)
	}

	nodes := make([]*hierarchy.Node, 0, len(order))
	for _, k := range order {
		if len(keys) > 1 {
			children, err := nest(buckets[k], keys[1:], valueField)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, hierarchy.Group(k, children...))
			continue
		}

		sum, err := sumField(buckets[k], valueField)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &hierarchy.Node{
			Key:   k,
			Value: sum,
			Record: map[string]string{
				field:      k,
				valueField: strconv.FormatFloat(sum, 'g', -1, 64),
			},
		})
	}
	return nodes, nil
}

func sumField(records []Record, field string) (float64, error) {
	total := 0.0
	for _, r := range records {
		raw := strings.TrimSpace(r[field])
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "value %q in column %q", raw, field)
		}
		total += v
	}
	return total, nil
}

// Partition deals nodes round-robin into n clusters: node i goes to cluster
// i mod n. With n <= 1 the nodes form a single cluster.
func Partition(nodes []*hierarchy.Node, n int) hierarchy.Input {
	if n <= 1 {
		return hierarchy.SingleCluster(nodes)
	}
	clusters := make([][]*hierarchy.Node, n)
	for i, node := range nodes {
		clusters[i%n] = append(clusters[i%n], node)
	}
	return hierarchy.MultiCluster(clusters)
}
