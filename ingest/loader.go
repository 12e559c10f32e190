package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goodbooks/goodbooks-api/mongo"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const bulkBatchSize = 1000

// Loader pulls the GoodBooks CSV files and upserts their rows. With a data
// directory configured it reads local files; otherwise it downloads the
// published samples. Each dataset loads independently, so one bad file does
// not block the rest.
type Loader struct {
	db      mongo.Database
	log     *zap.SugaredLogger
	dataDir string
	client  *http.Client
}

func NewLoader(db mongo.Database, log *zap.SugaredLogger, dataDir string) *Loader {
	return &Loader{
		db:      db,
		log:     log,
		dataDir: dataDir,
		client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

func (l *Loader) Run(ctx context.Context) error {
	var errs []error
	for _, ds := range datasets() {
		if err := l.loadDataset(ctx, ds); err != nil {
			l.log.Errorw("dataset failed", "dataset", ds.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", ds.Name, err))
			continue
		}
	}
	return errors.Join(errs...)
}

func (l *Loader) loadDataset(ctx context.Context, ds Dataset) error {
	reader, closer, err := l.open(ctx, ds)
	if err != nil {
		return err
	}
	defer closer.Close()

	rows, err := readCSV(reader)
	if err != nil {
		return err
	}

	collection := l.db.Collection(ds.Collection)
	var matched, upserted int64
	for start := 0; start < len(rows); start += bulkBatchSize {
		end := start + bulkBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		bulk := collection.BulkWrite()
		for _, row := range rows[start:end] {
			bulk.AddModel(upsertModel(row, ds.KeyFields))
		}
		res, err := bulk.Execute(ctx)
		if err != nil {
			return fmt.Errorf("bulk write: %w", err)
		}
		matched += res.MatchedCount()
		upserted += res.UpsertedCount()
	}

	l.log.Infow("dataset loaded",
		"dataset", ds.Name,
		"rows", len(rows),
		"matched", matched,
		"upserted", upserted,
	)
	return nil
}

func (l *Loader) open(ctx context.Context, ds Dataset) (io.Reader, io.Closer, error) {
	if l.dataDir != "" {
		f, err := os.Open(filepath.Join(l.dataDir, ds.File))
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ds.URL, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("download %s: %w", ds.URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, nil, fmt.Errorf("download %s: status %d", ds.URL, resp.StatusCode)
	}
	return resp.Body, resp.Body, nil
}

// readCSV decodes a header-led CSV into one document per row. Values keep
// their CSV types where possible: integers stay integers, decimals become
// floats and everything else stays a string, including the empty string for
// missing cells.
func readCSV(r io.Reader) ([]bson.D, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make([]string, len(header))
	copy(columns, header)

	var rows []bson.D
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}

		row := make(bson.D, 0, len(columns))
		for i, col := range columns {
			row = append(row, bson.E{Key: col, Value: coerceValue(record[i])})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// coerceValue turns a CSV cell into an int64, float64 or string. The integer
// round-trip check keeps zero-padded codes like "0316015849" as strings
// instead of silently dropping their leading zeros.
func coerceValue(s string) interface{} {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if strconv.FormatInt(n, 10) == s {
			return n
		}
		return s
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// upsertModel builds an UpdateOne upsert keyed on the dataset's identifying
// columns, with the whole row as the $set payload.
func upsertModel(row bson.D, keyFields []string) driver.WriteModel {
	filter := filterByKeys(row, keyFields)
	return driver.NewUpdateOneModel().
		SetFilter(filter).
		SetUpdate(bson.D{{Key: "$set", Value: row}}).
		SetUpsert(true)
}

func filterByKeys(row bson.D, keyFields []string) bson.D {
	filter := make(bson.D, 0, len(keyFields))
	for _, key := range keyFields {
		for _, e := range row {
			if e.Key == key {
				filter = append(filter, e)
				break
			}
		}
	}
	return filter
}
