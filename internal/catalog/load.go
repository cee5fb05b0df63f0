package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"emisora/internal/logging"
)

// Format selects the on-disk catalog layout.
type Format string

const (
	FormatAuto   Format = ""
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

const lockRetryDelay = 50 * time.Millisecond

// ParseFormat resolves a configured format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	default:
		return FormatAuto, fmt.Errorf("unsupported catalog format %q", value)
	}
}

// DetectFormat infers the layout from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// Load reads a catalog. An empty path loads the embedded default catalog.
// When a "<path>.lock" file exists, a shared lock is held while reading so a
// concurrent WriteFile cannot be observed half-written.
func Load(ctx context.Context, path string, format Format, logger *slog.Logger) (*Catalog, error) {
	logger = logging.NewComponentLogger(logger, "catalog")
	path = strings.TrimSpace(path)
	if path == "" {
		cat, err := Default()
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded embedded catalog", logging.Int("station_count", cat.Len()))
		return cat, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat catalog: %w", err)
	}
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	unlock, err := sharedLock(ctx, path)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var (
		stations []Station
		skipped  int
	)
	switch format {
	case FormatSQLite:
		stations, skipped, err = readSQLite(ctx, path)
	case FormatJSON:
		stations, skipped, err = readJSONFile(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	if skipped > 0 {
		logging.WarnWithContext(logger, "skipped malformed catalog entries", "catalog_entries_skipped",
			logging.Int("skipped", skipped),
			logging.String("path", path),
			logging.String(logging.FieldErrorHint, "every station needs a name"),
			logging.String(logging.FieldImpact, "skipped stations are not searchable"),
		)
	}
	cat := New(path, stations)
	logger.Debug("loaded catalog",
		logging.String("path", path),
		logging.String("format", string(format)),
		logging.Int("station_count", cat.Len()),
		logging.Int("playable_count", len(cat.Playable())),
	)
	return cat, nil
}

// WriteFile stores the catalog at path in the given layout. The file is
// written to a temporary sibling and renamed into place under an exclusive
// "<path>.lock" lock.
func WriteFile(ctx context.Context, path string, format Format, cat *Catalog) error {
	if format == FormatAuto {
		format = DetectFormat(path)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock catalog: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock catalog: %s is busy", path)
	}
	defer lock.Unlock()

	tmpPath := path + ".tmp"
	switch format {
	case FormatSQLite:
		err = writeSQLite(ctx, tmpPath, cat.stations)
	case FormatJSON:
		err = writeJSONFile(tmpPath, cat.stations)
	default:
		err = fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename catalog: %w", err)
	}
	return nil
}

func sharedLock(ctx context.Context, path string) (func(), error) {
	lockPath := path + ".lock"
	if _, err := os.Stat(lockPath); err != nil {
		return func() {}, nil
	}
	lock := flock.New(lockPath)
	locked, err := lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock catalog: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("lock catalog: %s is busy", path)
	}
	return func() { _ = lock.Unlock() }, nil
}

func readJSONFile(path string) ([]Station, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()
	return decodeJSON(file)
}

func writeJSONFile(path string, stations []Station) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	if err := encodeJSON(file, stations); err != nil {
		file.Close()
		return fmt.Errorf("encode catalog: %w", err)
	}
	return file.Close()
}
