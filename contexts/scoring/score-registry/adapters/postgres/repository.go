package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tally/contexts/scoring/score-registry/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the durable StateStore adapter. The registry's whole
// namespace lives in one entry table; keys carry the region prefixes, so the
// table stays schema-free about what the registry stores.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type entryModel struct {
	Key       []byte    `gorm:"column:entry_key;primaryKey;type:bytea"`
	Value     []byte    `gorm:"column:entry_value;type:bytea"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (entryModel) TableName() string {
	return "registry_entries"
}

// Migrate creates the entry table when it does not exist yet.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&entryModel{}); err != nil {
		return fmt.Errorf("migrate registry_entries: %w", err)
	}
	return nil
}

func (r *Repository) Load(ctx context.Context, key []byte) ([]byte, bool, error) {
	var row entryModel
	err := r.db.WithContext(ctx).
		Where("entry_key = ?", key).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, r.logError("registry_repo_load_failed", err, "key", string(key))
	}
	return row.Value, true, nil
}

func (r *Repository) Store(ctx context.Context, key []byte, value []byte) error {
	row := entryModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"entry_value": row.Value,
			"updated_at":  row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return r.logError("registry_repo_store_failed", create.Error, "key", string(key))
	}
	return nil
}

func (r *Repository) Range(ctx context.Context, prefix []byte) ([]ports.KeyValue, error) {
	tx := r.db.WithContext(ctx).Where("entry_key >= ?", prefix)
	if end := prefixEnd(prefix); end != nil {
		tx = tx.Where("entry_key < ?", end)
	}

	var rows []entryModel
	err := tx.Order("entry_key ASC").Find(&rows).Error
	if err != nil {
		return nil, r.logError("registry_repo_range_failed", err, "prefix", string(prefix))
	}
	pairs := make([]ports.KeyValue, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, ports.KeyValue{Key: row.Key, Value: row.Value})
	}
	return pairs, nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	if isUndefinedTable(err) {
		err = fmt.Errorf("registry_entries table is missing, run migrations: %w", err)
	}
	fields := append([]any{
		"event", event,
		"module", "scoring/score-registry",
		"layer", "adapters/postgres",
		"error", err.Error(),
	}, args...)
	r.logger.Error("registry storage operation failed", fields...)
	return err
}

// prefixEnd returns the smallest key greater than every key with the given
// prefix, for a half-open range scan.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}

// SystemClock implements ports.Clock on the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator implements ports.IDGenerator using RFC 4122 UUID v4 values.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.StateStore = (*Repository)(nil)
