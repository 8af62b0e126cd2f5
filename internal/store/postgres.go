package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobcrawl/internal/models"
)

// Repository is an optional archive sink for accepted records. The
// crawl's source of truth stays on disk; the table is for downstream
// querying.
type Repository struct {
	db *pgxpool.Pool
}

func Connect(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// IMPORTANT: Supabase connection pooler (PgBouncer in Transaction mode)
	// does not support prepared statements easily. We MUST disable the statement cache.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

const insertRecordSQL = `
	INSERT INTO job_records (
		job_category, job_code, company, title, location, salary_range,
		experience, degree, tags, skills, company_size, company_stage,
		industry, description
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// SaveRecords batch-inserts one category's accepted records.
func (r *Repository) SaveRecords(ctx context.Context, categoryName, categoryCode string, records []*models.JobRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(insertRecordSQL,
			categoryName, categoryCode,
			rec.Company, rec.Title, rec.Location, rec.Salary,
			rec.Experience, rec.Degree, rec.Tags, strings.Join(rec.Skills, ","),
			rec.CompanySize, rec.CompanyStage, rec.Industry, rec.Description,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert job record: %w", err)
		}
	}
	return nil
}

func (r *Repository) Close() {
	r.db.Close()
}
