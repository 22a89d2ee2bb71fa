package jobsource

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/logger"
	"github.com/spigell/careerbuddy/internal/profile"
)

const schema = `CREATE TABLE IF NOT EXISTS jobs (
	id               TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	company          TEXT NOT NULL DEFAULT '',
	description      TEXT NOT NULL DEFAULT '',
	requirements     TEXT NOT NULL DEFAULT '[]',
	skills           TEXT NOT NULL DEFAULT '[]',
	experience_level TEXT NOT NULL,
	location         TEXT NOT NULL DEFAULT '',
	location_type    TEXT NOT NULL,
	employment_type  TEXT NOT NULL DEFAULT '',
	salary_min       INTEGER,
	salary_max       INTEGER,
	industry         TEXT NOT NULL DEFAULT '',
	benefits         TEXT NOT NULL DEFAULT '[]',
	url              TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL DEFAULT (datetime('now'))
)`

const selectListings = `SELECT id, title, company, description, requirements, skills,
	experience_level, location, location_type, employment_type,
	salary_min, salary_max, industry, benefits, url
FROM jobs
ORDER BY created_at, rowid`

const upsertListing = `INSERT INTO jobs (id, title, company, description, requirements, skills,
	experience_level, location, location_type, employment_type,
	salary_min, salary_max, industry, benefits, url)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	title = excluded.title,
	company = excluded.company,
	description = excluded.description,
	requirements = excluded.requirements,
	skills = excluded.skills,
	experience_level = excluded.experience_level,
	location = excluded.location,
	location_type = excluded.location_type,
	employment_type = excluded.employment_type,
	salary_min = excluded.salary_min,
	salary_max = excluded.salary_max,
	industry = excluded.industry,
	benefits = excluded.benefits,
	url = excluded.url`

// SQLite stores listings in a local database file.
type SQLite struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(path string, log *zap.Logger) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}

	return &SQLite{db: db, path: path, logger: logger.OrNop(log)}, nil
}

func (s *SQLite) Name() string { return KindSQLite }

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) FetchCandidateJobs(ctx context.Context, _ *profile.UserProfile) ([]jobs.Listing, error) {
	rows, err := s.db.QueryContext(ctx, selectListings)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query jobs: %w", err)
	}
	defer rows.Close()

	listings := []jobs.Listing{}
	for rows.Next() {
		item, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scan job: %w", err)
		}
		listings = append(listings, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate jobs: %w", err)
	}

	s.logger.Debug("loaded jobs from sqlite", zap.String("path", s.path), zap.Int("count", len(listings)))

	return listings, nil
}

// Save inserts listings, replacing rows with the same id. It returns the
// number of rows written.
func (s *SQLite) Save(ctx context.Context, listings []jobs.Listing) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, upsertListing)
	if err != nil {
		return 0, fmt.Errorf("sqlite: prepare: %w", err)
	}
	defer stmt.Close()

	for i := range listings {
		args, err := listingArgs(&listings[i])
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("sqlite: save job %q: %w", listings[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite: commit: %w", err)
	}

	s.logger.Info("saved jobs to sqlite", zap.String("path", s.path), zap.Int("count", len(listings)))

	return len(listings), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (jobs.Listing, error) {
	var item jobs.Listing
	var requirements, skills, benefits string
	var level, locationType, employment string
	var salaryMin, salaryMax sql.NullInt64

	err := row.Scan(&item.ID, &item.Title, &item.Company, &item.Description,
		&requirements, &skills, &level, &item.Location, &locationType, &employment,
		&salaryMin, &salaryMax, &item.Industry, &benefits, &item.URL)
	if err != nil {
		return item, err
	}

	item.ExperienceLevel = jobs.ExperienceLevel(level)
	item.LocationType = jobs.LocationType(locationType)
	item.EmploymentType = jobs.EmploymentType(employment)

	if salaryMin.Valid {
		item.SalaryMin = jobs.Int(int(salaryMin.Int64))
	}
	if salaryMax.Valid {
		item.SalaryMax = jobs.Int(int(salaryMax.Int64))
	}

	for _, field := range []struct {
		raw    string
		target *[]string
	}{
		{requirements, &item.Requirements},
		{skills, &item.SkillsRequired},
		{benefits, &item.Benefits},
	} {
		var list []string
		if err := json.Unmarshal([]byte(field.raw), &list); err != nil {
			return item, fmt.Errorf("job %q: %w", item.ID, err)
		}
		if len(list) > 0 {
			*field.target = list
		}
	}

	return item, nil
}

func listingArgs(item *jobs.Listing) ([]any, error) {
	encoded := make([]string, 0, 3)
	for _, list := range [][]string{item.Requirements, item.SkillsRequired, item.Benefits} {
		if list == nil {
			list = []string{}
		}
		data, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("sqlite: encode job %q: %w", item.ID, err)
		}
		encoded = append(encoded, string(data))
	}

	return []any{
		item.ID, item.Title, item.Company, item.Description,
		encoded[0], encoded[1], string(item.ExperienceLevel), item.Location,
		string(item.LocationType), string(item.EmploymentType),
		nullableInt(item.SalaryMin), nullableInt(item.SalaryMax),
		item.Industry, encoded[2], item.URL,
	}, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
