package jobs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
)

const (
	ListingIDField             = "ID"
	ListingCompanyField        = "Company"
	ListingEmploymentTypeField = "EmploymentType"
)

// Listings is an ordered collection of job listings.
type Listings struct {
	Items []*Listing
}

// NewListings wraps values in a collection.
func NewListings(items []Listing) *Listings {
	l := &Listings{Items: make([]*Listing, 0, len(items))}
	for i := range items {
		l.Items = append(l.Items, &items[i])
	}
	return l
}

func (l *Listings) Len() int {
	return len(l.Items)
}

// Values returns copies of the listings in order.
func (l *Listings) Values() []Listing {
	out := make([]Listing, 0, len(l.Items))
	for _, item := range l.Items {
		out = append(out, *item)
	}
	return out
}

func (l *Listings) FindByID(id string) *Listing {
	for _, item := range l.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// IDs returns listing ids in order.
func (l *Listings) IDs() []string {
	ids := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (item *Listing) GetStringField(name string) string {
	switch name {
	case ListingIDField:
		return item.ID
	case ListingCompanyField:
		return item.Company
	case ListingEmploymentTypeField:
		return string(item.EmploymentType)
	default:
		return ""
	}
}

// Exclude drops listings whose field equals (case-insensitively) any target
// and returns the dropped ids. Order of the remaining listings is kept.
func (l *Listings) Exclude(name string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	return l.ExcludeFunc(func(item *Listing) bool {
		value := strings.TrimSpace(item.GetStringField(name))
		for _, target := range targets {
			if strings.EqualFold(value, strings.TrimSpace(target)) {
				return true
			}
		}
		return false
	})
}

// ExcludeFunc drops every listing for which drop returns true.
func (l *Listings) ExcludeFunc(drop func(*Listing) bool) []string {
	var excluded []string
	kept := l.Items[:0]
	for _, item := range l.Items {
		if drop(item) {
			excluded = append(excluded, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	for i := len(kept); i < len(l.Items); i++ {
		l.Items[i] = nil
	}
	l.Items = kept
	return excluded
}

// ReportByCompany groups listings by company for display.
func (l *Listings) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range l.Items {
		key := item.Company
		if key == "" {
			key = "unknown"
		}
		report[key] = append(report[key], map[string]string{
			"id":       item.ID,
			"title":    item.Title,
			"location": fmt.Sprintf("%s (%s)", item.Location, item.LocationType),
			"level":    string(item.ExperienceLevel),
			"salary":   salaryLabel(item),
			"url":      item.URL,
		})
	}
	return report
}

func salaryLabel(item *Listing) string {
	lo, hi, hasMin, hasMax := item.SalaryBounds()
	switch {
	case hasMin && hasMax:
		return fmt.Sprintf("%d-%d", lo, hi)
	case hasMin:
		return fmt.Sprintf("from %d", lo)
	case hasMax:
		return fmt.Sprintf("up to %d", hi)
	default:
		return "not specified"
	}
}

func (l *Listings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l.Items); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ExcludedJobs is the persisted list of listings the user dismissed.
type ExcludedJobs struct {
	Items []*ExcludedJob
}

type ExcludedJob struct {
	ID         string
	Title      string
	Company    string
	ExcludedAt time.Time
}

func (l *Listings) ToExcluded() *ExcludedJobs {
	excluded := &ExcludedJobs{}
	for _, item := range l.Items {
		excluded.Items = append(excluded.Items, &ExcludedJob{
			ID:         item.ID,
			Title:      item.Title,
			Company:    item.Company,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

// ExcludedFromFile reads an exclude file. A missing or empty file yields an empty list.
func ExcludedFromFile(path string) (*ExcludedJobs, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ExcludedJobs{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedJobs{}, nil
	}

	var excluded ExcludedJobs
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, fmt.Errorf("decoding exclude file %q: %w", path, err)
	}
	return &excluded, nil
}

func (e *ExcludedJobs) Append(s *ExcludedJobs) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedJobs) IDs() []string {
	ids := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (e *ExcludedJobs) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
