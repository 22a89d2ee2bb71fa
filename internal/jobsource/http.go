package jobsource

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/logger"
	"github.com/spigell/careerbuddy/internal/profile"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip, deflate"

	DefaultPerPage   = 50
	DefaultUserAgent = "careerbuddy/1.0"
	// maxPages bounds pagination against boards that misreport their page count.
	maxPages = 100
)

// SearchParams is the query sent to the job board. The qparam tag names the
// query key.
type SearchParams struct {
	Text            string   `qparam:"text"`
	ExperienceLevel string   `qparam:"experience_level"`
	Locations       []string `qparam:"location"`
	Skills          []string `qparam:"skill"`
	PerPage         int      `qparam:"per_page"`
}

// ItemResponse is a single page returned by the board.
type ItemResponse struct {
	Items   []map[string]any `json:"items"`
	Found   int              `json:"found"`
	Pages   int              `json:"pages"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

// HTTP fetches listings from a paginated JSON job board.
type HTTP struct {
	URL        string
	UserAgent  string
	PerPage    int
	HTTPClient *http.Client

	logger *zap.Logger
}

func NewHTTP(rawURL, userAgent string, perPage int, log *zap.Logger) *HTTP {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &HTTP{
		URL:        rawURL,
		UserAgent:  userAgent,
		PerPage:    perPage,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.OrNop(log),
	}
}

func (c *HTTP) Name() string { return KindHTTP }

// FetchCandidateJobs searches the board with the profile's target roles,
// level, locations and skills.
func (c *HTTP) FetchCandidateJobs(ctx context.Context, p *profile.UserProfile) ([]jobs.Listing, error) {
	params := &SearchParams{PerPage: c.PerPage}
	if p != nil {
		params.Text = strings.Join(p.TargetRoles, " ")
		params.ExperienceLevel = string(p.ExperienceLevel)
		params.Locations = p.LocationPreferences
		params.Skills = p.Skills
	}

	return c.Search(ctx, params)
}

// Search runs params against the board and decodes every page.
func (c *HTTP) Search(ctx context.Context, params *SearchParams) ([]jobs.Listing, error) {
	items, err := c.GetItems(ctx, c.URL, buildParams(params))
	if err != nil {
		return nil, err
	}

	var listings []jobs.Listing
	cfg := &mapstructure.DecoderConfig{
		Result:  &listings,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding job board items: %w", err)
	}
	if listings == nil {
		listings = []jobs.Listing{}
	}

	return listings, nil
}

// GetItems makes a GET request and returns items from all pages.
func (c *HTTP) GetItems(ctx context.Context, rawURL string, q url.Values) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req = c.setHeaders(req)
	req.URL.RawQuery = q.Encode()

	response, err := c.fetchPage(req)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("got response from job board", zap.Int("pages", response.Pages), zap.Int("per_page", response.PerPage))

	items := append([]map[string]any{}, response.Items...)

	for response.Page < response.Pages-1 && response.Page+1 < maxPages {
		c.logger.Debug("additional request needed", zap.String("reason", fmt.Sprintf(
			"current page (%d) < all page count (%d)", response.Page+1, response.Pages),
		))

		response, err = c.fetchPage(addPage(req, response.Page+1))
		if err != nil {
			return nil, err
		}

		items = append(items, response.Items...)
	}

	return items, nil
}

func (c *HTTP) fetchPage(req *http.Request) (*ItemResponse, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		body = gz
	}

	var response ItemResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding job board page: %w", err)
	}

	return &response, nil
}

func (c *HTTP) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", contentType)
	req.Header.Set("Accept-Encoding", contentEncoding)

	return req
}

func buildParams(params *SearchParams) url.Values {
	q := url.Values{}
	value := reflect.ValueOf(params).Elem()

	for _, field := range reflect.VisibleFields(value.Type()) {
		key := field.Tag.Get("qparam")
		if key == "" {
			continue
		}

		v := value.FieldByIndex(field.Index)
		switch v.Kind() {
		case reflect.Slice:
			for i := 0; i < v.Len(); i++ {
				if s := strings.TrimSpace(fmt.Sprint(v.Index(i).Interface())); s != "" {
					q.Add(key, s)
				}
			}
		case reflect.Int:
			if v.Int() != 0 {
				q.Set(key, strconv.FormatInt(v.Int(), 10))
			}
		default:
			if s := strings.TrimSpace(fmt.Sprint(v.Interface())); s != "" {
				q.Set(key, s)
			}
		}
	}

	return q
}

// addPage sets the page parameter on req's URL.
func addPage(req *http.Request, page int) *http.Request {
	q := req.URL.Query()
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()

	return req
}
