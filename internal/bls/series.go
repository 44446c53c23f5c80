package bls

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"resty.dev/v3"

	"cpifetcher/internal/cpi"
	"cpifetcher/internal/fetcher"
	"cpifetcher/internal/ratelimit"
)

// timeseriesResponse represents the BLS v2 timeseries API response
type timeseriesResponse struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []struct {
			SeriesID string `json:"seriesID"`
			Data     []struct {
				Year       string `json:"year"`
				Period     string `json:"period"`
				PeriodName string `json:"periodName"`
				Value      string `json:"value"`
			} `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

// statusSucceeded is the in-band success marker of the BLS API; any other
// status is a failure even under HTTP 200.
const statusSucceeded = "REQUEST_SUCCEEDED"

// SeriesFetcher fetches one CPI series over a year range, issuing one
// request per chunk and merging the responses into a single ordered set.
type SeriesFetcher struct {
	apiKey    string
	category  string
	seriesID  string
	startYear int
	endYear   int
	client    *resty.Client
}

// NewSeriesFetcher creates a fetcher for one series over [startYear, endYear]
func NewSeriesFetcher(apiKey, category, seriesID, baseURL string, startYear, endYear int) *SeriesFetcher {
	return &SeriesFetcher{
		apiKey:    apiKey,
		category:  category,
		seriesID:  seriesID,
		startYear: startYear,
		endYear:   endYear,
		client:    fetcher.NewHTTPClient(baseURL),
	}
}

// Fetch retrieves the series as normalized records ordered by
// (year, period). Any failed chunk aborts the whole call with no partial
// records: a truncated series is worse than no series.
func (f *SeriesFetcher) Fetch(ctx context.Context) ([]cpi.Record, error) {
	chunks, err := SplitRange(f.startYear, f.endYear, MaxYearsPerRequest)
	if err != nil {
		return nil, err
	}

	var observations []cpi.Observation
	seen := make(map[string]bool)

	for _, chunk := range chunks {
		if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APIBLS); err != nil {
			return nil, fetcher.NewTransportError(err)
		}

		chunkObs, err := f.fetchChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}

		// The API treats both range ends as inclusive, so adjacent chunks
		// can echo a boundary year twice; keep the first occurrence.
		for _, o := range chunkObs {
			key := fmt.Sprintf("%d:%s", o.Year, o.Period)
			if seen[key] {
				continue
			}
			seen[key] = true
			observations = append(observations, o)
		}
	}

	sort.SliceStable(observations, func(i, j int) bool {
		if observations[i].Year != observations[j].Year {
			return observations[i].Year < observations[j].Year
		}
		return observations[i].Period < observations[j].Period
	})

	return cpi.NormalizeObservations(observations, f.category), nil
}

// fetchChunk issues one API request for a sub-range of years
func (f *SeriesFetcher) fetchChunk(ctx context.Context, chunk Chunk) ([]cpi.Observation, error) {
	var result timeseriesResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+f.apiKey).
		SetBody(map[string]any{
			"seriesid":  []string{f.seriesID},
			"startyear": strconv.Itoa(chunk.StartYear),
			"endyear":   strconv.Itoa(chunk.EndYear),
		}).
		SetResult(&result).
		Post("")

	if err != nil {
		return nil, fetcher.NewTransportError(err)
	}

	if !resp.IsSuccess() {
		return nil, fetcher.ClassifyStatus(resp.StatusCode())
	}

	if result.Status != statusSucceeded {
		message := strings.Join(result.Message, "; ")
		if message == "" {
			message = fmt.Sprintf("request not processed (status %q)", result.Status)
		}
		return nil, fetcher.NewRemoteAPIError(resp.StatusCode(), message)
	}

	if len(result.Results.Series) == 0 {
		return nil, fetcher.NewRemoteAPIError(resp.StatusCode(), "response contained no series")
	}

	data := result.Results.Series[0].Data
	observations := make([]cpi.Observation, 0, len(data))
	for _, d := range data {
		year, err := strconv.Atoi(d.Year)
		if err != nil {
			return nil, fetcher.NewRemoteAPIError(resp.StatusCode(),
				fmt.Sprintf("malformed year %q in response", d.Year))
		}
		observations = append(observations, cpi.Observation{
			Year:       year,
			Period:     d.Period,
			PeriodName: d.PeriodName,
			Value:      d.Value,
		})
	}
	return observations, nil
}

// Key returns the hierarchical key for this fetcher
func (f *SeriesFetcher) Key() string {
	return fmt.Sprintf("fetcher:bls:%s", f.seriesID)
}
