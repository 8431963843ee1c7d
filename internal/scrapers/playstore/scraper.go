package playstore

import (
	"context"
	"fmt"

	"playstore-scraper/internal/components/assert"
	"playstore-scraper/internal/components/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	report_scraper_reviews = "scraper.reviews"
)

var tracer = otel.Tracer("playstore-scraper/internal/scrapers/playstore")

// Scraper fetches review pages from the storefront. It keeps no state between
// calls and is safe for concurrent use.
type Scraper struct {
	transport     Transport
	loader        MarkupLoader
	paginationEnd PaginationEndPolicy
	tel           telemetry.API
}

func NewScraper(transport Transport, loader MarkupLoader, tel telemetry.API) *Scraper {
	assert.NotNil(transport)
	assert.NotNil(loader)
	assert.NotNil(tel)

	return &Scraper{
		transport:     transport,
		loader:        loader,
		paginationEnd: DefaultPaginationEnd,
		tel:           telemetry.NewScopedAPI("playstore_scraper", tel),
	}
}

// NewDefaultScraper creates a Scraper that talks to the storefront over resty.
func NewDefaultScraper(opts RestyTransportOptions, tel telemetry.API) *Scraper {
	return NewScraper(NewRestyTransport(opts, tel), GoqueryLoader{}, tel)
}

// WithPaginationEnd returns a copy of the scraper using a different policy to
// recognize the end of the pages.
func (s *Scraper) WithPaginationEnd(policy PaginationEndPolicy) *Scraper {
	assert.NotNil(policy)

	copied := *s
	copied.paginationEnd = policy
	return &copied
}

// Reviews fetches and parses a single page of reviews.
//
// A page past the last page results in an empty slice and no error. Errors wrap
// one of ErrInvalidInput, ErrTransport or ErrMalformedResponse.
func (s *Scraper) Reviews(ctx context.Context, query ReviewQuery) ([]Review, error) {
	ctx, span := tracer.Start(ctx, "Reviews", trace.WithAttributes(
		attribute.String("app_id", query.AppId),
		attribute.Int("page", query.Page),
		attribute.String("sort", query.Sort.String()),
	))
	defer span.End()

	scrapeError := func(err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("playstore scraper: %w", err)
	}

	err := validateQuery(query)
	if err != nil {
		s.tel.ReportWarning(report_scraper_reviews, err)
		return nil, scrapeError(err)
	}
	req, err := buildRequest(query)
	if err != nil {
		s.tel.ReportWarning(report_scraper_reviews, err)
		return nil, scrapeError(err)
	}

	s.tel.ReportDebug("get reviews", query.AppId, query.Page, query.Sort.String())

	body, err := s.transport.Send(ctx, req, query.Throttle)
	if err != nil {
		if s.paginationEnd(err) {
			s.tel.ReportDebug("pagination end", query.AppId, query.Page)
			span.SetAttributes(attribute.Bool("pagination_end", true))
			return []Review{}, nil
		}
		s.tel.ReportBroken(
			report_scraper_reviews,
			fmt.Errorf("send: %w", err),
			query.AppId,
			query.Page,
		)
		return nil, scrapeError(fmt.Errorf("%w: %w", ErrTransport, err))
	}

	fragment, err := decodeEnvelope(body)
	if err != nil {
		s.tel.ReportBroken(report_scraper_reviews, err, query.AppId, query.Page)
		return nil, scrapeError(err)
	}

	doc, err := s.loader.Load(fragment)
	if err != nil {
		err = fmt.Errorf("%w: load markup: %w", ErrMalformedResponse, err)
		s.tel.ReportBroken(report_scraper_reviews, err, query.AppId, query.Page)
		return nil, scrapeError(err)
	}

	reviews, err := extractReviews(doc)
	if err != nil {
		s.tel.ReportBroken(report_scraper_reviews, err, query.AppId, query.Page)
		return nil, scrapeError(err)
	}
	s.tel.ReportCount(report_scraper_reviews, int64(len(reviews)))
	span.SetAttributes(attribute.Int("reviews", len(reviews)))

	return reviews, nil
}
