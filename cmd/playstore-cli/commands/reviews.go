package commands

import (
	"context"
	"log/slog"
	"os"

	"playstore-scraper/internal/components/serviceutil"
	"playstore-scraper/internal/components/telemetry"
	"playstore-scraper/internal/scrapers/playstore"

	"github.com/spf13/cobra"
)

var (
	reviewsPage     *int
	reviewsSort     *string
	reviewsLang     *string
	reviewsFormat   *string
	reviewsAll      *bool
	reviewsMaxPages *int
)

func init() {
	reviewsPage = reviewsCmd.Flags().Int("page", 0, "The page to fetch, starting at 0.")
	reviewsSort = reviewsCmd.Flags().String("sort", "NEWEST", "The sort order: NEWEST, RATING or HELPFULNESS.")
	reviewsLang = reviewsCmd.Flags().String("lang", "en", "The language of the reviews.")
	reviewsFormat = reviewsCmd.Flags().String("format", "table", "The output format: table or json.")
	reviewsAll = reviewsCmd.Flags().Bool("all", false, "Keep fetching pages starting at --page until there are no more.")
	reviewsMaxPages = reviewsCmd.Flags().Int("max-pages", 10, "The maximum amount of pages to fetch with --all, 0 means no limit.")
	rootCmd.AddCommand(reviewsCmd)
}

type reviewsFetcher interface {
	Reviews(ctx context.Context, query playstore.ReviewQuery) ([]playstore.Review, error)
}

// collectPages fetches pages one after the other starting at query.Page until
// a page comes back empty or maxPages pages have been fetched.
func collectPages(ctx context.Context, fetcher reviewsFetcher, query playstore.ReviewQuery, maxPages int) ([]playstore.Review, error) {
	var all []playstore.Review
	for fetched := 0; maxPages <= 0 || fetched < maxPages; fetched++ {
		reviews, err := fetcher.Reviews(ctx, query)
		if err != nil {
			return all, err
		}
		if len(reviews) == 0 {
			break
		}
		all = append(all, reviews...)
		slog.Debug("fetched page", "page", query.Page, "reviews", len(reviews))
		query.Page++
	}
	return all, nil
}

// buildQuery combines the config with the flags, flags that were set
// explicitly take precedence.
func buildQuery(cmd *cobra.Command, appId string, cfg Config) (playstore.ReviewQuery, error) {
	query := playstore.ReviewQuery{
		AppId:     appId,
		Page:      *reviewsPage,
		Lang:      *reviewsLang,
		Throttle:  cfg.throttle(),
		Overrides: cfg.overrides(),
	}
	if cfg.Lang != "" && !cmd.Flags().Changed("lang") {
		query.Lang = cfg.Lang
	}

	sortName := *reviewsSort
	if cfg.Sort != "" && !cmd.Flags().Changed("sort") {
		sortName = cfg.Sort
	}
	sort, err := playstore.ParseSort(sortName)
	if err != nil {
		return playstore.ReviewQuery{}, err
	}
	query.Sort = sort

	return query, nil
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews <app-id> [--page <n>] [--sort <sort>] [--lang <lang>] [--format table|json] [--all]",
	Short: "Fetches the reviews of an app.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := readConfig(configPath)
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		query, err := buildQuery(cmd, args[0], cfg)
		if err != nil {
			serviceutil.Fatal("invalid arguments", err)
		}

		var api telemetry.API = telemetry.SlogAPI{}
		if tel.MeterProvider != nil {
			otelApi, err := telemetry.NewOtelAPI("playstore-cli", api)
			if err != nil {
				slog.Warn("failed to create otel telemetry api", "err", err)
			} else {
				api = otelApi
			}
		}
		scraper := playstore.NewDefaultScraper(cfg.transportOptions(), api)

		var reviews []playstore.Review
		if *reviewsAll {
			reviews, err = collectPages(cmd.Context(), scraper, query, *reviewsMaxPages)
		} else {
			reviews, err = scraper.Reviews(cmd.Context(), query)
		}
		if err != nil {
			serviceutil.Fatal("failed to fetch reviews", err)
		}

		err = render(os.Stdout, *reviewsFormat, reviews)
		if err != nil {
			serviceutil.Fatal("failed to render reviews", err)
		}
	},
}
