package research

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

var (
	ErrInvalidURL     = errors.New("invalid publications url")
	ErrNoPublications = errors.New("no publications found")
)

type Fetcher interface {
	FetchPublications(ctx context.Context, pageURL string) ([]Publication, error)
}

// Selectors locate publications on a listing page. Each field may hold a
// comma-separated selector group; the first match inside an item is used.
type Selectors struct {
	Item     string
	Title    string
	Year     string
	Keywords string
}

var DefaultSelectors = Selectors{
	Item:     "li.publication, div.publication, article.publication, tr.gsc_a_tr, [itemtype*='ScholarlyArticle']",
	Title:    ".title, .gsc_a_at, [itemprop='name'], h3, h4, a",
	Year:     ".year, .gsc_a_y, [itemprop='datePublished'], time",
	Keywords: ".keywords, .tags, [itemprop='keywords']",
}

func validatePageURL(pageURL string) (string, error) {
	pageURL = strings.TrimSpace(pageURL)
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, pageURL)
	}
	return pageURL, nil
}

type CollyFetcher struct {
	userAgent string
	timeout   time.Duration
	selectors Selectors
}

func NewCollyFetcher(userAgent string, timeout time.Duration, sel Selectors) *CollyFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if strings.TrimSpace(sel.Item) == "" {
		sel = DefaultSelectors
	}
	return &CollyFetcher{userAgent: userAgent, timeout: timeout, selectors: sel}
}

func (f *CollyFetcher) FetchPublications(ctx context.Context, pageURL string) ([]Publication, error) {
	pageURL, err := validatePageURL(pageURL)
	if err != nil {
		return nil, err
	}

	opts := []colly.CollectorOption{}
	if ua := strings.TrimSpace(f.userAgent); ua != "" {
		opts = append(opts, colly.UserAgent(ua))
	}
	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(f.timeout)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, Delay: 300 * time.Millisecond})

	out := make([]Publication, 0)
	seen := map[string]struct{}{}
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
			return
		}
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
	})

	c.OnHTML(f.selectors.Item, func(e *colly.HTMLElement) {
		title := normalizeTitle(e.DOM.Find(f.selectors.Title).First().Text())
		if title == "" {
			return
		}
		key := strings.ToLower(title)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}

		year := extractYear(e.DOM.Find(f.selectors.Year).First().Text())
		if year == 0 {
			year = extractYear(e.Text)
		}
		var keywords []string
		if f.selectors.Keywords != "" {
			keywords = splitKeywords(e.DOM.Find(f.selectors.Keywords).First().Text())
		}
		out = append(out, Publication{Title: title, Year: year, Keywords: keywords})
	})

	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(pageURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return out, nil
}

// FallbackFetcher tries primary first and switches to secondary when primary
// fails or finds nothing, which is typical for script-rendered pages.
type FallbackFetcher struct {
	primary   Fetcher
	secondary Fetcher
	log       *zap.Logger
}

func NewFallbackFetcher(primary, secondary Fetcher, log *zap.Logger) *FallbackFetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &FallbackFetcher{primary: primary, secondary: secondary, log: log}
}

func (f *FallbackFetcher) FetchPublications(ctx context.Context, pageURL string) ([]Publication, error) {
	pubs, err := f.primary.FetchPublications(ctx, pageURL)
	if err == nil && len(pubs) > 0 {
		return pubs, nil
	}
	if errors.Is(err, ErrInvalidURL) || f.secondary == nil || ctx.Err() != nil {
		if err == nil {
			err = ErrNoPublications
		}
		return nil, err
	}

	f.log.Info("falling back to headless fetch", zap.String("url", pageURL), zap.Error(err))
	pubs, err = f.secondary.FetchPublications(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if len(pubs) == 0 {
		return nil, ErrNoPublications
	}
	return pubs, nil
}
