package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

type HeadlessFetcher struct {
	userAgent string
	timeout   time.Duration
	selectors Selectors
}

func NewHeadlessFetcher(userAgent string, timeout time.Duration, sel Selectors) *HeadlessFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if strings.TrimSpace(sel.Item) == "" {
		sel = DefaultSelectors
	}
	return &HeadlessFetcher{userAgent: userAgent, timeout: timeout, selectors: sel}
}

type renderedPublication struct {
	Title    string `json:"title"`
	Year     string `json:"year"`
	Keywords string `json:"keywords"`
	Text     string `json:"text"`
}

func (f *HeadlessFetcher) FetchPublications(ctx context.Context, pageURL string) ([]Publication, error) {
	pageURL, err := validatePageURL(pageURL)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if ua := strings.TrimSpace(f.userAgent); ua != "" {
		opts = append(opts, chromedp.UserAgent(ua))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, f.timeout)
	defer reqCancel()

	script, err := extractionScript(f.selectors)
	if err != nil {
		return nil, err
	}

	var rendered []renderedPublication
	err = chromedp.Run(reqCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(script, &rendered),
	)
	if err != nil {
		return nil, err
	}
	return fromRendered(rendered), nil
}

func extractionScript(sel Selectors) (string, error) {
	args, err := json.Marshal([]string{sel.Item, sel.Title, sel.Year, sel.Keywords})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`(function(sel) {
	const pick = (el, q) => { if (!q) return ''; const n = el.querySelector(q); return n ? n.textContent : ''; };
	return Array.from(document.querySelectorAll(sel[0])).map(el => ({
		title: pick(el, sel[1]),
		year: pick(el, sel[2]),
		keywords: pick(el, sel[3]),
		text: el.textContent || ''
	}));
})(%s)`, args), nil
}

func fromRendered(in []renderedPublication) []Publication {
	out := make([]Publication, 0, len(in))
	seen := map[string]struct{}{}
	for _, r := range in {
		title := normalizeTitle(r.Title)
		if title == "" {
			continue
		}
		key := strings.ToLower(title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		year := extractYear(r.Year)
		if year == 0 {
			year = extractYear(r.Text)
		}
		out = append(out, Publication{Title: title, Year: year, Keywords: splitKeywords(r.Keywords)})
	}
	return out
}
