package fileio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

var reHTTP = regexp.MustCompile(`(?i)^https?://`)

// sniff window for the HTML guard below
const sniffLen = 100

var (
	reDoctype = regexp.MustCompile(`(?i)<!doctype html`)
	reHTMLTag = regexp.MustCompile(`(?i)<html`)
)

// FetchMaps resolves src (local path or http(s) URL) and parses it into
// map rows. A body whose first bytes look like an HTML document is rejected:
// spreadsheet publish endpoints serve an HTML preview unless the raw tabular
// export form of the link is used.
func FetchMaps(ctx context.Context, src string, timeout time.Duration) ([]map[string]string, error) {
	if !reHTTP.MatchString(src) {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("open source %s: %w", src, err)
		}
		defer f.Close()
		return ReadAnyMaps(f, src)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", src, err)
	}
	// some publish endpoints return HTML unless a browser UA is present
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	req.Header.Set("Cache-Control", "no-store")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", src, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	if looksLikeHTML(body) {
		return nil, fmt.Errorf("expected tabular data but got HTML from %s (use the raw export form of the publish link, e.g. output=csv)", src)
	}

	name := src
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	return ReadAnyMaps(bytes.NewReader(body), name)
}

func looksLikeHTML(b []byte) bool {
	head := b
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	return reDoctype.Match(head) || reHTMLTag.Match(head)
}
