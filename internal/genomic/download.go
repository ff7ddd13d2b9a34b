package genomic

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/AntonVopilov/fastai-genomic/config"
)

// urlSuffix pulls a file extension out of a URL, before any query string.
var urlSuffix = regexp.MustCompile(`\.\w+(\?|$)`)

// DownloadAll fetches the sequence files listed (one URL per line) in
// urlsFile into dest, at most maxFiles of them, across a bounded worker
// fan-out. Failed URLs are logged and skipped; the count of files
// actually written is returned.
func DownloadAll(urlsFile, dest string, c config.DownloadConfig) (int, error) {
	contents, err := os.ReadFile(urlsFile)
	if err != nil {
		return 0, fmt.Errorf("failed to read URL list: %v", err)
	}

	var urls []string
	for _, line := range strings.Split(strings.TrimSpace(string(contents)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	if len(urls) == 0 {
		return 0, fmt.Errorf("failed to find any URLs in %s", urlsFile)
	}
	if c.MaxFiles > 0 && len(urls) > c.MaxFiles {
		urls = urls[:c.MaxFiles]
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %v", dest, err)
	}

	client := &http.Client{Timeout: time.Duration(c.TimeoutSeconds) * time.Second}

	workers := c.Workers
	if workers < 1 {
		workers = 1
	}

	type job struct {
		index int
		url   string
	}
	jobs := make(chan job)
	fetched := make(chan bool)

	for w := 0; w < workers; w++ {
		go func() {
			for j := range jobs {
				out := filepath.Join(dest, fmt.Sprintf("%08d%s", j.index, suffix(j.url)))
				if err := download(client, j.url, out); err != nil {
					logger.Warnw("failed download", "url", j.url, "err", err)
					fetched <- false
					continue
				}
				fetched <- true
			}
		}()
	}

	go func() {
		for i, url := range urls {
			jobs <- job{index: i, url: url}
		}
		close(jobs)
	}()

	count := 0
	for range urls {
		if <-fetched {
			count++
		}
	}

	logger.Infow("downloaded sequence files", "dest", dest, "fetched", count, "urls", len(urls))

	return count, nil
}

// download fetches one URL to a file, removing partial output on failure.
func download(client *http.Client, url, out string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s", url, resp.Status)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	if _, err = io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}

	return f.Close()
}

// suffix guesses a downloaded file's extension from its URL, falling
// back to .fa.
func suffix(url string) string {
	match := urlSuffix.FindString(url)
	match = strings.TrimSuffix(match, "?")
	if match == "" || !IsSeqFile(match) {
		return ".fa"
	}
	return strings.ToLower(match)
}
