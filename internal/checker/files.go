package checker

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/rs/zerolog"

	"github.com/inoxlang/titlecase/internal/utils"
)

type CheckOptions struct {
	//check only Markdown headings in all files, .md and .markdown files are always checked this way.
	Markdown bool

	//maximum number of files checked at the same time, defaults to runtime.NumCPU().
	Concurrency int

	//(optional)
	Logger *zerolog.Logger
}

// ExpandPatterns returns the regular files matching the doublestar patterns, without duplicates
// and sorted in natural order (chapter2.md before chapter10.md).
func ExpandPatterns(patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	var paths []string
	var errs []error

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid pattern %q: %w", pattern, err))
			continue
		}

		matchCount := 0
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			matchCount++

			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			paths = append(paths, match)
		}

		if matchCount == 0 {
			errs = append(errs, fmt.Errorf("no file matches %q", pattern))
		}
	}

	sort.Slice(paths, func(i, j int) bool {
		return natural.Less(paths[i], paths[j])
	})

	return paths, utils.CombineErrorsWithPrefixMessage("failed to expand patterns", errs...)
}

// CheckFiles reads and checks the files concurrently, the findings are returned in the order of paths.
// Files that cannot be read are reported in the returned error, the other files are still checked.
func CheckFiles(ctx context.Context, titler Titler, paths []string, opts CheckOptions) ([]Finding, error) {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("src", "checker").Logger()
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	results := cmap.New[[]Finding]()
	readErrors := cmap.New[error]()

	semaphore := make(chan struct{}, concurrency)
	wg := new(sync.WaitGroup)

loop:
	for _, path := range paths {
		select {
		case <-ctx.Done():
			break loop
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() {
				<-semaphore
			}()

			content, err := os.ReadFile(path)
			if err != nil {
				readErrors.Set(path, err)
				return
			}

			markdown := opts.Markdown || IsMarkdownFile(path)
			findings := Check(ctx, titler, path, utils.BytesAsString(content), markdown)
			results.Set(path, findings)

			logger.Debug().Str("path", path).Bool("markdown", markdown).Int("findings", len(findings)).Msg("file checked")
		}(path)
	}

	wg.Wait()

	var findings []Finding
	var errs []error

	for _, path := range paths {
		if err, ok := readErrors.Get(path); ok {
			errs = append(errs, err)
			continue
		}
		fileFindings, _ := results.Get(path)
		findings = append(findings, fileFindings...)
	}

	if err := ctx.Err(); err != nil {
		return findings, err
	}

	return findings, utils.CombineErrors(errs...)
}
