package typeinfo

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/teranos/gircheck/codewriter"
	"github.com/teranos/gircheck/errors"
)

// CheckResult holds the result of an up-to-date check.
type CheckResult struct {
	UpToDate bool
	// Differences lists generated files whose content differs
	Differences []string
	// Missing lists generated files absent from the existing directory
	Missing []string
}

// Check regenerates opts into a temporary directory and compares the
// output with existingDir. The license banner is ignored so trees
// generated with and without it compare equal.
func Check(ctx context.Context, opts Options, existingDir string) (*CheckResult, error) {
	if err := CheckOutputDir(existingDir); err != nil {
		return nil, err
	}

	tempDir, err := os.MkdirTemp("", "gircheck-check-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	opts.OutputDir = tempDir
	res, err := Generate(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to regenerate")
	}

	return CompareFiles(tempDir, existingDir, res.Written)
}

// CompareFiles compares names between the generated and existing
// directories.
func CompareFiles(generatedDir, existingDir string, names []string) (*CheckResult, error) {
	result := &CheckResult{}
	for _, name := range names {
		generated, err := os.ReadFile(filepath.Join(generatedDir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}
		existing, err := os.ReadFile(filepath.Join(existingDir, name))
		if os.IsNotExist(err) {
			result.Missing = append(result.Missing, name)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}
		if !bytes.Equal(stripBanner(generated), stripBanner(existing)) {
			result.Differences = append(result.Differences, name)
		}
	}
	sort.Strings(result.Differences)
	sort.Strings(result.Missing)
	result.UpToDate = len(result.Differences) == 0 && len(result.Missing) == 0
	return result, nil
}

// renderedBanners are the banner blocks as written by each comment style
// used for generated files.
var renderedBanners = [][]byte{
	codewriter.New(codewriter.CommentC, codewriter.WithBanner(LicenseBanner())).Bytes(),
	codewriter.New(codewriter.CommentHash, codewriter.WithBanner(LicenseBanner())).Bytes(),
}

func stripBanner(content []byte) []byte {
	for _, b := range renderedBanners {
		if bytes.HasPrefix(content, b) {
			return content[len(b):]
		}
	}
	return content
}
