package align

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/gpx-align/track"
)

// Coordinator drives the two-pass alignment batch. The codec is its only
// collaborator: analysis and output both go through it, so the coordinator
// never touches the GPX grammar itself.
type Coordinator struct {
	Codec track.Codec

	// OnProgress, when set, receives a notification after each per-file
	// step in both passes.
	OnProgress ProgressFunc
}

func NewCoordinator(codec track.Codec) *Coordinator {
	return &Coordinator{Codec: codec}
}

// DefaultOutputDir derives the output directory used when none is given.
func DefaultOutputDir(inputDir string) string {
	return strings.TrimRight(inputDir, "/\\") + "_aligned"
}

// DiscoverTracks lists the track files directly under dir, matching the
// extension case-insensitively, in stable name order.
func DiscoverTracks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), track.FileExtension) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run executes a full batch: analyze every file, pick the reference time,
// then shift and write every analyzable file. Individual file failures are
// recorded in the summary and never abort the batch; only an invalid
// target, an unusable input directory, or a batch with no matched point at
// all fails the run, and in those cases no aligned file is written.
func (c *Coordinator) Run(inputDir, outputDir string, target Target) (*BatchResult, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("invalid alignment target: %w", err)
	}
	if _, err := os.Stat(inputDir); err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}
	if outputDir == "" {
		outputDir = DefaultOutputDir(inputDir)
	}

	files, err := DiscoverTracks(inputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoTracksFound
	}

	matches := c.analyzeAll(files, target)

	referenceTime, ok := referenceFrom(matches)
	if !ok {
		return nil, ErrNoReferenceTime
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return c.applyAll(files, matches, referenceTime, outputDir), nil
}

// analyzeAll is the read-only first pass: parse and locate, never write.
func (c *Coordinator) analyzeAll(files []string, target Target) map[string]MatchResult {
	matches := make(map[string]MatchResult, len(files))
	for _, path := range files {
		name := filepath.Base(path)
		c.progress(StageAnalyze, name, "analyzing")
		m := c.analyzeFile(path, target)
		matches[path] = m
		c.progress(StageAnalyze, name, m.Message)
	}
	return matches
}

func (c *Coordinator) analyzeFile(path string, target Target) MatchResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return MatchResult{Message: fmt.Sprintf("error processing file: %v", err)}
	}
	doc, err := c.Codec.Parse(data)
	if err != nil {
		return MatchResult{Message: fmt.Sprintf("error processing file: %v", err)}
	}
	return Locate(doc, target)
}

// referenceFrom picks the earliest matched time across the batch. The
// reference is returned as a value and threaded into the second pass, so
// repeated runs of one Coordinator share no state.
func referenceFrom(matches map[string]MatchResult) (time.Time, bool) {
	var ref time.Time
	found := false
	for _, m := range matches {
		if !m.Found {
			continue
		}
		if !found || m.Time.Before(ref) {
			ref = m.Time
			found = true
		}
	}
	return ref, found
}

// applyAll is the second pass. Files that failed analysis finalize with
// their pass-1 message and are never written. Successful files are
// re-parsed from disk so the written output reflects exactly one shift and
// nothing from analysis.
func (c *Coordinator) applyAll(files []string, matches map[string]MatchResult, referenceTime time.Time, outputDir string) *BatchResult {
	res := &BatchResult{
		ReferenceTime: referenceTime,
		Files:         make(map[string]FileResult, len(files)),
	}
	for _, path := range files {
		name := filepath.Base(path)
		m := matches[path]
		res.Processed++

		if !m.Found {
			res.Failed++
			res.Files[name] = FileResult{Status: StatusFailed, Message: m.Message}
			continue
		}

		fr, err := c.alignFile(path, outputDir, referenceTime, m)
		if err != nil {
			res.Failed++
			res.Files[name] = FileResult{
				Status:  StatusFailed,
				Message: fmt.Sprintf("error during alignment: %v", err),
			}
			c.progress(StageAlign, name, fmt.Sprintf("failed: %v", err))
			continue
		}
		res.Successful++
		res.Files[name] = fr
		c.progress(StageAlign, name, fmt.Sprintf("aligned (offset: %s)", fr.OffsetText))
	}
	return res
}

func (c *Coordinator) alignFile(path, outputDir string, referenceTime time.Time, m MatchResult) (FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, err
	}
	doc, err := c.Codec.Parse(data)
	if err != nil {
		return FileResult{}, err
	}

	offset := referenceTime.Sub(m.Time)
	Shift(doc, offset)

	out, err := c.Codec.Serialize(doc)
	if err != nil {
		return FileResult{}, err
	}
	outputPath := filepath.Join(outputDir, filepath.Base(path))
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return FileResult{}, err
	}

	matched := m.Time
	return FileResult{
		Status:      StatusSuccess,
		Offset:      offset,
		OffsetText:  offset.String(),
		MatchedTime: &matched,
		OutputPath:  outputPath,
	}, nil
}

func (c *Coordinator) progress(stage Stage, file, message string) {
	if c.OnProgress != nil {
		c.OnProgress(Progress{Stage: stage, File: file, Message: message})
	}
}
