package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karnai/cardir/internal/model"
)

// Converter converts one card file into one IR file
type Converter interface {
	ConvertFile(inputPath, outputPath string) (model.CardIR, error)
}

// ConvertJob converts a single file as part of a batch
type ConvertJob struct {
	Index      int // Position in sorted input order
	InputPath  string
	OutputPath string
	Converter  Converter
}

// Execute runs the conversion job
func (j *ConvertJob) Execute(ctx context.Context) Result {
	ir, err := j.Converter.ConvertFile(j.InputPath, j.OutputPath)
	return &ConvertResult{
		Index:      j.Index,
		InputPath:  j.InputPath,
		OutputPath: j.OutputPath,
		IR:         ir,
		Err:        err,
	}
}

// ConvertResult is the outcome of one file conversion
type ConvertResult struct {
	Index      int
	InputPath  string
	OutputPath string
	IR         model.CardIR
	Err        error
}

// GetError returns the conversion error, if any
func (r *ConvertResult) GetError() error {
	return r.Err
}

// BatchProcessor converts a directory of card files. The first fatal error
// aborts the remainder of the batch: sequentially by stopping the loop,
// concurrently by cancelling the pool so queued files never start.
type BatchProcessor struct {
	converter Converter
	workers   int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(converter Converter, workers int) *BatchProcessor {
	if workers <= 0 {
		workers = 1
	}
	return &BatchProcessor{
		converter: converter,
		workers:   workers,
	}
}

// ProcessDir converts every eligible file in inputDir, writing each IR to
// outputDir under ir_<original filename>. Results cover only conversions
// that actually ran; the returned error is the first failure in input
// order, or nil when the whole batch succeeded.
func (b *BatchProcessor) ProcessDir(ctx context.Context, inputDir, outputDir string) ([]*ConvertResult, error) {
	files, err := ListBatchFiles(inputDir)
	if err != nil {
		return nil, fmt.Errorf("list input files: %w", err)
	}

	jobs := make([]*ConvertJob, len(files))
	for i, name := range files {
		jobs[i] = &ConvertJob{
			Index:      i,
			InputPath:  filepath.Join(inputDir, name),
			OutputPath: filepath.Join(outputDir, "ir_"+name),
			Converter:  b.converter,
		}
	}

	if b.workers == 1 {
		return b.processSequential(ctx, jobs)
	}
	return b.processConcurrent(ctx, jobs)
}

// processSequential converts files strictly in sorted filename order and
// stops at the first failure
func (b *BatchProcessor) processSequential(ctx context.Context, jobs []*ConvertJob) ([]*ConvertResult, error) {
	results := make([]*ConvertResult, 0, len(jobs))

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := job.Execute(ctx).(*ConvertResult)
		results = append(results, result)
		if result.Err != nil {
			return results, result.Err
		}
	}

	return results, nil
}

// processConcurrent converts files on the worker pool, cancelling it as
// soon as any conversion fails
func (b *BatchProcessor) processConcurrent(ctx context.Context, jobs []*ConvertJob) ([]*ConvertResult, error) {
	pool := NewPool(ctx, b.workers)
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()

	results := make([]*ConvertResult, 0, len(jobs))
	for result := range pool.Results() {
		convertResult := result.(*ConvertResult)
		results = append(results, convertResult)
		if convertResult.Err != nil {
			pool.Cancel()
		}
	}

	// Report the earliest failure in input order so the error is stable
	// regardless of completion interleaving
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	for _, result := range results {
		if result.Err != nil {
			return results, result.Err
		}
	}

	return results, nil
}

// ListBatchFiles returns the eligible input filenames in sorted order:
// JSON files named sample_card_* that are not already IR output
// (sample_card_ir_*). Anything else in the directory is ignored.
func ListBatchFiles(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		if !strings.HasPrefix(name, "sample_card_") || strings.HasPrefix(name, "sample_card_ir_") {
			continue
		}
		files = append(files, name)
	}

	sort.Strings(files)
	return files, nil
}
