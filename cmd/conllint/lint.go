// lint.go - file collection, per-file linting and reporting
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gosuri/uiprogress"

	"github.com/lgbarn/conllu-go/conllu"
	"github.com/lgbarn/conllu-go/internal/worker"
)

// Options control a lint run.
type Options struct {
	Jobs     int  // number of files linted in parallel
	Quiet    bool // suppress per-error lines
	FailFast bool // stop handing out work after the first failing file
	Progress bool // show a progress bar for multi-file runs
}

// FileReport holds the outcome of linting one file.
type FileReport struct {
	Path      string
	Sentences int
	Tokens    int
	Errors    []*conllu.ParseError
}

// Summary aggregates a whole lint run.
type Summary struct {
	Files      int // files actually linted
	BadFiles   int // files with at least one error
	Sentences  int
	Tokens     int
	ErrorCount int
}

// Run lints every .conllu file reachable from the given paths and writes
// findings to the UI streams. The returned Summary reflects only files that
// were linted; with FailFast some files may be skipped.
func Run(paths []string, opts Options, ui UI) (Summary, error) {
	files, err := collectFiles(paths)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		return Summary{}, fmt.Errorf("no .conllu files found")
	}

	pool := worker.NewPoolWithOptions(func(job worker.Job) worker.Result {
		report, err := lintFile(job.Path)
		return worker.Result{Job: job, Report: report, Err: err}
	},
		worker.WithWorkers(opts.Jobs),
		worker.WithBufferSize(len(files)),
	)
	pool.Start()

	var bar *uiprogress.Bar
	if opts.Progress && len(files) > 1 {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(files))
		bar.AppendCompleted()
		bar.PrependElapsed()
	}

	go func() {
		for i, path := range files {
			pool.Submit(worker.Job{Path: path, Index: i})
		}
		pool.Close()
	}()

	reports := make([]*FileReport, len(files))
	var fatal error
	for res := range pool.Results() {
		if bar != nil {
			bar.Incr()
		}
		if res.Err != nil {
			if fatal == nil {
				fatal = res.Err
			}
			pool.Stop()
			continue
		}
		report := res.Report.(*FileReport)
		reports[res.Job.Index] = report
		if opts.FailFast && len(report.Errors) > 0 {
			pool.Stop()
		}
	}
	if bar != nil {
		uiprogress.Stop()
	}
	if fatal != nil {
		return Summary{}, fatal
	}

	return summarize(reports, opts, ui), nil
}

// summarize prints findings in input order and builds the run summary.
func summarize(reports []*FileReport, opts Options, ui UI) Summary {
	var summary Summary
	for _, r := range reports {
		if r == nil {
			continue // skipped after fail-fast
		}
		summary.Files++
		summary.Sentences += r.Sentences
		summary.Tokens += r.Tokens
		summary.ErrorCount += len(r.Errors)
		if len(r.Errors) > 0 {
			summary.BadFiles++
		}
		if !opts.Quiet {
			for _, perr := range r.Errors {
				fmt.Fprintf(ui.Err, "%s: %v\n", r.Path, perr)
			}
		}
	}
	fmt.Fprintf(ui.Out, "checked %d files: %d sentences, %d tokens, %d errors in %d files\n",
		summary.Files, summary.Sentences, summary.Tokens, summary.ErrorCount, summary.BadFiles)
	return summary
}

// lintFile parses one file to the end, collecting every per-sentence failure.
func lintFile(path string) (*FileReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := &FileReport{Path: path}
	p := conllu.NewParser(f)
	for {
		sent, err := p.Next()
		if err != nil {
			var perr *conllu.ParseError
			if errors.As(err, &perr) {
				r.Errors = append(r.Errors, perr)
				continue
			}
			return nil, err // read failure, not a format error
		}
		if sent == nil {
			return r, nil
		}
		r.Sentences++
		r.Tokens += len(sent.Tokens)
	}
}

// collectFiles expands the argument paths: files are taken as given,
// directories are walked for *.conllu entries.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == ".conllu" {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
