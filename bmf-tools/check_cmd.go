package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/bmfont"
	"github.com/thatisuday/commando"
	"golang.org/x/sync/errgroup"
)

type checkResult struct {
	Path  string
	Chars int
	Err   error
}

// checkFiles decodes every file, at most `jobs` of them at a time.
// Results are in the order of `paths`.
func checkFiles(paths []string, jobs int) []checkResult {
	results := make([]checkResult, len(paths))
	if jobs < 1 {
		jobs = 1
	}
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			results[i].Path = path
			f, err := bmfont.LoadFont(path)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Chars = f.Chars.Len()
			return nil
		})
	}
	_ = g.Wait() // per-file errors are reported in results
	return results
}

func splitPaths(arg string) []string {
	var paths []string
	for _, p := range strings.Split(arg, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func runCheckCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	paths := splitPaths(args["fonts"].Value)
	if len(paths) == 0 {
		fatalf("at least one font path is required")
	}
	jobs := mustFlagInt(flags["jobs"], "jobs")
	tracer().Debugf("checking %d files with %d jobs", len(paths), jobs)
	failed := 0
	for _, r := range checkFiles(paths, jobs) {
		if r.Err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", r.Path, r.Err)
			continue
		}
		fmt.Printf("OK   %s (%d chars)\n", r.Path, r.Chars)
	}
	if failed > 0 {
		fmt.Printf("%d of %d files failed\n", failed, len(paths))
		os.Exit(1)
	}
}
