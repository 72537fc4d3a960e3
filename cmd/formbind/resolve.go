package main

import (
	"fmt"
	"path/filepath"

	"form-binder/internal/analyze"
	"form-binder/internal/gen"
)

// resolvePackage finds the loaded package a pattern refers to. Patterns
// are import paths or directories such as "./models", relative to dir
// when it is set.
func resolvePackage(graph *analyze.Graph, dir, pattern string) *analyze.PackageInfo {
	if p, ok := graph.Packages[pattern]; ok {
		return p
	}

	path := pattern
	if dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}

	for _, p := range graph.Packages {
		if p.Dir == abs {
			return p
		}
	}

	return nil
}

// loadStructs loads pattern and returns the named structs of its package,
// or all of them when names is empty.
func loadStructs(g *globalOptions, pattern string, names []string) ([]*analyze.StructInfo, error) {
	graph, err := g.analyzer().LoadPackages(pattern)
	if err != nil {
		return nil, err
	}

	pkg := resolvePackage(graph, g.dir, pattern)
	if pkg == nil {
		return nil, fmt.Errorf("package %s was not loaded", pattern)
	}

	if len(names) == 0 {
		structs := make([]*analyze.StructInfo, 0, len(pkg.Structs))
		for _, id := range pkg.Structs {
			structs = append(structs, graph.Structs[id])
		}

		return structs, nil
	}

	return gen.SortedStructs(graph, pkg.Path, names)
}
