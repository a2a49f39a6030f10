// Package purity defines an analyzer that keeps calculation packages free
// of I/O: they may compute and format values but never print, read files,
// talk to the network or look at the clock.
package purity

import (
	"go/ast"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/astutil"
)

var Analyzer = &analysis.Analyzer{
	Name: "purity",
	Doc:  "reports I/O imports and printing calls in calculation packages",
	Run:  run,
}

// checkedPackages are import path suffixes of packages under check
var checkedPackages string

func init() {
	Analyzer.Flags.StringVar(&checkedPackages, "packages", "internal/ftracker",
		"comma separated list of import path suffixes to check")
}

var forbiddenImports = map[string]struct{}{
	"bufio":       {},
	"crypto/rand": {},
	"io":          {},
	"io/ioutil":   {},
	"log":         {},
	"math/rand":   {},
	"net":         {},
	"net/http":    {},
	"os":          {},
	"os/exec":     {},
	"sync":        {},
	"time":        {},
}

var printFuncs = map[string]struct{}{
	"Print":    {},
	"Printf":   {},
	"Println":  {},
	"Fprint":   {},
	"Fprintf":  {},
	"Fprintln": {},
	"Scan":     {},
	"Scanf":    {},
	"Scanln":   {},
}

func run(pass *analysis.Pass) (interface{}, error) {
	if !checked(pass.Pkg.Path()) {
		return nil, nil
	}

	for _, file := range pass.Files {
		if isTestFile(pass, file) {
			continue
		}

		for _, paragraph := range astutil.Imports(pass.Fset, file) {
			for _, spec := range paragraph {
				path, err := strconv.Unquote(spec.Path.Value)
				if err != nil {
					continue
				}
				if _, ok := forbiddenImports[path]; ok {
					pass.Reportf(spec.Pos(), "calculation package must not import %s", path)
				}
			}
		}

		ast.Inspect(file, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
			if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "fmt" {
				return true
			}
			if _, ok := printFuncs[fn.Name()]; ok {
				pass.Reportf(sel.Pos(), "calculation package must not call fmt.%s", fn.Name())
			}
			return true
		})
	}

	return nil, nil
}

func checked(pkgPath string) bool {
	for _, suffix := range strings.Split(checkedPackages, ",") {
		suffix = strings.TrimSpace(suffix)
		if suffix != "" && strings.HasSuffix(pkgPath, suffix) {
			return true
		}
	}
	return false
}

func isTestFile(pass *analysis.Pass, file *ast.File) bool {
	return strings.HasSuffix(pass.Fset.File(file.Pos()).Name(), "_test.go")
}
