// Command sqllint verifies that every SQL constant carries a `--sql <uuid>`
// audit marker on its first line, so SQLRunner can log it. Run against
// internal/sqlinline by default.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	sqlKeyword = regexp.MustCompile(`(?i)\b(select|insert|update|delete|create|with)\b`)
	markerLine = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

func main() {
	flag.Parse()
	target := "internal/sqlinline"
	if flag.NArg() > 0 {
		target = flag.Arg(0)
	}

	bad := 0
	err := filepath.WalkDir(target, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		bad += lintFile(path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sqllint: %v\n", err)
		os.Exit(1)
	}
	if bad > 0 {
		fmt.Fprintf(os.Stderr, "sqllint: %d statement(s) missing --sql <uuid> markers\n", bad)
		os.Exit(1)
	}
}

func lintFile(path string) int {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sqllint: %s: %v\n", path, err)
		return 1
	}

	bad := 0
	ast.Inspect(file, func(n ast.Node) bool {
		lit, ok := n.(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return true
		}
		text, err := unquote(lit.Value)
		if err != nil || !sqlKeyword.MatchString(text) {
			return true
		}
		first := strings.TrimSpace(strings.SplitN(strings.TrimSpace(text), "\n", 2)[0])
		if !markerLine.MatchString(first) {
			pos := fset.Position(lit.Pos())
			fmt.Fprintf(os.Stderr, "  %s:%d missing or invalid marker\n", pos.Filename, pos.Line)
			bad++
		}
		return true
	})
	return bad
}

func unquote(v string) (string, error) {
	if strings.HasPrefix(v, "`") {
		return strings.Trim(v, "`"), nil
	}
	return strconv.Unquote(v)
}
