package internalcheck

import (
	"go/ast"
	"testing"

	"golang.org/x/tools/go/packages"
)

var corePackages = []string{
	"github.com/coinbase/ecpoint-go/pkg/ecpoint",
	"github.com/coinbase/ecpoint-go/pkg/ecpoint/curve",
}

func loadCore(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, corePackages...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	for _, pkg := range pkgs {
		for _, perr := range pkg.Errors {
			t.Fatalf("%s: %v", pkg.PkgPath, perr)
		}
	}
	return pkgs
}

// calledFunc returns the package path and name of the function called by
// call, or empty strings for anything that is not a plain function or method.
func calledFunc(pkg *packages.Package, call *ast.CallExpr) (string, string) {
	var ident *ast.Ident
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		ident = fn
	case *ast.SelectorExpr:
		ident = fn.Sel
	default:
		return "", ""
	}
	obj := pkg.TypesInfo.Uses[ident]
	if obj == nil {
		return "", ""
	}
	if obj.Pkg() == nil {
		return "builtin", obj.Name()
	}
	return obj.Pkg().Path(), obj.Name()
}
