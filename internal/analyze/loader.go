package analyze

import (
	"fmt"
	"go/ast"
	gotoken "go/token"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"attrgen/internal/diagnostic"
	"attrgen/token"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts attribute schemas from them.
type Analyzer struct {
	diags diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Diagnostics returns the diagnostics accumulated so far.
func (a *Analyzer) Diagnostics() *diagnostic.Diagnostics {
	return &a.diags
}

// LoadPackages loads the specified packages and extracts every schema
// struct marked with //+attrgen. Patterns are standard Go package
// patterns (e.g. "./...", "attrgen/examples/basic"). Schemas with
// declaration errors are reported as diagnostics and excluded from the
// result; the returned error covers load failures only.
func (a *Analyzer) LoadPackages(patterns ...string) ([]SchemaInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var schemas []SchemaInfo
	for _, pkg := range pkgs {
		schemas = append(schemas, a.processPackage(pkg)...)
	}

	a.checkDuplicateNames(schemas)
	return schemas, nil
}

// processPackage extracts marked schema structs from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) []SchemaInfo {
	var schemas []SchemaInfo

	for _, file := range pkg.Syntax {
		filename := pkg.Fset.Position(file.Pos()).Filename

		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != gotoken.TYPE {
				continue
			}

			for _, s := range gen.Specs {
				spec, ok := s.(*ast.TypeSpec)
				if !ok {
					continue
				}
				st, ok := spec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				doc := spec.Doc
				if doc == nil {
					doc = gen.Doc
				}

				name, marked := a.resolveAttrName(pkg, spec.Name.Name, doc)
				if !marked {
					continue
				}

				info, ok := a.extractSchema(pkg, spec, st, filename, name)
				if ok {
					schemas = append(schemas, info)
				}
			}
		}
	}

	return schemas
}

// checkDuplicateNames warns when two schemas in the same package
// resolve to the same attribute name. Lookup would only ever see the
// one matching first, so this is suspicious but not fatal.
func (a *Analyzer) checkDuplicateNames(schemas []SchemaInfo) {
	seen := make(map[string]*SchemaInfo)
	for i := range schemas {
		s := &schemas[i]
		key := s.PkgPath + ":" + s.AttrName
		if prev, ok := seen[key]; ok {
			a.diags.AddWarning(diagnostic.CodeDuplicateName,
				fmt.Sprintf("attribute name %q already used by %s", s.AttrName, prev.TypeName),
				s.TypeName, "", s.Pos)
			continue
		}
		seen[key] = s
	}
}

// position converts a go/token position of n to the module's own form.
func position(fset *gotoken.FileSet, n ast.Node) token.Pos {
	p := fset.Position(n.Pos())
	p.Filename = filepath.Base(p.Filename)
	return token.FromPosition(p)
}
