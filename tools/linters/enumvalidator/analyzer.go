// Package enumvalidator reports string literals used where a model enum
// constant is expected.
package enumvalidator

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "enumvalidator",
	Doc:  "checks that enum fields only use defined constants, not string literals",
	Run:  run,
}

// enumTypes are the string enums of runway.app/api/internal/model.
var enumTypes = map[string]bool{
	"TransactionType": true,
	"MembershipRole":  true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.AssignStmt:
				for i, lhs := range node.Lhs {
					if i >= len(node.Rhs) {
						continue
					}
					if sel, ok := lhs.(*ast.SelectorExpr); ok && isEnumLiteral(pass, node.Rhs[i]) {
						pass.Reportf(node.Pos(),
							"enum field %s assigned string literal; use defined constant instead",
							sel.Sel.Name)
					}
				}
			case *ast.KeyValueExpr:
				if key, ok := node.Key.(*ast.Ident); ok && isEnumLiteral(pass, node.Value) {
					pass.Reportf(node.Pos(),
						"enum field %s set to string literal; use defined constant instead",
						key.Name)
				}
			case *ast.BinaryExpr:
				if node.Op != token.EQL && node.Op != token.NEQ {
					return true
				}
				if isEnumLiteral(pass, node.X) || isEnumLiteral(pass, node.Y) {
					pass.Reportf(node.Pos(), "enum compared with string literal; use defined constant instead")
				}
			}
			return true
		})
	}
	return nil, nil
}

// isEnumLiteral reports whether expr is a string literal that the type
// checker converted to one of the enum types.
func isEnumLiteral(pass *analysis.Pass, expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return false
	}
	named, ok := pass.TypesInfo.TypeOf(lit).(*types.Named)
	return ok && enumTypes[named.Obj().Name()]
}
