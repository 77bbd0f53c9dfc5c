package domain

import (
	"cmock.dev/pkg/cmock/pkg"
	m "cmock.dev/pkg/cmock/internal/model"
)

const (
	// ProxyFunctionMacro emits the proxy for a non-const mock method.
	ProxyFunctionMacro = "CMOCK_MOCK_FUNCTION"
	// ProxyConstFunctionMacro emits the proxy for a const mock method.
	ProxyConstFunctionMacro = "CMOCK_MOCK_CONST_FUNCTION"
)

// RenderRenameMap renders renames in the "plain prefixed" line format read by
// objcopy --redefine-syms.
func RenderRenameMap(renames m.RenameMap) ([]byte, error) {
	return pkg.Render(pkg.DefaultBufferPool, func(b pkg.Buffer) error {
		for _, rename := range renames {
			_, _ = b.WriteString(string(rename.From))
			_ = b.WriteByte(' ')
			_, _ = b.WriteString(string(rename.To))
			_ = b.WriteByte('\n')
		}

		return nil
	})
}

// RenderProxy renders the proxy source for the classes of one header.
func RenderProxy(headerName string, classes []m.ClassDeclaration) ([]byte, error) {
	return pkg.Render(pkg.DefaultBufferPool, func(b pkg.Buffer) error {
		_, _ = b.WriteString("#include \"")
		_, _ = b.WriteString(headerName)
		_, _ = b.WriteString("\"\n")

		for _, class := range classes {
			_ = b.WriteByte('\n')

			for _, method := range class.Methods {
				macro := ProxyFunctionMacro
				if method.Const {
					macro = ProxyConstFunctionMacro
				}

				_, _ = b.WriteString(macro)
				_ = b.WriteByte('(')
				_, _ = b.WriteString(class.Name)
				_, _ = b.WriteString(", ")
				_, _ = b.WriteString(method.Signature)
				_, _ = b.WriteString(");\n")
			}
		}

		return nil
	})
}
