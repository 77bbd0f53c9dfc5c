package model

// MethodDeclaration is a single MOCK_METHOD found in a mockable class.
type MethodDeclaration struct {
	// Signature is the return type, name and parameter list joined with ", "
	// exactly as they are emitted into the proxy call.
	Signature  string
	ReturnType string
	Name       string
	Params     string
	Const      bool
	Line       int
}

// ClassDeclaration is a mockable class and its mock methods in declaration order.
type ClassDeclaration struct {
	Name    string
	Methods []MethodDeclaration
	Line    int
}

// ProxySource describes the proxy file generated for one header.
type ProxySource struct {
	Header  Path
	Output  Path
	Classes []ClassDeclaration
}

// MethodCount returns the number of proxy lines the source will contain.
func (p ProxySource) MethodCount() int {
	count := 0
	for _, class := range p.Classes {
		count += len(class.Methods)
	}

	return count
}
