package header

import (
	"fmt"
	"strings"

	m "cmock.dev/pkg/cmock/internal/model"
)

const (
	// MockerBase is the CRTP base a class must name itself in to be mockable.
	MockerBase = "CMockMocker"
	// MockMethodMacro declares a mocked method inside a mockable class.
	MockMethodMacro = "MOCK_METHOD"
)

var closerOf = map[string]string{"(": ")", "[": "]", "{": "}"}

// Parse returns the mockable classes declared in src in source order.
// Classes that never mention CMockMocker<Self> are left out.
func Parse(src []byte) ([]m.ClassDeclaration, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}

	return p.parseAll()
}

type parser struct {
	toks    []token
	classes []m.ClassDeclaration
}

type classHead struct {
	name      string
	line      int
	baseStart int
	openBrace int
}

func (p *parser) parseAll() ([]m.ClassDeclaration, error) {
	for i := 0; i < len(p.toks); i++ {
		if !p.isClassKeyword(i) {
			continue
		}

		end, err := p.parseClass(i)
		if err != nil {
			return nil, err
		}

		if end > i {
			i = end
		}
	}

	return p.classes, nil
}

func (p *parser) isClassKeyword(i int) bool {
	t := p.toks[i]
	if t.kind != tokIdent || (t.text != "class" && t.text != "struct") {
		return false
	}

	return i == 0 || p.toks[i-1].text != "enum"
}

// parseClass parses the class introduced by the keyword at kw. It returns the
// index of the closing brace, or kw when the keyword does not start a
// definition (forward declarations, template parameters, elaborated types).
func (p *parser) parseClass(kw int) (int, error) {
	head, ok := p.scanHead(kw)
	if !ok {
		return kw, nil
	}

	class := m.ClassDeclaration{Name: head.name, Line: head.line}
	mockable := head.baseStart >= 0 && p.mentionsMocker(head.baseStart, head.openBrace, head.name)

	var stack []string

	for k := head.openBrace + 1; k < len(p.toks); k++ {
		t := p.toks[k]

		if t.kind == tokPunct {
			if closer, opens := closerOf[t.text]; opens {
				stack = append(stack, closer)
				continue
			}

			if t.text == ")" || t.text == "]" || t.text == "}" {
				if len(stack) == 0 {
					if t.text != "}" {
						return 0, &SyntaxError{Line: t.line, Msg: fmt.Sprintf("unbalanced %q in body of class %s", t.text, head.name)}
					}

					if mockable {
						p.classes = append(p.classes, class)
					}

					return k, nil
				}

				if stack[len(stack)-1] != t.text {
					return 0, &SyntaxError{Line: t.line, Msg: fmt.Sprintf("unbalanced %q in body of class %s", t.text, head.name)}
				}

				stack = stack[:len(stack)-1]
			}

			continue
		}

		if len(stack) > 0 || t.kind != tokIdent {
			continue
		}

		switch {
		case p.isClassKeyword(k):
			end, err := p.parseClass(k)
			if err != nil {
				return 0, err
			}

			k = end
		case t.text == MockMethodMacro && p.punctAt(k+1, "("):
			method, end, err := p.parseMockMethod(k)
			if err != nil {
				return 0, err
			}

			class.Methods = append(class.Methods, method)
			k = end
		case t.text == MockerBase && !mockable:
			mockable = p.mentionsMocker(k, len(p.toks), head.name)
		}
	}

	return 0, &SyntaxError{Line: head.line, Msg: fmt.Sprintf("unterminated body of class %s", head.name)}
}

// scanHead walks from the class keyword to the opening brace, collecting the
// class name and the start of the base clause.
func (p *parser) scanHead(kw int) (classHead, bool) {
	head := classHead{line: p.toks[kw].line, baseStart: -1}
	depth, angle := 0, 0

	for j := kw + 1; j < len(p.toks); j++ {
		t := p.toks[j]

		if t.kind != tokPunct {
			if depth == 0 && angle == 0 && head.baseStart < 0 && t.kind == tokIdent && t.text != "final" {
				head.name = t.text
				head.line = t.line
			}

			continue
		}

		switch t.text {
		case "(", "[":
			depth++
			continue
		case ")", "]":
			if depth == 0 {
				return head, false
			}

			depth--

			continue
		}

		if depth > 0 {
			continue
		}

		switch t.text {
		case "{":
			head.openBrace = j
			return head, true
		case ":":
			if head.baseStart < 0 {
				head.baseStart = j
			}
		case "::":
		case "<":
			if head.baseStart < 0 {
				angle++
			}
		case ">", ",":
			if head.baseStart >= 0 {
				continue
			}

			if angle == 0 {
				return head, false
			}

			if t.text == ">" {
				angle--
			}
		default:
			return head, false
		}
	}

	return head, false
}

// mentionsMocker reports whether CMockMocker<name...> appears in toks[from:to].
// The first template argument names the class; template arguments of its own
// (CMockMocker<W<T>>) and a leading namespace (CMockMocker<ns::W>) are allowed.
func (p *parser) mentionsMocker(from, to int, name string) bool {
	if name == "" {
		return false
	}

	for i := from; i < to && i < len(p.toks); i++ {
		if p.toks[i].text != MockerBase || !p.punctAt(i+1, "<") {
			continue
		}

		if p.qualifiedName(i+2, to) == name {
			return true
		}
	}

	return false
}

// qualifiedName returns the last component of the a::b::c name starting at from.
func (p *parser) qualifiedName(from, to int) string {
	name := ""

	for j := from; j < to && j < len(p.toks); j++ {
		t := p.toks[j]

		switch {
		case t.kind == tokIdent && (name == "" || p.punctAt(j-1, "::")):
			name = t.text
		case t.kind == tokPunct && t.text == "::":
		default:
			return name
		}
	}

	return name
}

// parseMockMethod parses MOCK_METHOD(ret, name, (params)[, (qualifiers)])
// starting at the macro name and returns the index of its closing paren.
func (p *parser) parseMockMethod(at int) (m.MethodDeclaration, int, error) {
	line := p.toks[at].line
	args := [][2]int{}
	argStart := at + 2

	var stack []string

	for k := at + 2; k < len(p.toks); k++ {
		t := p.toks[k]
		if t.kind != tokPunct {
			continue
		}

		if closer, opens := closerOf[t.text]; opens {
			stack = append(stack, closer)
			continue
		}

		switch t.text {
		case ",":
			if len(stack) == 0 {
				args = append(args, [2]int{argStart, k})
				argStart = k + 1
			}
		case ")", "]", "}":
			if len(stack) == 0 {
				if t.text != ")" {
					return m.MethodDeclaration{}, 0, &SyntaxError{Line: t.line, Msg: fmt.Sprintf("unbalanced %q in %s", t.text, MockMethodMacro)}
				}

				args = append(args, [2]int{argStart, k})

				method, err := p.buildMethod(line, args)

				return method, k, err
			}

			if stack[len(stack)-1] != t.text {
				return m.MethodDeclaration{}, 0, &SyntaxError{Line: t.line, Msg: fmt.Sprintf("unbalanced %q in %s", t.text, MockMethodMacro)}
			}

			stack = stack[:len(stack)-1]
		}
	}

	return m.MethodDeclaration{}, 0, &SyntaxError{Line: line, Msg: fmt.Sprintf("unbalanced parentheses in %s", MockMethodMacro)}
}

func (p *parser) buildMethod(line int, args [][2]int) (m.MethodDeclaration, error) {
	if len(args) < 3 {
		return m.MethodDeclaration{}, &SyntaxError{Line: line, Msg: fmt.Sprintf("%s expects a return type, a name and a parameter list", MockMethodMacro)}
	}

	for _, arg := range args[:3] {
		if arg[0] >= arg[1] {
			return m.MethodDeclaration{}, &SyntaxError{Line: line, Msg: fmt.Sprintf("empty argument in %s", MockMethodMacro)}
		}
	}

	params := args[2]
	if !p.punctAt(params[0], "(") || !p.punctAt(params[1]-1, ")") {
		return m.MethodDeclaration{}, &SyntaxError{Line: line, Msg: fmt.Sprintf("%s parameter list must be parenthesized", MockMethodMacro)}
	}

	method := m.MethodDeclaration{
		ReturnType: p.text(args[0][0], args[0][1]),
		Name:       p.text(args[1][0], args[1][1]),
		Params:     p.text(params[0], params[1]),
		Line:       line,
	}
	method.Signature = strings.Join([]string{method.ReturnType, method.Name, method.Params}, ", ")

	if len(args) > 3 {
		method.Const = p.hasConstQualifier(args[3][0], args[3][1])
	}

	return method, nil
}

func (p *parser) hasConstQualifier(from, to int) bool {
	if from >= to || !p.punctAt(from, "(") {
		return false
	}

	for k := from; k < to; k++ {
		if p.toks[k].kind == tokIdent && p.toks[k].text == "const" {
			return true
		}
	}

	return false
}

// text renders toks[from:to] with a single space wherever the source had
// whitespace or comments between two tokens, except just inside brackets
// and before commas.
func (p *parser) text(from, to int) string {
	var b strings.Builder

	for k := from; k < to; k++ {
		if k > from && p.toks[k].start > p.toks[k-1].end && !p.tight(k-1, k) {
			b.WriteByte(' ')
		}

		b.WriteString(p.toks[k].text)
	}

	return b.String()
}

func (p *parser) tight(prev, cur int) bool {
	switch p.toks[prev].text {
	case "(", "[":
		return p.toks[prev].kind == tokPunct
	}

	switch p.toks[cur].text {
	case ")", "]", ",":
		return p.toks[cur].kind == tokPunct
	}

	return false
}

func (p *parser) punctAt(i int, text string) bool {
	return i >= 0 && i < len(p.toks) && p.toks[i].kind == tokPunct && p.toks[i].text == text
}
