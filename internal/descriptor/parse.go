package descriptor

import (
	"errors"
	"fmt"
	"strings"

	"reflex-remapper/internal/common"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("malformed descriptor")

// Parse parses a method descriptor such as "(Lcom/example/Foo;I)V", or a
// generic method signature.
func Parse(desc string) (*Method, error) {
	p := &parser{data: desc}

	m, err := p.method()
	if err != nil {
		return nil, err
	}

	return m, nil
}

type parser struct {
	data string
	pos  int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.data)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.data[p.pos]
}

func (p *parser) consume() byte {
	if p.eof() {
		return 0
	}

	b := p.data[p.pos]
	p.pos++

	return b
}

func (p *parser) expect(b byte) error {
	if p.eof() {
		return p.errorf("unexpected end, expected %q", b)
	}

	if p.data[p.pos] != b {
		return p.errorf("unexpected character %q, expected %q", p.data[p.pos], b)
	}

	p.pos++

	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), p.pos)
}

// ident reads up to (not including) the first byte in stop.
func (p *parser) ident(stop string) (string, error) {
	start := p.pos
	for !p.eof() && !strings.ContainsRune(stop, rune(p.data[p.pos])) {
		p.pos++
	}

	if p.pos == start {
		return "", p.errorf("empty identifier")
	}

	return p.data[start:p.pos], nil
}

func (p *parser) method() (*Method, error) {
	m := &Method{}

	if p.peek() == '<' {
		params, err := p.typeParameters()
		if err != nil {
			return nil, err
		}

		m.TypeParams = params
	}

	if err := p.expect('('); err != nil {
		return nil, err
	}

	for p.peek() != ')' {
		if p.eof() {
			return nil, p.errorf("unterminated parameter list")
		}

		t, err := p.fieldType()
		if err != nil {
			return nil, err
		}

		m.Params = append(m.Params, t)
	}

	p.consume()

	if p.peek() == 'V' {
		p.consume()
		m.Return = Type{Kind: KindVoid}
	} else {
		t, err := p.fieldType()
		if err != nil {
			return nil, err
		}

		m.Return = t
	}

	for p.peek() == '^' {
		p.consume()

		t, err := p.referenceType()
		if err != nil {
			return nil, err
		}

		m.Throws = append(m.Throws, t)
	}

	if !p.eof() {
		return nil, p.errorf("trailing data %q", p.data[p.pos:])
	}

	return m, nil
}

func (p *parser) fieldType() (Type, error) {
	c := p.peek()
	if _, ok := primitiveNames[c]; ok {
		p.consume()
		return Type{Kind: KindPrimitive, Primitive: c}, nil
	}

	return p.referenceType()
}

func (p *parser) referenceType() (Type, error) {
	switch p.peek() {
	case 'L':
		return p.classType()

	case '[':
		p.consume()

		elem, err := p.fieldType()
		if err != nil {
			return Type{}, err
		}

		return Type{Kind: KindArray, Elem: &elem}, nil

	case 'T':
		p.consume()

		name, err := p.ident(";")
		if err != nil {
			return Type{}, err
		}

		if err := p.expect(';'); err != nil {
			return Type{}, err
		}

		return Type{Kind: KindTypeVariable, Name: name}, nil

	case 0:
		return Type{}, p.errorf("unexpected end, expected a type")

	default:
		return Type{}, p.errorf("unexpected character %q, expected a type", p.peek())
	}
}

func (p *parser) classType() (Type, error) {
	if err := p.expect('L'); err != nil {
		return Type{}, err
	}

	outer, err := p.ident(";<.")
	if err != nil {
		return Type{}, err
	}

	parts := []string{common.NormalizeClassName(outer)}

	for {
		switch p.peek() {
		case '<':
			if err := p.typeArguments(); err != nil {
				return Type{}, err
			}

		case '.':
			p.consume()

			inner, err := p.ident(";<.")
			if err != nil {
				return Type{}, err
			}

			parts = append(parts, inner)

		case ';':
			p.consume()
			return Type{Kind: KindClass, Name: strings.Join(parts, "$")}, nil

		default:
			return Type{}, p.errorf("unterminated class type")
		}
	}
}

func (p *parser) typeArguments() error {
	if err := p.expect('<'); err != nil {
		return err
	}

	if p.peek() == '>' {
		return p.errorf("empty type argument list")
	}

	for p.peek() != '>' {
		switch p.peek() {
		case '*':
			p.consume()
			continue
		case '+', '-':
			p.consume()
		}

		if _, err := p.referenceType(); err != nil {
			return err
		}
	}

	p.consume()

	return nil
}

func (p *parser) typeParameters() ([]string, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}

	var names []string

	for p.peek() != '>' {
		name, err := p.ident(":>")
		if err != nil {
			return nil, err
		}

		if err := p.expect(':'); err != nil {
			return nil, err
		}

		// class bound may be empty when only interface bounds follow
		if c := p.peek(); c != ':' {
			if _, err := p.referenceType(); err != nil {
				return nil, err
			}
		}

		for p.peek() == ':' {
			p.consume()

			if _, err := p.referenceType(); err != nil {
				return nil, err
			}
		}

		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, p.errorf("empty type parameter list")
	}

	p.consume()

	return names, nil
}
