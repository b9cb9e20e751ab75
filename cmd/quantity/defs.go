package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/quantity"
	"github.com/zephyrtronium/quantity/si"
)

// defsFile is the format of a --defs file:
//
//	definitions:
//	  - name: furlong
//	    expr: 201.168{meter}
type defsFile struct {
	Definitions []definition `yaml:"definitions"`
}

type definition struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

func loadDefsFile(name string) ([]definition, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defs, err := loadDefs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return defs, nil
}

func loadDefs(r io.Reader) ([]definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f defsFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't decode definitions: %w", err)
	}
	return f.Definitions, nil
}

// parseGiven parses a --given flag value.
func parseGiven(s string) (definition, error) {
	name, expr, ok := strings.Cut(s, "=")
	if !ok {
		return definition{}, fmt.Errorf(`definitions must be "name=expr", not %q`, s)
	}
	return definition{Name: strings.TrimSpace(name), Expr: strings.TrimSpace(expr)}, nil
}

// env resolves {name} placeholders.
type env struct {
	defs map[string]quantity.Quantity
	// names lists defs in definition order.
	names []string
	log   zerolog.Logger
}

func newEnv(log zerolog.Logger) *env {
	return &env{defs: make(map[string]quantity.Quantity), log: log}
}

// lookup finds a name among the definitions and then the SI table.
func (e *env) lookup(name string) (quantity.Quantity, bool) {
	if q, ok := e.defs[name]; ok {
		return q, true
	}
	return si.Lookup(name)
}

// define evaluates expr and binds the result to name. The expression may use
// names defined earlier. Redefining a name replaces it.
func (e *env) define(name, expr string) error {
	if name == "" || strings.ContainsAny(name, "{}") {
		return fmt.Errorf("bad definition name %q", name)
	}
	q, err := e.eval(expr)
	if err != nil {
		return fmt.Errorf("defining %s: %w", name, err)
	}
	if _, ok := e.defs[name]; !ok {
		e.names = append(e.names, name)
	}
	e.defs[name] = q
	e.log.Debug().Str("name", name).Str("expr", expr).Stringer("value", q).Msg("defined")
	return nil
}

// eval evaluates an expression with placeholders.
func (e *env) eval(src string) (quantity.Quantity, error) {
	segments, names, err := splitTemplate(src)
	if err != nil {
		return quantity.Quantity{}, err
	}
	values := make([]quantity.Operand, len(names))
	for i, name := range names {
		q, ok := e.lookup(name)
		if !ok {
			return quantity.Quantity{}, fmt.Errorf("unknown name %q", name)
		}
		values[i] = q
	}
	q, err := quantity.Evaluate(segments, values...)
	if err != nil {
		return quantity.Quantity{}, err
	}
	e.log.Debug().Str("expr", src).Stringer("value", q).Msg("evaluated")
	return q, nil
}

// splitTemplate splits src at each {name} placeholder. There is always one
// more segment than names. Space around a name is ignored.
func splitTemplate(src string) (segments, names []string, err error) {
	for {
		i := strings.IndexByte(src, '{')
		if i < 0 {
			return append(segments, src), names, nil
		}
		j := strings.IndexByte(src[i+1:], '}')
		if j < 0 {
			return nil, nil, fmt.Errorf("unclosed placeholder in %q", src)
		}
		name := strings.TrimSpace(src[i+1 : i+1+j])
		if name == "" || strings.ContainsRune(name, '{') {
			return nil, nil, fmt.Errorf("bad placeholder %q", src[i:i+2+j])
		}
		segments = append(segments, src[:i])
		names = append(names, name)
		src = src[i+2+j:]
	}
}
