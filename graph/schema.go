package graph

import (
	_ "embed"
	"fmt"
	"sort"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphqls
var querySDL string

//go:embed mutation.graphqls
var mutationSDL string

// Variant определяет, какие корневые операции отдает сервер
type Variant int

const (
	// ReadOnly - только Query
	ReadOnly Variant = iota + 1
	// ReadWrite - Query и Mutation
	ReadWrite
)

func (v Variant) String() string {
	switch v {
	case ReadOnly:
		return "read-only"
	case ReadWrite:
		return "read-write"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// SDL собирает схему для варианта
func SDL(v Variant) string {
	if v == ReadWrite {
		return querySDL + "\n" + mutationSDL
	}
	return querySDL
}

// NewSchema парсит схему варианта и связывает ее с резолвером.
// Несоответствие резолвера схеме обнаруживается здесь, а не на запросе.
func NewSchema(v Variant, r *Resolver, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	if v != ReadOnly && v != ReadWrite {
		return nil, fmt.Errorf("unknown schema variant: %s", v)
	}

	schema, err := graphql.ParseSchema(SDL(v), r, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", v, err)
	}
	return schema, nil
}

// Operations возвращает имена корневых полей по типу операции ("query", "mutation")
func Operations(v Variant) (map[string][]string, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: SDL(v)})
	if err != nil {
		return nil, fmt.Errorf("load %s schema: %w", v, err)
	}

	ops := make(map[string][]string)
	if schema.Query != nil {
		ops["query"] = fieldNames(schema.Query)
	}
	if schema.Mutation != nil {
		ops["mutation"] = fieldNames(schema.Mutation)
	}
	return ops, nil
}

func fieldNames(def *ast.Definition) []string {
	names := make([]string, 0, len(def.Fields))
	for _, f := range def.Fields {
		// __schema, __type
		if len(f.Name) >= 2 && f.Name[:2] == "__" {
			continue
		}
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
