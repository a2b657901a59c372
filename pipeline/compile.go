package pipeline

import (
	"fmt"
	"strings"

	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/expr"
	"github.com/go-sif/dpyr/operations/transform"
	"github.com/go-sif/dpyr/operations/util"
	"gopkg.in/yaml.v3"
)

type stepCompiler func(args *yaml.Node, d dpyr.Displayer) (*dpyr.DataFrameOperation, error)

var compilers = map[string]stepCompiler{
	"select":   compileSelect,
	"filter":   compileFilter,
	"mutate":   compileMutate,
	"arrange":  compileArrange,
	"head":     compileHead,
	"distinct": compileDistinct,
	"rename":   compileRename,
	"count":    compileCount,
	"preview":  compilePreview,
}

// Compile turns the steps of a Definition into DataFrameOperations. Preview steps
// present rows through d.
func Compile(def *Definition, d dpyr.Displayer) ([]*dpyr.DataFrameOperation, error) {
	ops := make([]*dpyr.DataFrameOperation, 0, len(def.Steps))
	for i, step := range def.Steps {
		compiler, ok := compilers[step.Name]
		if !ok {
			return nil, fmt.Errorf("step %d: unknown step %q", i, step.Name)
		}
		op, err := compiler(&step.Args, d)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Name, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// columns decodes select and count arguments: column names, and single-key
// mappings binding a name to a SQL fragment
func columns(args *yaml.Node) ([]interface{}, error) {
	var result []interface{}
	for _, item := range items(args) {
		switch item.Kind {
		case yaml.ScalarNode:
			result = append(result, item.Value)
		case yaml.MappingNode:
			pairs, err := mapping(item)
			if err != nil {
				return nil, err
			}
			for _, p := range pairs {
				result = append(result, transform.Named(p[0], expr.SQL(p[1])))
			}
		default:
			return nil, fmt.Errorf("line %d: expected a column name or a mapping", item.Line)
		}
	}
	return result, nil
}

// scalars decodes a scalar or a sequence of scalars
func scalars(args *yaml.Node) ([]string, error) {
	var result []string
	for _, item := range items(args) {
		if item.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: expected a string", item.Line)
		}
		result = append(result, item.Value)
	}
	return result, nil
}

// items treats a scalar or mapping as a sequence of one, and null as an empty sequence
func items(args *yaml.Node) []*yaml.Node {
	switch {
	case args.Kind == yaml.SequenceNode:
		return args.Content
	case args.Kind == yaml.ScalarNode && args.Tag == "!!null":
		return nil
	case args.Kind == 0:
		return nil
	}
	return []*yaml.Node{args}
}

// mapping decodes a mapping of scalars into ordered key/value pairs
func mapping(args *yaml.Node) ([][2]string, error) {
	if args.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", args.Line)
	}
	pairs := make([][2]string, 0, len(args.Content)/2)
	for i := 0; i+1 < len(args.Content); i += 2 {
		key, value := args.Content[i], args.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: expected a string value for %s", key.Line, key.Value)
		}
		pairs = append(pairs, [2]string{key.Value, value.Value})
	}
	return pairs, nil
}

func compileSelect(args *yaml.Node, d dpyr.Displayer) (*dpyr.DataFrameOperation, error) {
	cols, err := columns(args)
	if err != nil {
		return nil, err
	}
	return transform.Select(cols...), nil
}

func compileFilter(args *yaml.Node, d dpyr.Displayer) (*dpyr.DataFrameOperation, error) {
	fragments, err := scalars(args)
	if err != nil {
		return nil, err
	}
	predicates := make([]interface{}, len(fragments))
	for i, f := range fragments {
		predicates[i] = expr.SQL(f)
	}
	return transform.Filter(predicates...), nil
}

func compileMutate(args *yaml.Node, d dpyr.Displayer) (*dpyr.DataFrameOperation, error) {
	pairs, err := mapping(args)
	if err != nil {
		return nil, err
	}
	bindings := make([]interface{}, len(pairs))
	for i, p := range pairs {
		bindings[i] = transform.Named(p[0], expr.SQL(p[1]))
	}
	return transform.Mutate(bindings...), nil
}

func compileArrange(args *yaml.Node, d dpyr.Displayer) (*dpyr.DataFrameOperation, error) {
	names, err := scalars(args)
	if err != nil {
		return nil, err
	}
	keys := make([]interface{}, len(names))
	for i, name := range names {
		if strings.HasPrefix(name, "-") {
			keys[i] = transform.Desc(name[1:])
		} else {
			keys[i] = name
		}
	}
	return transform.Arrange(keys...), nil
}

func compileHead(args *yaml.Node, d dpyr.Displayer) (*dpyr.DataFrameOperation, error) {
	var n int
	if err := args.Decode(&n); err != nil {
		return nil, err
	}
	return transform.Head(n), nil
}

func compileDistinct(args *yaml.Node, d dpyr.Displayer) (*dpyr.DataFrameOperation, error) {
	names, err := scalars(args)
	if err != nil {
		return nil, err
	}
	cols := make([]interface{}, len(names))
	for i, name := range names {
		cols[i] = name
	}
	return transform.Distinct(cols...), nil
}

func compileRename(args *yaml.Node, d dpyr.Displayer) (*dpyr.DataFrameOperation, error) {
	pairs, err := mapping(args)
	if err != nil {
		return nil, err
	}
	renames := make([]transform.NamedArg, len(pairs))
	for i, p := range pairs {
		renames[i] = transform.Named(p[0], p[1])
	}
	return transform.Rename(renames...), nil
}

func compileCount(args *yaml.Node, d dpyr.Displayer) (*dpyr.DataFrameOperation, error) {
	cols, err := columns(args)
	if err != nil {
		return nil, err
	}
	return transform.Count(cols...), nil
}

// previewArgs are the arguments of a preview step, given as a mapping
type previewArgs struct {
	Label string `yaml:"label"`
	Rows  int    `yaml:"rows"`
}

func compilePreview(args *yaml.Node, d dpyr.Displayer) (*dpyr.DataFrameOperation, error) {
	conf := previewArgs{}
	switch args.Kind {
	case yaml.MappingNode:
		if err := args.Decode(&conf); err != nil {
			return nil, err
		}
	case yaml.ScalarNode:
		if args.Tag != "!!null" {
			conf.Label = args.Value
		}
	case 0:
	default:
		return nil, fmt.Errorf("line %d: expected a label or a mapping", args.Line)
	}
	return util.PreviewTo(d, conf.Label, conf.Rows), nil
}
