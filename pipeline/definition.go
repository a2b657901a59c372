// Package pipeline describes dpyr pipelines in YAML, so that they can be stored
// alongside data and run from the command line:
//
//	source:
//	  path: data/orders-*.csv
//	steps:
//	  - filter: "qty > 2"
//	  - mutate:
//	      total: "qty * price"
//	  - arrange: [-total]
//	  - head: 10
//
// Column references are names. Predicates and derived values are SQL fragments,
// resolved by the engine.
package pipeline

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-sif/dpyr/datasource/dsv"
	"gopkg.in/yaml.v3"
)

// Definition is a source of delimited files and the steps applied to it
type Definition struct {
	Source Source `yaml:"source"`
	Steps  []Step `yaml:"steps"`
}

// Source describes the files a pipeline reads
type Source struct {
	Path            string `yaml:"path"`
	Delimiter       string `yaml:"delimiter"`
	HeaderLines     int    `yaml:"header_lines"`
	NoHeader        bool   `yaml:"no_header"`
	Comment         string `yaml:"comment"`
	NilValue        string `yaml:"nil_value"`
	KeepDottedNames bool   `yaml:"keep_dotted_names"`
}

// Step is a single-key mapping from the name of an operation to its arguments
type Step struct {
	Name string
	Args yaml.Node
}

// UnmarshalYAML decodes a Step from a single-key mapping
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: a step must be a mapping with a single key", value.Line)
	}
	s.Name = value.Content[0].Value
	s.Args = *value.Content[1]
	return nil
}

// Load reads a Definition from a YAML file, substituting ${VAR} references with
// the values of environment variables
func Load(filePath string) (*Definition, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a Definition from YAML, substituting ${VAR} references with the
// values of environment variables
func Parse(data []byte) (*Definition, error) {
	def := &Definition{}
	if err := yaml.Unmarshal([]byte(substituteEnvVars(string(data))), def); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline: %w", err)
	}
	return def, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values. Substituted
// values are not themselves searched for references.
func substituteEnvVars(content string) string {
	var b strings.Builder
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start
		b.WriteString(content[:start])
		b.WriteString(os.Getenv(content[start+2 : end]))
		content = content[end+1:]
	}
	b.WriteString(content)
	return b.String()
}

// ParserConf converts a Source into the configuration of the dsv reader
func (s *Source) ParserConf() (*dsv.ParserConf, error) {
	delimiter, err := singleRune("delimiter", s.Delimiter)
	if err != nil {
		return nil, err
	}
	comment, err := singleRune("comment", s.Comment)
	if err != nil {
		return nil, err
	}
	return &dsv.ParserConf{
		HeaderLines:     s.HeaderLines,
		NoHeader:        s.NoHeader,
		Delimiter:       delimiter,
		Comment:         comment,
		NilValue:        s.NilValue,
		KeepDottedNames: s.KeepDottedNames,
	}, nil
}

func singleRune(field string, value string) (rune, error) {
	if len(value) == 0 {
		return 0, nil
	}
	if value == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(value)
	if size != len(value) {
		return 0, fmt.Errorf("%s must be a single character, got %q", field, value)
	}
	return r, nil
}
