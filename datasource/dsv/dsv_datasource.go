package dsv

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/expr"
)

// ParserConf configures how delimited files are read
type ParserConf struct {
	HeaderLines     int    // The number of lines to ignore from the beginning of each file, before the column names. Defaults to 0.
	NoHeader        bool   // Whether the files lack a line of column names. Defaults to false.
	Delimiter       rune   // The delimiter separating columns in the file. Defaults to ,
	Comment         rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue        string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
	KeepDottedNames bool   // Whether to keep dots in column names. Defaults to false, replacing each . with _
}

// CreateDataFrame reads every file matching glob into a DataFrame held by eng
func CreateDataFrame(eng dpyr.Engine, glob string, conf *ParserConf) (dpyr.DataFrame, error) {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	if conf.Comment != 0 && conf.Comment == conf.Delimiter {
		return nil, fmt.Errorf("comment character %q cannot be equal to the delimiter", conf.Comment)
	}
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", glob)
	}
	df, err := eng.ReadCSV(glob, dpyr.CSVOptions{
		Delimiter: conf.Delimiter,
		Header:    !conf.NoHeader,
		SkipLines: conf.HeaderLines,
		Comment:   conf.Comment,
		NilValue:  conf.NilValue,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", glob, err)
	}
	if conf.KeepDottedNames {
		return df, nil
	}
	return undot(eng, df)
}

// undot renames every column containing a dot, replacing dots with underscores.
// df is released whether or not renaming succeeds.
func undot(eng dpyr.Engine, df dpyr.DataFrame) (dpyr.DataFrame, error) {
	target := df.GetSchema()
	names := target.ColumnNames()
	changed := false
	projection := make([]expr.Expr, len(names))
	for i, name := range names {
		projection[i] = expr.Col(name)
		if !strings.Contains(name, ".") {
			continue
		}
		replaced := strings.ReplaceAll(name, ".", "_")
		if _, err := target.RenameColumn(name, replaced); err != nil {
			df.Release()
			return nil, fmt.Errorf("cannot rename column %s to %s: %w", name, replaced, err)
		}
		projection[i] = projection[i].Alias(replaced)
		changed = true
	}
	if !changed {
		return df, nil
	}
	renamed, err := eng.Select(df, projection...)
	if err != nil {
		df.Release()
		return nil, err
	}
	if err := df.Release(); err != nil {
		renamed.Release()
		return nil, err
	}
	return renamed, nil
}
