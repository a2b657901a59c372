package pipeline

import (
	"fmt"

	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/datasource/dsv"
)

// Run reads the source of a Definition with eng and applies its steps. Preview
// steps present rows through d.
func Run(eng dpyr.Engine, def *Definition, d dpyr.Displayer) (dpyr.DataFrame, error) {
	if len(def.Source.Path) == 0 {
		return nil, fmt.Errorf("pipeline has no source path")
	}
	ops, err := Compile(def, d)
	if err != nil {
		return nil, err
	}
	conf, err := def.Source.ParserConf()
	if err != nil {
		return nil, err
	}
	df, err := dsv.CreateDataFrame(eng, def.Source.Path, conf)
	if err != nil {
		return nil, err
	}
	result, err := df.To(ops...)
	if err != nil {
		df.Release()
		return nil, err
	}
	if result != df {
		if err := df.Release(); err != nil {
			return nil, err
		}
	}
	return result, nil
}
