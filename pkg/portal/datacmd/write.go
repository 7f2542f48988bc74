package datacmd

import (
	"bufio"
	"io"

	"github.com/matzehuels/dataportal/pkg/errors"
	"github.com/matzehuels/dataportal/pkg/portal"
)

// WriteSets writes every set of model found in data to w, namespace by
// namespace, in data command syntax.
//
// Each set named by model must be present in every namespace of data;
// a missing one fails with a missing-component error. A model with any param
// fails with a not-implemented error once the sets of the first namespace are
// written, or immediately when data is empty. Output produced before a
// failure is still flushed to w.
func WriteSets(w io.Writer, model portal.Model, data *portal.Data) (err error) {
	if model == nil || data == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil model or data")
	}
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, ferr, "write data commands")
		}
	}()

	sets := model.ComponentMap(portal.KindSet)
	params := model.ComponentMap(portal.KindParam)

	for ns, block := range data.All() {
		if ns != portal.Global {
			bw.WriteString("namespace " + string(ns) + "{")
		}
		for _, name := range sets {
			if err := writeSet(bw, block, name); err != nil {
				return err
			}
		}
		if len(params) > 0 {
			return paramError(params[0])
		}
		if ns != portal.Global {
			bw.WriteString("}")
		}
	}
	if len(params) > 0 {
		return paramError(params[0])
	}
	return nil
}

func paramError(name string) error {
	return errors.New(errors.ErrCodeNotImplemented, "writing param %q is not implemented", name)
}

// writeSet writes one statement per index of the set called name.
func writeSet(w *bufio.Writer, block *portal.Block, name string) error {
	c, ok := block.Get(name)
	if !ok {
		return errors.New(errors.ErrCodeMissingComponent, "no data for set %q", name)
	}
	s, ok := c.(*portal.SetValues)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "component %q is a %s, not a set", name, c.Kind())
	}

	for index, members := range s.All() {
		if index == portal.NoIndex {
			w.WriteString("set " + name + " := ")
		} else {
			w.WriteString("set " + name + "[" + string(index) + "] := ")
		}
		for _, m := range members {
			w.WriteString(portal.FormatValue(m) + " \n")
		}
		w.WriteString(";\n\n")
	}
	return nil
}
