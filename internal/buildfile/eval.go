// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package buildfile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/drushgo/internal/property"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// NewEvalContext returns the evaluation context build-file expressions run
// in. prop() reads props at call time, so the same context sees values
// published while the run progresses.
func NewEvalContext(props property.Store) *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"prop":      lookupFunc("prop", "property", props.Get),
			"env":       lookupFunc("env", "environment variable", os.LookupEnv),
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"join":      stdlib.JoinFunc,
			"format":    stdlib.FormatFunc,
			"coalesce":  stdlib.CoalesceFunc,
		},
	}
}

// lookupFunc builds a name(key[, default]) function over get. Without a
// default, an undefined key is an error.
func lookupFunc(fnName, what string, get func(string) (string, bool)) function.Function {
	return function.New(&function.Spec{
		Description: fmt.Sprintf("Returns the value of the named %s.", what),
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		VarParam: &function.Parameter{Name: "default", Type: cty.String},
		Type:     function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if len(args) > 2 {
				return cty.NilVal, function.NewArgErrorf(2, "%s() takes at most one default, got %d", fnName, len(args)-1)
			}
			name := args[0].AsString()
			if v, ok := get(name); ok {
				return cty.StringVal(v), nil
			}
			if len(args) > 1 {
				return args[1], nil
			}
			return cty.NilVal, fmt.Errorf("%s %q is not defined", what, name)
		},
	})
}
