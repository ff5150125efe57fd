package run

import (
	"errors"
	"fmt"

	"github.com/eduardofuncao/dbkit/internal/db"
	"github.com/eduardofuncao/dbkit/internal/params"
)

// Prompter asks the user for parameters that have no value.
type Prompter func(sql string, missing []string, defaults map[string]string) (map[string]string, error)

// Bound is a statement ready for the database together with its values.
type Bound struct {
	SQL        string
	Values     map[string]any
	DisplaySQL string
}

// BindArguments resolves every :name in sql from defaults, key=value and
// positional args, and prompt for whatever is still missing. A nil prompt
// turns missing values into an error. syntax must match the target server
// so comments and literals are read the way it reads them.
func BindArguments(syntax db.Syntax, sql string, args []string, prompt Prompter) (Bound, error) {
	defs := params.ExtractParameters(syntax, sql)
	if err := params.ValidateParamNames(defs); err != nil {
		return Bound{}, err
	}

	named, positionals := params.ParseArgs(args)
	if err := params.ValidateCLIValues(named, defs); err != nil {
		return Bound{}, err
	}

	cli := params.MapPositionalArgs(syntax, sql, positionals)
	for name, value := range named {
		cli[name] = value
	}

	values := params.ResolveParameters(defs, cli)

	if missing := params.GetMissingRequired(defs, values); len(missing) > 0 {
		if prompt == nil {
			return Bound{}, fmt.Errorf("missing value for parameter: %s", missing[0])
		}
		typed, err := prompt(sql, missing, values)
		if err != nil {
			if errors.Is(err, params.ErrAborted) {
				return Bound{}, err
			}
			return Bound{}, fmt.Errorf("collect parameters: %w", err)
		}
		for name, value := range typed {
			values[name] = value
		}
	}

	return Bound{
		SQL:        params.StripDefaults(syntax, sql),
		Values:     params.ConvertValues(values),
		DisplaySQL: params.GenerateDisplaySQL(syntax, sql, values),
	}, nil
}
