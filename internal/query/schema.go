package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

// requirementSchemaJSON constrains the shape of a requirement object: each
// recognized dimension carries an object with a non-negative numeric weight,
// useCase is a string, useCaseWeight a non-negative number. Extra keys are
// allowed; the decoder ignores them.
const requirementSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "performance": { "$ref": "#/$defs/weighted" },
    "memory": { "$ref": "#/$defs/weighted" },
    "startupTime": { "$ref": "#/$defs/weighted" },
    "ecosystem": { "$ref": "#/$defs/weighted" },
    "concurrency": { "$ref": "#/$defs/weighted" },
    "useCase": { "type": "string" },
    "useCaseWeight": { "type": "number", "minimum": 0 }
  },
  "$defs": {
    "weighted": {
      "type": "object",
      "properties": {
        "weight": { "type": "number", "minimum": 0 }
      },
      "required": ["weight"]
    }
  }
}`

// requirementSchema is the compiled JSON Schema for requirement objects.
var requirementSchema *jsonschema.Schema

func init() {
	requirementSchema = mustCompileSchema(requirementSchemaJSON, "requirement.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// Validate checks a raw requirement object against the schema and returns
// one message per violation. An empty slice means the object is usable.
func Validate(raw map[string]any) []string {
	err := requirementSchema.Validate(jsonCompatible(raw))
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}

// jsonCompatible rewrites a decoded document so every value has a type the
// schema validator accepts: ints become float64 and nested containers are
// converted recursively.
func jsonCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = jsonCompatible(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = jsonCompatible(item)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return v
	}
}
