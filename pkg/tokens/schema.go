package tokens

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed tokens.schema.json
var schemaContent string

var schemaLoader = gojsonschema.NewStringLoader(schemaContent)

// Validate checks that tree only holds tables, scalars and lists of
// scalars. Nulls and lists of tables have no CSS rendering.
func Validate(tree map[string]interface{}) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(tree))
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to validate token file")
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return errors.New(errors.ErrConfig, "invalid token file: "+strings.Join(msgs, "; ")).
		WithDetail("fields", len(msgs))
}
