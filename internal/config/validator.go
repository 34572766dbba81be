package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/project"
)

//go:embed schema.cue
var schemaCUE []byte

// ValidationError is a problem with one config field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return "config validation failed: " + strings.Join(parts, "; ")
}

// Unwrap returns oerrors.ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, errors.New("schema does not define #Config")
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// ValidateBytes validates YAML config content against the schema and then
// checks the cross-field rules. An empty document is valid.
func (v *Validator) ValidateBytes(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ValidationErrors{{Field: "(file)", Message: "invalid YAML: " + firstLine(err.Error())}}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	value := v.ctx.Encode(doc)
	if value.Err() != nil {
		return fmt.Errorf("encoding config: %w", value.Err())
	}

	errs := walkFields(v.schema, value, nil, nil)

	var cfg Config
	if len(errs) == 0 {
		// The document matched the schema, so decoding cannot fail on types.
		if err := value.Decode(&cfg); err != nil {
			return fmt.Errorf("decoding config: %w", err)
		}
		errs = append(errs, crossFieldErrors(&cfg)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFile validates the config file at path.
func (v *Validator) ValidateFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return oerrors.NewNotFoundError("config file not found", expanded,
				"Run 'rdt config init' to create one")
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return v.ValidateBytes(data)
}

// Validate applies the cross-field rules to a loaded configuration. Values
// set through the environment never pass through the schema, so the enum
// values are checked here as well.
func (v *Validator) Validate(cfg *Config) error {
	var errs ValidationErrors

	d := cfg.Defaults
	if d.Framework != "" {
		if _, err := project.ParseFramework(d.Framework); err != nil {
			errs = append(errs, ValidationError{Field: "defaults.framework", Message: leafMessage(err)})
		}
	}
	if d.ORM != "" {
		if _, err := project.ParseORM(d.ORM); err != nil {
			errs = append(errs, ValidationError{Field: "defaults.orm", Message: leafMessage(err)})
		}
	}
	if d.Database != "" {
		if _, err := project.ParseDatabase(d.Database); err != nil {
			errs = append(errs, ValidationError{Field: "defaults.database", Message: leafMessage(err)})
		}
	}
	if len(errs) == 0 {
		errs = append(errs, crossFieldErrors(cfg)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// crossFieldErrors checks rules that span more than one field.
func crossFieldErrors(cfg *Config) ValidationErrors {
	var errs ValidationErrors

	d := cfg.Defaults
	if d.Framework != "" && d.ORM != "" {
		fw, fwErr := project.ParseFramework(d.Framework)
		orm, ormErr := project.ParseORM(d.ORM)
		if fwErr == nil && ormErr == nil {
			if ok, reason := project.ValidateCombination(fw, orm); !ok {
				errs = append(errs, ValidationError{Field: "defaults.orm", Message: reason})
			}
		}
	}
	if strings.TrimSpace(cfg.TemplatesDir) == "" && cfg.TemplatesDir != "" {
		errs = append(errs, ValidationError{Field: "templatesDir", Message: "must not be whitespace only"})
	}
	if strings.TrimSpace(cfg.OutputDir) == "" && cfg.OutputDir != "" {
		errs = append(errs, ValidationError{Field: "outputDir", Message: "must not be whitespace only"})
	}
	return errs
}

// leafMessage strips the field prefix project parse errors carry.
func leafMessage(err error) string {
	var verrs project.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Message
	}
	return err.Error()
}

// walkFields checks every field of data against the matching schema node.
// Fields the closed schema does not allow are reported by path.
func walkFields(schema, data cue.Value, path []string, errs ValidationErrors) ValidationErrors {
	iter, err := data.Fields()
	if err != nil {
		return errs
	}

	for iter.Next() {
		sel := iter.Selector()
		fieldVal := iter.Value()
		name := sel.Unquoted()

		fieldPath := make([]string, len(path), len(path)+1)
		copy(fieldPath, path)
		fieldPath = append(fieldPath, name)
		field := strings.Join(fieldPath, ".")

		if !schema.Allows(cue.Str(name)) {
			errs = append(errs, ValidationError{Field: field, Message: "field not allowed"})
			continue
		}

		schemaField := schema.LookupPath(cue.MakePath(cue.Str(name).Optional()))
		if !schemaField.Exists() {
			continue
		}

		if fieldVal.IncompleteKind() == cue.StructKind {
			if schemaField.IncompleteKind() != cue.StructKind {
				errs = append(errs, ValidationError{Field: field, Message: "must not be a mapping"})
				continue
			}
			errs = walkFields(schemaField, fieldVal, fieldPath, errs)
			continue
		}

		unified := schemaField.Unify(fieldVal)
		if fieldErr := unified.Validate(cue.Concrete(true)); fieldErr != nil {
			errs = append(errs, ValidationError{Field: field, Message: cueMessage(fieldErr)})
		}
	}
	return errs
}

// cueMessage returns the first CUE error message without position details.
func cueMessage(err error) string {
	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return firstLine(err.Error())
	}
	format, args := list[0].Msg()
	return fmt.Sprintf(format, args...)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
