package config

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"reflect"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/NikitaCOEUR/graphsh/internal/derrors"
	"github.com/NikitaCOEUR/graphsh/internal/filter"
	"github.com/NikitaCOEUR/graphsh/internal/schema"
)

// StdinPath designates standard input as the filter file
const StdinPath = "-"

const maxExactFloat = 1 << 53

// FilterEntry is one field filter of a filter file. Exactly one of the value
// forms may be set; list forms also accept a single scalar.
type FilterEntry struct {
	Field    string `koanf:"field"`
	Operator string `koanf:"operator"`
	Boolean  any    `koanf:"boolean"`
	DateTime any    `koanf:"datetime"`
	Integer  any    `koanf:"integer"`
	Text     any    `koanf:"text"`
}

// CustomEntry is one custom filter of a filter file
type CustomEntry struct {
	Name     string `koanf:"name"`
	Operator string `koanf:"operator"`
	Text     any    `koanf:"text"`
}

// FilterFile is a saved set of filters for one entity
type FilterFile struct {
	Path    string        `koanf:"-"`
	Entity  string        `koanf:"entity"`
	Filters []FilterEntry `koanf:"filters"`
	Custom  []CustomEntry `koanf:"custom"`
}

// LoadFilterFile reads a filter file from path, or from stdin when path is
// "-". Standard input is parsed as YAML, which also accepts JSON.
func LoadFilterFile(path string) (*FilterFile, error) {
	if path == StdinPath {
		content, err := readFilterSource(path)
		if err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to read standard input", err)
		}
		return ParseFilterFile(path, content)
	}

	parser, err := filterParserFor(path)
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "cannot load filter file", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to load filter file", err)
	}
	return unmarshalFilterFile(k, path)
}

// ParseFilterFile parses filter file content. The format follows the
// extension of path and defaults to YAML.
func ParseFilterFile(path string, content []byte) (*FilterFile, error) {
	parser, err := filterParserFor(path)
	if err != nil {
		parser = yaml.Parser()
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), parser); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to parse filter file", err)
	}
	return unmarshalFilterFile(k, path)
}

func unmarshalFilterFile(k *koanf.Koanf, path string) (*FilterFile, error) {
	ff := &FilterFile{}
	if err := k.Unmarshal("", ff); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal filter file", err)
	}
	ff.Path = path
	return ff, nil
}

// BuildResult holds the outcome of building a filter file
type BuildResult struct {
	Entity  schema.Descriptor
	Filters []filter.Applier
	Errors  []ValidationError
}

// Valid reports whether every filter of the file was built
func (r *BuildResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the first build error, or nil. The underlying error stays
// reachable through errors.As.
func (r *BuildResult) Err() error {
	if r.Valid() {
		return nil
	}
	first := r.Errors[0]
	if first.Cause != nil {
		return fmt.Errorf("%s: %w", first.Field, first.Cause)
	}
	return derrors.NewValidationError(first.Field, first.Message, nil)
}

// Build resolves the entity and turns every entry into a validated filter.
// It does not stop at the first failure; each failing entry is reported.
// defaultEntity is used when the file names none, and loc for date-times
// without a zone.
func (f *FilterFile) Build(reg *schema.Registry, defaultEntity string, loc *time.Location) *BuildResult {
	result := &BuildResult{}

	name := strings.TrimSpace(expandTemplate(f.Entity))
	if name == "" {
		name = defaultEntity
	}
	if name == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "entity",
			Message: "no entity given and no default_entity configured",
		})
		return result
	}

	entity, err := reg.Get(name)
	if err != nil {
		result.Errors = append(result.Errors, ValidationError{Field: "entity", Message: err.Error(), Cause: err})
		return result
	}
	result.Entity = entity

	for i, entry := range f.Filters {
		key := fmt.Sprintf("filters[%d]", i)
		in, err := entry.Input(loc)
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{Field: key, Message: err.Error(), Cause: err})
			continue
		}
		applier, err := entity.Build(in)
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{Field: key, Message: err.Error(), Cause: err})
			continue
		}
		result.Filters = append(result.Filters, applier)
	}

	for i, entry := range f.Custom {
		key := fmt.Sprintf("custom[%d]", i)
		in, err := entry.Input()
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{Field: key, Message: err.Error(), Cause: err})
			continue
		}
		c, err := filter.CustomFromInput(in)
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{Field: key, Message: err.Error(), Cause: err})
			continue
		}
		result.Filters = append(result.Filters, c)
	}

	return result
}

// Input converts the entry into a filter.Input, expanding templates in every
// string value first
func (e FilterEntry) Input(loc *time.Location) (filter.Input, error) {
	in := filter.Input{
		Field:    expandTemplate(e.Field),
		Operator: expandTemplate(e.Operator),
	}

	if e.Boolean != nil {
		b, err := filter.ParseBoolean(scalarString(e.Boolean))
		if err != nil {
			return in, err
		}
		in.Boolean = &b
	}

	if e.DateTime != nil {
		times, err := filter.ParseDateTimes(stringList(e.DateTime), loc)
		if err != nil {
			return in, err
		}
		in.DateTime = times
	}

	if e.Integer != nil {
		ints, err := filter.ParseIntegers(stringList(e.Integer))
		if err != nil {
			return in, err
		}
		in.Integer = ints
	}

	if e.Text != nil {
		texts, err := filter.ParseTexts(stringList(e.Text))
		if err != nil {
			return in, err
		}
		in.Text = texts
	}

	return in, nil
}

// Input converts the custom entry into a filter.Input
func (e CustomEntry) Input() (filter.Input, error) {
	in := filter.Input{
		Field:    expandTemplate(e.Name),
		Operator: expandTemplate(e.Operator),
	}
	if e.Text != nil {
		texts, err := filter.ParseTexts(stringList(e.Text))
		if err != nil {
			return in, err
		}
		in.Text = texts
	}
	return in, nil
}

// expandTemplate runs a string through text/template with the sprig function
// map. Strings without an action are returned unchanged, and so are strings
// that fail to parse or execute.
func expandTemplate(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	tmpl, err := template.New("value").Funcs(sprig.TxtFuncMap()).Parse(s)
	if err != nil {
		return s
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, nil); err != nil {
		return s
	}
	return out.String()
}

// asList wraps a scalar into a one-element list. Parsers differ in the slice
// types they decode into, so any slice is accepted.
func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// scalarString renders a decoded scalar, nil becomes the null literal
func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return filter.NullLiteral
	case string:
		return expandTemplate(val)
	case time.Time:
		// TOML date-times arrive decoded
		return val.Format(time.RFC3339Nano)
	case json.Number:
		return val.String()
	case float64:
		// floats are only exact as integers up to 2^53
		if val == math.Trunc(val) && math.Abs(val) <= maxExactFloat {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func stringList(v any) []string {
	items := asList(v)
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = scalarString(item)
	}
	return out
}
