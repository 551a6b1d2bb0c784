package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/graphsh/internal/derrors"
	"github.com/NikitaCOEUR/graphsh/internal/schema"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFilterFile_YAML(t *testing.T) {
	path := writeFile(t, "open.yml", `
entity: tickets
filters:
  - field: Status
    operator: Equals
    text: [open, pending]
  - field: CreatedAt
    operator: GreaterThanAndLessThan
    datetime: ["2024-01-01", "2024-02-01T12:00:00Z"]
  - field: Priority
    operator: lessthan
    integer: 3
  - field: IsEscalated
    operator: Equals
    boolean: true
  - field: DueAt
    operator: Present
custom:
  - name: region
    operator: Equals
    text: EMEA
`)

	ff, err := LoadFilterFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, ff.Path)
	assert.Equal(t, "tickets", ff.Entity)
	require.Len(t, ff.Filters, 5)
	require.Len(t, ff.Custom, 1)

	result := ff.Build(schema.Default(), "", time.UTC)
	require.True(t, result.Valid(), "%v", result.Errors)
	require.NoError(t, result.Err())
	assert.Equal(t, "ticket", result.Entity.Name())
	require.Len(t, result.Filters, 6)

	assert.Equal(t, `Status Equals ["open", "pending"]`, result.Filters[0].String())
	assert.Equal(t, "CreatedAt GreaterThanAndLessThan [2024-01-01T00:00:00Z, 2024-02-01T12:00:00Z]", result.Filters[1].String())
	assert.Equal(t, "Priority LessThan [3]", result.Filters[2].String())
	assert.Equal(t, "IsEscalated Equals [true]", result.Filters[3].String())
	assert.Equal(t, "DueAt Present", result.Filters[4].String())
	assert.Equal(t, `region Equals ["EMEA"]`, result.Filters[5].String())
}

func TestLoadFilterFile_JSON(t *testing.T) {
	path := writeFile(t, "assets.json", `{
  "entity": "asset",
  "filters": [
    {"field": "Cost", "operator": "GreaterThanOrEqualToAndLessThanOrEqualTo", "integer": [100, 500]},
    {"field": "SerialNumber", "operator": "Equals", "text": ["A1", null]}
  ]
}`)

	ff, err := LoadFilterFile(path)
	require.NoError(t, err)

	result := ff.Build(schema.Default(), "", time.UTC)
	require.True(t, result.Valid(), "%v", result.Errors)
	require.Len(t, result.Filters, 2)
	assert.Equal(t, "Cost GreaterThanOrEqualToAndLessThanOrEqualTo [100, 500]", result.Filters[0].String())
	assert.Equal(t, `SerialNumber Equals ["A1", null]`, result.Filters[1].String())
}

func TestLoadFilterFile_JSONLargeIntegers(t *testing.T) {
	content := `{"entity": "ticket", "filters": [
    {"field": "Id", "operator": "Equals", "integer": 9007199254740993},
    {"field": "Priority", "operator": "Equals", "integer": [1.5]}
  ]}`

	ff, err := LoadFilterFile(writeFile(t, "ids.json", content))
	require.NoError(t, err)

	result := ff.Build(schema.Default(), "", time.UTC)
	require.Len(t, result.Filters, 1)
	assert.Equal(t, "Id Equals [9007199254740993]", result.Filters[0].String())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "filters[1]", result.Errors[0].Field)
	assert.Contains(t, result.Errors[0].Message, "cannot parse '1.5' as an integer")

	ff, err = ParseFilterFile("ids.json", []byte(content))
	require.NoError(t, err)
	result = ff.Build(schema.Default(), "", time.UTC)
	require.NotEmpty(t, result.Filters)
	assert.Equal(t, "Id Equals [9007199254740993]", result.Filters[0].String())
}

func TestScalarString_Floats(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 42, want: "42"},
		{in: -7, want: "-7"},
		{in: 1 << 53, want: "9007199254740992"},
		{in: 1e20, want: "1e+20"},
		{in: 2.5, want: "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, scalarString(tt.in))
		})
	}
}

func TestLoadFilterFile_TOML(t *testing.T) {
	path := writeFile(t, "companies.toml", `
entity = "company"

[[filters]]
field = "EmployeeCount"
operator = "GreaterThan"
integer = [50]

[[filters]]
field = "CreatedAt"
operator = "LessThan"
datetime = 2024-03-01T00:00:00Z
`)

	ff, err := LoadFilterFile(path)
	require.NoError(t, err)

	result := ff.Build(schema.Default(), "", time.UTC)
	require.True(t, result.Valid(), "%v", result.Errors)
	require.Len(t, result.Filters, 2)
	assert.Equal(t, "EmployeeCount GreaterThan [50]", result.Filters[0].String())
	assert.Equal(t, "CreatedAt LessThan [2024-03-01T00:00:00Z]", result.Filters[1].String())
}

func TestParseFilterFile_DefaultsToYAML(t *testing.T) {
	ff, err := ParseFilterFile(StdinPath, []byte("filters:\n  - field: Email\n    operator: Empty\n"))
	require.NoError(t, err)
	assert.Equal(t, StdinPath, ff.Path)

	result := ff.Build(schema.Default(), "contact", time.UTC)
	require.True(t, result.Valid())
	assert.Equal(t, "contact", result.Entity.Name())
	assert.Equal(t, "Email Empty", result.Filters[0].String())
}

func TestFilterFile_BuildReportsEveryFailure(t *testing.T) {
	ff, err := ParseFilterFile("bad.yml", []byte(`
entity: ticket
filters:
  - field: Priority
    operator: LessThan
    integer: [1, 2]
  - field: Colour
    operator: Equals
    text: red
  - field: Subject
    operator: Equals
    text: ok
  - field: DueAt
    operator: Equals
    datetime: not-a-date
custom:
  - name: region
    operator: GreaterThan
    text: x
`))
	require.NoError(t, err)

	result := ff.Build(schema.Default(), "", time.UTC)
	assert.False(t, result.Valid())
	require.Len(t, result.Errors, 4)
	assert.Equal(t, "filters[0]", result.Errors[0].Field)
	assert.Equal(t, "filters[1]", result.Errors[1].Field)
	assert.Contains(t, result.Errors[1].Message, "unknown field 'Colour'")
	assert.Equal(t, "filters[3]", result.Errors[2].Field)
	assert.Equal(t, "custom[0]", result.Errors[3].Field)

	require.Len(t, result.Filters, 1)
	assert.Equal(t, `Subject Equals ["ok"]`, result.Filters[0].String())

	err = result.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filters[0]: ")
	var filterErr *derrors.InvalidFilterError
	require.True(t, errors.As(err, &filterErr))
	assert.Equal(t, derrors.InvalidFilterCode, filterErr.Code())
	assert.Equal(t, "Priority", filterErr.Field)
}

func TestFilterFile_BuildRejectsUnsendableText(t *testing.T) {
	ff, err := ParseFilterFile("bell.json", []byte(`{"entity": "ticket", "filters": [
    {"field": "Subject", "operator": "Equals", "text": "bell\u0007"}
  ]}`))
	require.NoError(t, err)

	result := ff.Build(schema.Default(), "", time.UTC)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "filters[0]", result.Errors[0].Field)
	assert.Contains(t, result.Errors[0].Message, "control character")
}

func TestFilterFile_BuildEntityErrors(t *testing.T) {
	ff := &FilterFile{}
	result := ff.Build(schema.Default(), "", time.UTC)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "entity", result.Errors[0].Field)
	assert.Nil(t, result.Entity)

	ff = &FilterFile{Entity: "invoice"}
	result = ff.Build(schema.Default(), "", time.UTC)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "unknown entity 'invoice'")
}

func TestFilterEntry_LocalTimes(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	in, err := FilterEntry{Field: "CreatedAt", Operator: "GreaterThan", DateTime: "2024-01-01 10:00:00"}.Input(cet)
	require.NoError(t, err)
	require.Len(t, in.DateTime, 1)
	assert.True(t, in.DateTime[0].Equal(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)))
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected string
	}{
		{name: "plain string", template: " open ", expected: " open "},
		{name: "sprig function", template: `{{ upper "open" }}`, expected: "OPEN"},
		{name: "date arithmetic", template: `{{ "2024-01-31" | toDate "2006-01-02" | dateModify "24h" | date "2006-01-02" }}`, expected: "2024-02-01"},
		{name: "parse error is kept", template: "{{ upper", expected: "{{ upper"},
		{name: "execution error is kept", template: `{{ fail "boom" }}`, expected: `{{ fail "boom" }}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandTemplate(tt.template))
		})
	}
}

func TestFilterEntry_TemplatedValues(t *testing.T) {
	entry := FilterEntry{
		Field:    "Status",
		Operator: `{{ "equals" | title }}`,
		Text:     []any{`{{ "open" | upper }}`, "closed"},
	}
	in, err := entry.Input(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "Equals", in.Operator)
	require.Len(t, in.Text, 2)
	assert.Equal(t, "OPEN", *in.Text[0])
	assert.Equal(t, "closed", *in.Text[1])
}

func TestAsList(t *testing.T) {
	assert.Equal(t, []any{"a"}, asList("a"))
	assert.Equal(t, []any{int64(1), int64(2)}, asList([]int64{1, 2}))
	assert.Equal(t, []any{"x", nil}, asList([]any{"x", nil}))
}
