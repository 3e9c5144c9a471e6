package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/marcuscabrera/terracognita-fork/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// testRegistry converts "test_widget" one-to-one, fans "test_pair" out into
// two resources, and always fails "test_legacy".
func testRegistry() Registry {
	return Registry{
		"test_widget": Func(func(name string, body config.Body) ([]config.Resource, error) {
			out := config.Body{}
			CopyFields(out, body, []FieldPair{{Source: "size", Target: "flavor"}})
			return []config.Resource{{Type: "target_widget", Name: name, Body: out}}, nil
		}),
		"test_pair": Func(func(name string, body config.Body) ([]config.Resource, error) {
			return []config.Resource{
				{Type: "target_a", Name: name, Body: config.Body{}},
				{Type: "target_b", Name: name, Body: config.Body{}},
			}, nil
		}),
		"test_legacy": Func(func(name string, body config.Body) ([]config.Resource, error) {
			return nil, &ManualMigrationError{Reason: "legacy widgets must be migrated manually."}
		}),
	}
}

func testDoc() string {
	return `{
		"resource": {
			"test_widget": {"w": {"size": "large"}},
			"test_pair":   {"p": {}},
			"test_legacy": {"l": {}},
			"test_unknown": {"u": {}}
		},
		"variable": {"region": {"default": "us-east-1"}}
	}`
}

func runTestPass(t *testing.T, fs afero.Fs, out string) *Report {
	t.Helper()
	pass := &Pass{
		Fs:              fs,
		Registry:        testRegistry(),
		ProviderBlock:   config.Body{"target": map[string]interface{}{"region": "${var.region}"}},
		UnsupportedHint: "No equivalent target resource is available.",
	}
	report, err := pass.Run("in.json", out)
	require.NoError(t, err)
	return report
}

func TestPassRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.json", []byte(testDoc()), 0644))

	report := runTestPass(t, fs, "out.json")

	require.Equal(t, []string{
		"target_a.p",
		"target_b.p",
		"target_widget.w",
	}, report.Successes)

	require.Len(t, report.Errors, 2)
	require.Equal(t, "test_legacy.l: legacy widgets must be migrated manually.", report.Errors[0])
	require.Contains(t, report.Errors[1], "Unsupported resource 'test_unknown.u'.")
	require.Contains(t, report.Errors[1], "No equivalent target resource is available.")

	data, err := afero.ReadFile(fs, "out.json")
	require.NoError(t, err)
	var out config.Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&out))

	// Every success corresponds to exactly one output resource.
	require.Len(t, config.Resources(out), len(report.Successes))

	// Failed and skipped resources produce no output.
	for _, res := range config.Resources(out) {
		require.NotContains(t, []string{"test_legacy", "test_unknown"}, res.Type)
	}

	// Non-resource sections pass through, and the provider block is injected.
	require.Contains(t, out, "variable")
	require.Contains(t, out, "provider")

	// Converted bodies carry the mapped fields.
	widget := out["resource"].(map[string]interface{})["target_widget"].(map[string]interface{})
	require.Equal(t, map[string]interface{}{"flavor": "large"}, widget["w"])
}

// A close miss on the type name earns a suggestion in the error message.
func TestPassRun_Suggestion(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `{"resource": {"test_widgets": {"w": {}}}}`
	require.NoError(t, afero.WriteFile(fs, "in.json", []byte(doc), 0644))

	report := runTestPass(t, fs, "out.json")
	require.Len(t, report.Errors, 1)
	require.Contains(t, report.Errors[0], `Did you mean "test_widget"?`)
}

// Running the same conversion twice must produce byte-identical outputs.
func TestPassRun_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.json", []byte(testDoc()), 0644))

	first := runTestPass(t, fs, "out1.json")
	second := runTestPass(t, fs, "out2.json")

	require.Equal(t, first, second)

	d1, err := afero.ReadFile(fs, "out1.json")
	require.NoError(t, err)
	d2, err := afero.ReadFile(fs, "out2.json")
	require.NoError(t, err)
	require.True(t, bytes.Equal(d1, d2), "outputs differ:\n%s\n%s", d1, d2)
}

// The same logical document in both resource section shapes yields the same
// success and error sets.
func TestPassRun_ShapeIndependence(t *testing.T) {
	mapDoc := `{"resource": {
		"test_widget": {"w": {"size": "large"}},
		"test_legacy": {"l": {}}
	}}`
	listDoc := `{"resource": [
		{"test_legacy": [{"l": {}}]},
		{"test_widget": [{"w": {"size": "large"}}]}
	]}`

	results := make([]*Report, 0, 2)
	for _, doc := range []string{mapDoc, listDoc} {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "in.json", []byte(doc), 0644))
		results = append(results, runTestPass(t, fs, "out.json"))
	}

	require.ElementsMatch(t, results[0].Successes, results[1].Successes)
	require.ElementsMatch(t, results[0].Errors, results[1].Errors)
}

func TestPassRun_LoadFailureIsFatal(t *testing.T) {
	fs := afero.NewMemMapFs()
	pass := &Pass{Fs: fs, Registry: testRegistry()}

	report, err := pass.Run("missing.json", "out.json")
	require.Error(t, err)
	require.Nil(t, report, "no report on a fatal load error")

	// Nothing was written.
	exists, err := afero.Exists(fs, "out.json")
	require.NoError(t, err)
	require.False(t, exists)
}

// A converter returning a plain error is recorded like any typed failure;
// the pass always reaches the end.
func TestPassRun_ConverterErrorsDoNotAbort(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `{"resource": {
		"test_boom":   {"b": {}},
		"test_widget": {"w": {"size": "small"}}
	}}`
	require.NoError(t, afero.WriteFile(fs, "in.json", []byte(doc), 0644))

	registry := testRegistry()
	registry["test_boom"] = Func(func(name string, body config.Body) ([]config.Resource, error) {
		return nil, errors.New("boom")
	})

	pass := &Pass{Fs: fs, Registry: registry}
	report, err := pass.Run("in.json", "out.json")
	require.NoError(t, err)
	require.Equal(t, []string{"target_widget.w"}, report.Successes)
	require.Len(t, report.Errors, 1)
	require.True(t, strings.HasPrefix(report.Errors[0], "test_boom.b: boom"))
}
