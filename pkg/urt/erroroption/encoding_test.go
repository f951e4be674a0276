//go:build !urt_noserde

package erroroption

import (
	"testing"

	json "github.com/goccy/go-json"
	perrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/urt/pkg/urt"
)

type failure struct {
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ErrorOption[int, failure]
		want string
	}{
		{in: Value[int, failure](1), want: `{"Value":1}`},
		{in: Empty[int, failure](), want: `"Empty"`},
		{in: Error[int](failure{Code: 404, Message: "missing"}), want: `{"Error":{"code":404,"message":"missing"}}`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.in)
		require.NoError(t, err)
		assert.JSONEq(t, tt.want, string(data))

		out := Value[int, failure](-1)
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, tt.in, out)
	}
}

func TestJSON_Nested(t *testing.T) {
	t.Parallel()

	type record struct {
		Name  string                       `json:"name"`
		Score ErrorOption[float64, string] `json:"score"`
	}

	in := []record{
		{Name: "a", Score: Value[float64, string](0.5)},
		{Name: "b"},
		{Name: "c", Score: Error[float64]("timeout")},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out []record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSON_NullLeavesTargetUnchanged(t *testing.T) {
	t.Parallel()

	out := Value[int, string](7)
	require.NoError(t, json.Unmarshal([]byte("null"), &out))
	assert.Equal(t, Value[int, string](7), out)

	type record struct {
		Name  string                       `json:"name"`
		Score ErrorOption[float64, string] `json:"score"`
	}
	var rec record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","score":null}`), &rec))
	assert.Equal(t, "a", rec.Name)
	assert.True(t, rec.Score.IsEmpty())

	var fromYAML record
	require.NoError(t, yaml.Unmarshal([]byte("name: a\nscore: null\n"), &fromYAML))
	assert.Equal(t, rec, fromYAML)
}

func TestJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "unknown variant", in: `{"Missing":1}`, want: urt.ErrUnknownVariant},
		{name: "unknown unit variant", in: `"Nothing"`, want: urt.ErrUnknownVariant},
		{name: "two keys", in: `{"Value":1,"Error":"x"}`, want: urt.ErrMalformedDocument},
		{name: "value without payload", in: `"Value"`, want: urt.ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out ErrorOption[int, string]
			err := json.Unmarshal([]byte(tt.in), &out)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, perrors.CodeInvalidInput, perrors.GetCode(err))
		})
	}
}

func TestYAML(t *testing.T) {
	t.Parallel()

	for _, in := range []ErrorOption[[]string, failure]{
		Value[[]string, failure]([]string{"a", "b"}),
		Empty[[]string, failure](),
		Error[[]string](failure{Code: 1, Message: "bad"}),
	} {
		data, err := yaml.Marshal(in)
		require.NoError(t, err)

		var out ErrorOption[[]string, failure]
		require.NoError(t, yaml.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	}
}

func TestYAML_Document(t *testing.T) {
	t.Parallel()

	var out ErrorOption[int, string]
	require.NoError(t, yaml.Unmarshal([]byte("Error: disk full\n"), &out))
	assert.Equal(t, Error[int]("disk full"), out)

	require.NoError(t, yaml.Unmarshal([]byte("Empty\n"), &out))
	assert.True(t, out.IsEmpty())
}
