package homework

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var payload any
	require.NoError(t, dec.Decode(&payload))
	return payload
}

func TestValidate_SchemaErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		reason string
	}{
		{"list instead of mapping", `[{"homeworks": []}]`, ReasonNotMapping},
		{"scalar payload", `42`, ReasonNotMapping},
		{"missing homeworks", `{"foo": 1}`, ReasonMissingHomeworks},
		{"homeworks is a mapping", `{"homeworks": {"name": "hw1"}}`, ReasonHomeworksNotList},
		{"homeworks is null", `{"homeworks": null}`, ReasonHomeworksNotList},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(decode(t, tc.body))

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tc.reason, schemaErr.Reason)
		})
	}
}

func TestValidate_ReturnsHomeworksUnmodified(t *testing.T) {
	payload := decode(t, `{"homeworks": [{"homework_name": "hw2"}, {"homework_name": "hw1"}], "current_date": 1000}`)

	homeworks, err := Validate(payload)
	require.NoError(t, err)
	require.Len(t, homeworks, 2)
	assert.Equal(t, "hw2", homeworks[0].(map[string]any)["homework_name"])
	assert.Equal(t, "hw1", homeworks[1].(map[string]any)["homework_name"])
}

func TestValidate_EmptyListWithoutCursor(t *testing.T) {
	payload := decode(t, `{"homeworks": []}`)

	homeworks, err := Validate(payload)
	require.NoError(t, err)
	assert.Empty(t, homeworks)

	_, ok := CurrentDate(payload)
	assert.False(t, ok)
}

func TestCurrentDate(t *testing.T) {
	ts, ok := CurrentDate(decode(t, `{"homeworks": [], "current_date": 1700000000}`))
	require.True(t, ok)
	assert.Equal(t, int64(1700000000), ts)

	_, ok = CurrentDate(decode(t, `{"homeworks": [], "current_date": "yesterday"}`))
	assert.False(t, ok)

	_, ok = CurrentDate(decode(t, `{"homeworks": [], "current_date": 10.5}`))
	assert.False(t, ok)

	ts, ok = CurrentDate(map[string]any{"current_date": float64(1000)})
	require.True(t, ok)
	assert.Equal(t, int64(1000), ts)
}
