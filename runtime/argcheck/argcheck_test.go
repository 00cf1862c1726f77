package argcheck

import (
	"testing"

	"github.com/google/uuid"
	"github.com/prysmaticlabs/kit/testing/assert"
	"github.com/prysmaticlabs/kit/testing/require"
)

func TestNotNil(t *testing.T) {
	v := 3
	require.NoError(t, NotNil(&v, "v"))
	err := NotNil[int](nil, "v")
	require.ErrorIs(t, err, ErrNil)
	assert.ErrorContains(t, "v: argument is nil", err)
}

func TestNotEmptyUUID(t *testing.T) {
	require.NoError(t, NotEmptyUUID(uuid.New(), "id"))
	err := NotEmptyUUID(uuid.Nil, "id")
	require.ErrorIs(t, err, ErrEmpty)
	assert.ErrorContains(t, "id is an empty uuid", err)
}

func TestNotEmpty(t *testing.T) {
	require.NoError(t, NotEmpty([]int{0}, "ids"))
	require.ErrorIs(t, NotEmpty([]int{}, "ids"), ErrEmpty)
	require.ErrorIs(t, NotEmpty[string](nil, "names"), ErrEmpty)
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{input: "x", want: nil},
		{input: " x ", want: nil},
		{input: "", want: ErrEmpty},
		{input: " \t\n", want: ErrBlank},
	}
	for _, tt := range tests {
		err := NotBlank(tt.input, "name")
		if tt.want == nil {
			assert.NoError(t, err, "input %q", tt.input)
			continue
		}
		assert.ErrorIs(t, err, tt.want, "input %q", tt.input)
	}
	require.ErrorIs(t, NotEmptyString("", "name"), ErrEmpty)
	require.NoError(t, NotEmptyString(" ", "name"))
}
