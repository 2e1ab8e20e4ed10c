package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantParts  []int
		wantInit   bool
		wantString string
	}{
		{name: "three components", input: "2023.1.2", wantParts: []int{2023, 1, 2}, wantInit: true, wantString: "2023.1.2"},
		{name: "build number", input: "223.8836.41", wantParts: []int{223, 8836, 41}, wantInit: true, wantString: "223.8836.41"},
		{name: "empty", input: "", wantParts: []int{}, wantInit: false, wantString: ""},
		{name: "only dots", input: "..", wantParts: []int{}, wantInit: false, wantString: ""},
		{name: "empty segments skipped", input: "1..2", wantParts: []int{1, 2}, wantInit: true, wantString: "1.2"},
		{name: "non numeric segment is zero", input: "2023.x.3", wantParts: []int{2023, 0, 3}, wantInit: true, wantString: "2023.0.3"},
		{name: "leading digits kept", input: "2023.1-EAP.4", wantParts: []int{2023, 1, 4}, wantInit: true, wantString: "2023.1.4"},
		{name: "surrounding whitespace", input: " 1.2 ", wantParts: []int{1, 2}, wantInit: true, wantString: "1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Parse(tt.input)
			assert.Equal(t, tt.wantInit, v.IsInitialized())
			assert.Equal(t, tt.wantParts, append([]int{}, v.parts...))
			assert.Equal(t, tt.wantString, v.String())
		})
	}
}

func TestComponents(t *testing.T) {
	v := Parse("2022.3")
	assert.Equal(t, 2022, v.Major())
	assert.Equal(t, 3, v.Minor())
	assert.Equal(t, Invalid, v.Patch())

	var zero Version
	assert.Equal(t, Invalid, zero.Major())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "2.0", -1},
		{"2.0", "1.0", 1},
		{"2.1", "2.1", 0},
		{"2.1", "2.1.0", -1},
		{"2.1.0", "2.1", 1},
		{"2.10", "2.9", 1},
		{"221.1", "203.9.9", 1},
		{"", "0", -1},
		{"", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.a).Compare(Parse(tt.b)))
			assert.Equal(t, -tt.want, Parse(tt.b).Compare(Parse(tt.a)))
		})
	}
}

func TestUninitializedSortsFirst(t *testing.T) {
	var zero Version
	for _, s := range []string{"0", "0.0.1", "1", "9999.1"} {
		assert.True(t, zero.Less(Parse(s)), "uninitialized should be less than %q", s)
	}
}

func TestAtLeast(t *testing.T) {
	assert.True(t, Parse("2023.1").AtLeast(Parse("2022.3")))
	assert.True(t, Parse("2023.1").AtLeast(Parse("2023.1")))
	assert.False(t, Parse("2022.1").AtLeast(Parse("2022.3")))

	var zero Version
	assert.False(t, zero.AtLeast(zero), "uninitialized never satisfies a minimum")
}

func TestSatisfies(t *testing.T) {
	ok, err := Parse("2023.2.1").Satisfies(">= 2023.1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Parse("2022.3").Satisfies(">= 2023.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Version{}.Satisfies(">= 0.0.0")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Parse("1.0").Satisfies("not a constraint")
	assert.Error(t, err)
}
