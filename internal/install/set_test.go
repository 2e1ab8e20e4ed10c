package install

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/riderctl/internal/version"
)

func TestSet_DedupByNormalizedPath(t *testing.T) {
	v := version.Parse("2023.1")
	s := NewSet()

	assert.True(t, s.Add(Info{Path: `C:\X\bin\rider64.exe`, Version: v}))
	assert.False(t, s.Add(Info{Path: "C:/X/bin/rider64.exe", Version: v}))
	assert.Equal(t, 1, s.Len())
}

func TestSet_FirstInsertWins(t *testing.T) {
	s := NewSet()
	s.Add(Info{Path: "/opt/rider/bin/rider.sh", Version: version.Parse("1.0"), Origin: OriginInstalled})
	s.Add(Info{Path: "/opt/rider/bin/../bin/rider.sh", Version: version.Parse("2.0"), Origin: OriginCustom})

	sorted := s.Sorted()
	require.Len(t, sorted, 1)
	assert.Equal(t, OriginInstalled, sorted[0].Origin)
	assert.Equal(t, "1.0", sorted[0].Version.String())
}

func TestSet_AppendIsIdempotent(t *testing.T) {
	infos := []Info{
		{Path: "/a/bin/rider.sh", Version: version.Parse("1.0")},
		{Path: "/b/bin/rider.sh", Version: version.Parse("2.0")},
	}
	s := NewSet()
	assert.Equal(t, 2, s.Append(infos))
	assert.Equal(t, 0, s.Append(infos))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Add(Info{Path: `/a\bin\rider.sh`}), "backslash form of a known path")
}

func TestSet_SortedByVersion(t *testing.T) {
	s := NewSet()
	s.Add(Info{Path: "/c", Version: version.Parse("3.0")})
	s.Add(Info{Path: "/a", Version: version.Parse("1.0")})
	s.Add(Info{Path: "/none"})
	s.Add(Info{Path: "/b2", Version: version.Parse("2.0")})
	s.Add(Info{Path: "/b1", Version: version.Parse("2.0")})

	got := s.Sorted()
	paths := make([]string, len(got))
	for i, info := range got {
		paths[i] = info.Path
	}
	assert.Equal(t, []string{"/none", "/a", "/b1", "/b2", "/c"}, paths)
	assert.Equal(t, "[/none /a /b1 /b2 /c]", s.String())
}

func TestSet_Empty(t *testing.T) {
	s := NewSet()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Sorted())
}
