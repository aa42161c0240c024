package tree

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	tree := NewOrdered[int]()
	assert.Equal(t, "[]", tree.String())

	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		require.NoError(t, tree.Insert(v))
	}

	tests := []struct {
		from int
		dump string
	}{
		{from: 4, dump: "[4, 2, 6, 1, 3, 5, 7]"},
		{from: 2, dump: "[2, 1, 3]"},
		{from: 6, dump: "[6, 5, 7]"},
		{from: 7, dump: "[7]"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprint(test.from), func(t *testing.T) {
			dump, err := tree.Dump(test.from)
			require.NoError(t, err)
			assert.Equal(t, test.dump, dump)
		})
	}

	_, err := tree.Dump(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

type version struct{ major, minor int }

func (v version) String() string { return fmt.Sprintf("v%d.%d", v.major, v.minor) }

func compareVersions(a, b version) int {
	if a.major != b.major {
		return a.major - b.major
	}
	return a.minor - b.minor
}

func TestDumpUsesStringer(t *testing.T) {
	tree := New(compareVersions)
	for _, v := range []version{{1, 0}, {1, 2}, {0, 9}} {
		require.NoError(t, tree.Insert(v))
	}
	assert.Equal(t, "[v1.0, v0.9, v1.2]", tree.String())
}

func TestDumpStrings(t *testing.T) {
	tree := NewOrdered[string]()
	for _, v := range strings.Fields("the quick brown fox jumps") {
		require.NoError(t, tree.Insert(v))
	}
	assert.Equal(t, "[quick, fox, the, brown, jumps]", tree.String())
	assert.NoError(t, tree.checkInvariants())
}

func TestHeight(t *testing.T) {
	tree := NewOrdered[int]()
	expect := []int{1, 2, 2, 3, 3, 4, 4, 4}
	for i, h := range expect {
		require.NoError(t, tree.Insert(i))
		assert.Equal(t, h, tree.Height(), "after %d inserts", i+1)
	}
}

func TestLogTracer(t *testing.T) {
	buf := new(bytes.Buffer)
	tree := NewOrdered[int](Trace(LogTracer(log.New(buf, "", 0))))

	for _, v := range []int{5, 1, 3} {
		require.NoError(t, tree.Insert(v))
	}
	assert.Equal(t, "tree: fixup zig-zag at 3\n", buf.String())
}
