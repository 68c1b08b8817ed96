package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeReader struct{ id int }

func TestAllocForAndFreeAll(t *testing.T) {
	require := require.New(t)

	a := New()
	owner := &fakeReader{id: 1}

	buf1 := a.AllocFor(owner, 16)
	buf2 := a.AllocFor(owner, 8)
	require.Len(buf1, 16)
	require.Len(buf2, 8)
	require.Equal(2, a.Outstanding(owner))

	a.FreeAll(owner)
	require.Equal(0, a.Outstanding(owner))
}

func TestAllocForNilOwnerIsHeap(t *testing.T) {
	require := require.New(t)

	a := New()
	buf := a.AllocFor(nil, 4)
	require.Len(buf, 4)
	require.Equal(0, a.Outstanding(nil))
}

func TestDistinctOwnersAreIndependent(t *testing.T) {
	require := require.New(t)

	a := New()
	o1 := &fakeReader{id: 1}
	o2 := &fakeReader{id: 2}

	a.AllocFor(o1, 4)
	a.AllocFor(o2, 4)
	a.AllocFor(o2, 4)

	require.Equal(1, a.Outstanding(o1))
	require.Equal(2, a.Outstanding(o2))

	a.FreeAll(o1)
	require.Equal(0, a.Outstanding(o1))
	require.Equal(2, a.Outstanding(o2))
}
