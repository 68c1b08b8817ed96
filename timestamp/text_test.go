package timestamp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormatRoundTrip(t *testing.T) {
	require := require.New(t)

	cases := []string{
		"2023T",
		"2023-06T",
		"2023-06-15T",
		"2023-06-15T10:30Z",
		"2023-06-15T10:30:45Z",
		"2023-06-15T10:30:45.250Z",
		"2023-06-15T10:30:45.250+02:30",
		"2023-06-15T10:30:45.250-02:30",
		"2023-06-15T10:30:45.250-00:00",
	}
	for _, s := range cases {
		ts, rest, err := Parse(s)
		require.NoErrorf(err, "parsing %q", s)
		require.Emptyf(rest, "remainder of %q", s)
		require.Equalf(s, Format(ts), "round-trip of %q", s)
	}
}

func TestParseUnknownOffset(t *testing.T) {
	require := require.New(t)

	ts, rest, err := Parse("2023-06-15T10:30-00:00")
	require.NoError(err)
	require.Empty(rest)
	require.False(ts.HasOffset())
	require.Equal("2023-06-15T10:30-00:00", Format(ts))
}

// A timestamp embedded in a larger document stops at the first Ion-token
// boundary character rather than erroring; the caller gets back whatever
// text follows that character.
func TestParseStopsAtTokenBoundary(t *testing.T) {
	require := require.New(t)

	ts, rest, err := Parse("2023-06-15T10:30Z,")
	require.NoError(err)
	require.Equal(",", rest)
	require.Equal("2023-06-15T10:30Z", Format(ts))

	ts2, rest2, err := Parse("2023-06-15T10:30Z]")
	require.NoError(err)
	require.Equal("]", rest2)
	require.Equal("2023-06-15T10:30Z", Format(ts2))
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	require := require.New(t)
	_, _, err := Parse("2023-06-15Tgarbage")
	require.Error(err)
}

func TestParseRejectsTooShort(t *testing.T) {
	require := require.New(t)
	_, _, err := Parse("202")
	require.Error(err)
}

func TestFormatFractionLeadingZeros(t *testing.T) {
	require := require.New(t)

	ts, rest, err := Parse("2023-06-15T10:30:45.005Z")
	require.NoError(err)
	require.Empty(rest)
	require.Equal("2023-06-15T10:30:45.005Z", Format(ts))
}
