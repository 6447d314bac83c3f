// resume/dates_test.go
package resume

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCanonicalDate(t *testing.T) {
	testCases := []struct {
		name  string
		input *string
		want  *string
	}{
		{name: "nil input", input: nil, want: nil},
		{name: "empty string", input: strPtr(""), want: nil},
		{name: "literal null", input: strPtr("null"), want: nil},
		{name: "already canonical", input: strPtr("2023-06-01"), want: strPtr("2023-06-01")},
		{name: "month and year", input: strPtr("June 2024"), want: strPtr("2024-06-01")},
		{name: "lowercase month", input: strPtr("june 2024"), want: strPtr("2024-06-01")},
		{name: "unrecognized month", input: strPtr("Juneteenth 2024"), want: nil},
		{name: "year and month", input: strPtr("2024-06"), want: strPtr("2024-06-01")},
		{name: "free text", input: strPtr("Present"), want: nil},
		{name: "partial garbage", input: strPtr("sometime around 2019"), want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanonicalDate(tc.input)
			if tc.want == nil {
				require.Nil(t, got)
			} else {
				require.NotNil(t, got)
				require.Equal(t, *tc.want, *got)
			}
		})
	}
}

// Canonicalizing an already-canonical date must return it unchanged,
// no matter how many times it runs.
func TestCanonicalDateIdempotent(t *testing.T) {
	canonical := strPtr("2021-11-30")
	once := CanonicalDate(canonical)
	require.NotNil(t, once)
	twice := CanonicalDate(once)
	require.NotNil(t, twice)
	require.Equal(t, *canonical, *once)
	require.Equal(t, *once, *twice)
}

// Every month name, in any casing, maps to the correct two-digit month.
func TestCanonicalDateAllMonths(t *testing.T) {
	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}

	for i, month := range months {
		input := fmt.Sprintf("%s 1999", month)
		want := fmt.Sprintf("1999-%02d-01", i+1)

		got := CanonicalDate(&input)
		require.NotNil(t, got, "month %s", month)
		require.Equal(t, want, *got)

		upper := fmt.Sprintf("%s 1999", strings.ToUpper(month))
		gotUpper := CanonicalDate(strPtr(upper))
		require.NotNil(t, gotUpper)
		require.Equal(t, want, *gotUpper)
	}
}
