// SPDX-License-Identifier: MIT

package treedit

import "testing"

func TestListingString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   Listing
		want string
	}{
		{name: "empty", in: Listing{}, want: ""},
		{
			name: "single digit ids",
			in:   Listing{NewEntry(IntID(1), "a.txt"), NewEntry(IntID(2), "b.txt")},
			want: "1 a.txt\n2 b.txt",
		},
		{
			name: "padded to widest id",
			in:   Listing{NewEntry(IntID(1), "a.txt"), NewEntry(IntID(12), "b.txt")},
			want: "1  a.txt\n12 b.txt",
		},
		{
			name: "id-less entries are path-only",
			in:   Listing{NewEntry(IntID(1), "a.txt"), NewEntry(nil, "b.txt")},
			want: "1 a.txt\nb.txt",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.in.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseListing(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   string
		want Listing
	}{
		{name: "empty", in: "", want: Listing{}},
		{name: "blank lines skipped", in: "\n\n1 a.txt\n\n2 b.txt\n\n", want: Listing{NewEntry(IntID(1), "a.txt"), NewEntry(IntID(2), "b.txt")}},
		{name: "id-less line", in: "b.txt", want: Listing{NewEntry(nil, "b.txt")}},
		{name: "id stripped becomes id-less", in: "a.txt", want: Listing{NewEntry(nil, "a.txt")}},
		{name: "extra whitespace between id and path", in: "1    a.txt", want: Listing{NewEntry(IntID(1), "a.txt")}},
		{name: "leading/trailing whitespace trimmed", in: "  1 a.txt  ", want: Listing{NewEntry(IntID(1), "a.txt")}},
		{name: "path containing spaces preserved", in: "1 my file.txt", want: Listing{NewEntry(IntID(1), "my file.txt")}},
		{name: "leading BOM on first line ignored", in: string(rune(0xFEFF)) + "1 a.txt\n2 b.txt", want: Listing{NewEntry(IntID(1), "a.txt"), NewEntry(IntID(2), "b.txt")}},
		{name: "digits-only line with no path is id-less", in: "42", want: Listing{NewEntry(nil, "42")}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ParseListing(tc.in)
			if !got.Equal(tc.want) {
				t.Fatalf("ParseListing(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	original := Listing{
		NewEntry(IntID(0), "scripts/main.c"),
		NewEntry(IntID(10), "dir/sub/b.txt"),
		NewEntry(nil, "fresh.txt"),
	}

	roundTripped := ParseListing(original.String())
	if !original.Equal(roundTripped) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", roundTripped, original)
	}
}
