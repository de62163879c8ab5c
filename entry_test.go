// SPDX-License-Identifier: MIT

package treedit

import "testing"

func TestEntryEqual(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		a    Entry
		b    Entry
		want bool
	}{
		{name: "same id and path", a: NewEntry(IntID(1), "a.txt"), b: NewEntry(IntID(1), "a.txt"), want: true},
		{name: "different id", a: NewEntry(IntID(1), "a.txt"), b: NewEntry(IntID(2), "a.txt"), want: false},
		{name: "different path", a: NewEntry(IntID(1), "a.txt"), b: NewEntry(IntID(1), "b.txt"), want: false},
		{name: "one id-less", a: NewEntry(nil, "a.txt"), b: NewEntry(IntID(1), "a.txt"), want: false},
		{name: "both id-less same path", a: NewEntry(nil, "a.txt"), b: NewEntry(nil, "a.txt"), want: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Fatalf("Equal(%+v, %+v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestEntryHasID(t *testing.T) {
	t.Parallel()

	if NewEntry(nil, "a.txt").HasID() {
		t.Fatal("id-less entry reports HasID() = true")
	}
	if !NewEntry(IntID(0), "a.txt").HasID() {
		t.Fatal("id 0 entry reports HasID() = false")
	}
}

func TestListingEqual(t *testing.T) {
	t.Parallel()

	a := Listing{NewEntry(IntID(1), "a.txt"), NewEntry(IntID(2), "b.txt")}
	b := Listing{NewEntry(IntID(1), "a.txt"), NewEntry(IntID(2), "b.txt")}
	c := Listing{NewEntry(IntID(2), "b.txt"), NewEntry(IntID(1), "a.txt")}

	if !a.Equal(b) {
		t.Fatal("identical listings reported unequal")
	}
	if a.Equal(c) {
		t.Fatal("reordered listing reported equal")
	}
}
