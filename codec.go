// SPDX-License-Identifier: MIT

package treedit

import (
	"strconv"
	"strings"
)

// String serializes a listing to the editor buffer text format: one
// line per entry, the id (if present) left-justified to the width of
// the largest id's decimal digit count, one space, then the path.
// Id-less entries are emitted path-only.
func (l Listing) String() string {
	width := maxIDWidth(l)

	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		if e.HasID() {
			idStr := strconv.Itoa(*e.ID)
			b.WriteString(idStr)
			for pad := width - len(idStr); pad > 0; pad-- {
				b.WriteByte(' ')
			}
			b.WriteByte(' ')
		}
		b.WriteString(e.Path)
	}
	return b.String()
}

// maxIDWidth returns the decimal digit width of the largest id in the
// listing, or 1 if there are no id-bearing entries.
func maxIDWidth(l Listing) int {
	max := 0
	for _, e := range l {
		if e.HasID() && *e.ID > max {
			max = *e.ID
		}
	}
	return len(strconv.Itoa(max))
}

// ParseListing parses the editor buffer text format produced by
// Listing.String. Input is split on newlines; each line is trimmed;
// empty lines are skipped. The first whitespace-delimited token on a
// line is tentatively parsed as an unsigned decimal integer. If that
// succeeds, the remainder of the line after that token and its
// following run of whitespace is taken verbatim (trimmed) as the path,
// and the entry is id-bearing; otherwise the entire trimmed line is the
// path and the entry is id-less.
//
// This best-effort policy lets a user delete a line's id prefix to mark
// it as a new file, and tolerates a leading UTF-8 byte-order mark on
// the first line (some editors prepend one on save).
func ParseListing(text string) Listing {
	lines := strings.Split(text, "\n")
	listing := make(Listing, 0, len(lines))

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, string(rune(0xFEFF)))
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if entry, ok := parseIDBearingLine(line); ok {
			listing = append(listing, entry)
			continue
		}

		listing = append(listing, NewEntry(nil, line))
	}

	return listing
}

// parseIDBearingLine attempts to parse line as "<id><ws+><path>". It
// reports ok=false when the leading token is not a valid unsigned
// decimal integer, leaving the caller to treat the whole line as a
// path.
func parseIDBearingLine(line string) (Entry, bool) {
	idEnd := strings.IndexFunc(line, func(r rune) bool {
		return r < '0' || r > '9'
	})

	var idToken string
	switch idEnd {
	case -1:
		// The whole line is digits: no path follows, not id-bearing.
		return Entry{}, false
	case 0:
		return Entry{}, false
	default:
		idToken = line[:idEnd]
	}

	rest := line[idEnd:]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return Entry{}, false
	}

	id, err := strconv.Atoi(idToken)
	if err != nil {
		return Entry{}, false
	}

	path := strings.TrimLeft(rest, " \t")
	path = strings.TrimSpace(path)

	return NewEntry(IntID(id), path), true
}
