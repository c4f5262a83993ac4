package dataset

import "strings"

// Match is the coordinate of a cell containing the search query.
type Match struct {
	Row int
	Col int
}

// SearchState is the result of scanning a Dataset for a query, plus a
// movable cursor over the matches. Cursor is -1 when there is no current
// match. A SearchState is only meaningful against the Dataset it was
// computed from; after a load or promotion the caller must search again.
type SearchState struct {
	Query   string
	Matches []Match
	Cursor  int
}

// Search scans every data cell in row-major order and collects the
// coordinates whose text contains query, case-insensitively. An empty query
// clears the search rather than reporting zero results.
func Search(d *Dataset, query string) SearchState {
	s := SearchState{Query: query, Cursor: -1}
	if query == "" {
		return s
	}

	needle := strings.ToLower(query)
	for ri, row := range d.rows {
		for ci, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				s.Matches = append(s.Matches, Match{Row: ri, Col: ci})
			}
		}
	}
	if len(s.Matches) > 0 {
		s.Cursor = 0
	}
	return s
}

// Next advances the cursor circularly. With no matches it returns the
// state unchanged.
func (s SearchState) Next() SearchState {
	if len(s.Matches) == 0 {
		return s
	}
	s.Cursor = (s.Cursor + 1) % len(s.Matches)
	return s
}

// Previous steps the cursor back circularly. With no matches it returns
// the state unchanged.
func (s SearchState) Previous() SearchState {
	if len(s.Matches) == 0 {
		return s
	}
	s.Cursor = (s.Cursor - 1 + len(s.Matches)) % len(s.Matches)
	return s
}

// Current returns the match under the cursor, if any.
func (s SearchState) Current() (Match, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Matches) {
		return Match{}, false
	}
	return s.Matches[s.Cursor], true
}
