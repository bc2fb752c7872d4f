package scheme

// Match performs a greedy longest-match lookup at the start of rs.
// It returns the matching entry together with the number of runes the
// entry's source sequence covers. If no source sequence of the table is
// a prefix of rs, the null entry and length 0 are returned.
//
// Longer source sequences always win over shorter ones, regardless of
// the order entries were added in. This is what keeps multi-glyph
// conjunct sequences from being shadowed by their single-glyph prefixes.
//
// The table is compiled on first use if the caller did not compile it;
// a table failing validation never matches.
func (t *Table) Match(rs []rune) (Entry, int) {
	if t.dict == nil {
		if err := t.Compile(); err != nil {
			tracer().Errorf("lookup on broken table: %v", err)
			return Entry{}, 0
		}
	}
	limit := t.maxlen
	if len(rs) < limit {
		limit = len(rs)
	}
	var best Entry
	bestlen := 0
	for l := 1; l <= limit; l++ {
		prefix := string(rs[:l])
		if node, ok := t.dict.Find(prefix); ok {
			best = node.Meta().(Entry)
			bestlen = l
		}
		if !t.dict.HasKeysWithPrefix(prefix) {
			break
		}
	}
	return best, bestlen
}

// MatchString is Match for a string argument.
func (t *Table) MatchString(s string) (Entry, int) {
	return t.Match([]rune(s))
}
