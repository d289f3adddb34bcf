package schema

// columnEntry caches the normalized form and word set of one canonical
// column so Match does not recompute them per call.
type columnEntry struct {
	name       string
	normalized string
	words      map[string]struct{}
}

var (
	columnEntries = buildColumnEntries()
	aliases       = buildAliases()
)

func buildColumnEntries() []columnEntry {
	entries := make([]columnEntry, len(Columns))
	for i, name := range Columns {
		n := Normalize(name)
		entries[i] = columnEntry{name: name, normalized: n, words: wordSet(n)}
	}
	return entries
}

func buildAliases() map[string]string {
	canonical := make(map[string]struct{}, len(Columns))
	for _, name := range Columns {
		canonical[name] = struct{}{}
	}
	m := make(map[string]string, len(aliasPairs))
	for _, pair := range aliasPairs {
		if _, ok := canonical[pair[1]]; !ok {
			continue
		}
		m[Normalize(pair[0])] = pair[1]
	}
	return m
}

// Match resolves a source label to a canonical column. Strategies are tried
// in priority order: exact normalized equality, word-set equality, the alias
// table, and finally the best-scoring word-subset candidate. Returns false
// when nothing resolves; callers must not fabricate a column.
func Match(label string) (string, bool) {
	src := Normalize(label)
	if src == "" {
		return "", false
	}

	for _, e := range columnEntries {
		if e.normalized == src {
			return e.name, true
		}
	}

	srcWords := wordSet(src)
	bestMatch := ""
	bestScore := 0

	for _, e := range columnEntries {
		if len(srcWords) == len(e.words) && isSubset(srcWords, e.words) {
			return e.name, true
		}
		if isSubset(srcWords, e.words) || isSubset(e.words, srcWords) {
			if score := intersectionSize(srcWords, e.words); score > bestScore {
				bestScore = score
				bestMatch = e.name
			}
		}
	}

	// A concrete alias hit beats a subset-based best match.
	if target, ok := aliases[src]; ok {
		return target, true
	}
	if bestMatch != "" {
		return bestMatch, true
	}
	return "", false
}
