package complaints

import (
	"strings"
)

// DuplicateLimit caps how many similar complaints are surfaced as an
// advisory. The advisory never blocks submission.
const DuplicateLimit = 3

// MinDuplicateTitleLen is the shortest candidate title worth searching.
const MinDuplicateTitleLen = 3

// TitleTokens splits a candidate title into search tokens. Tokens are matched
// individually (OR semantics) against existing complaint titles.
func TitleTokens(title string) []string {
	fields := strings.Fields(strings.ToLower(title))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, `.,;:!?"'()`)
		if len(f) < 2 {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// DuplicateQuery builds the WHERE fragment and arguments for a token OR
// search over complaint titles, suitable for gorm's Where.
func DuplicateQuery(title string) (string, []interface{}) {
	tokens := TitleTokens(title)
	if len(tokens) == 0 {
		return "", nil
	}
	clauses := make([]string, len(tokens))
	args := make([]interface{}, len(tokens))
	for i, tok := range tokens {
		clauses[i] = "title ILIKE ?"
		args[i] = "%" + tok + "%"
	}
	return strings.Join(clauses, " OR "), args
}
