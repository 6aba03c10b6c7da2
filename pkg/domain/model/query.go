package model

import (
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

// LookupQuery is a batched Twitch user lookup, partitioned into numeric IDs
// and login names. Both lists keep their original relative order and are not
// deduplicated. A query always contains at least one identifier.
type LookupQuery struct {
	IDs    []string
	Logins []string
}

// BuildLookupQuery parses free-form slash command text into a LookupQuery.
// The text is split on runs of whitespace and commas, so "456,,bar" is two
// tokens and a bare "," produces none. Tokens that parse as a base-10
// unsigned 32-bit integer become IDs, everything else becomes a login name.
// The token string is stored verbatim in both cases, so leading zeros
// survive as Helix expects.
func BuildLookupQuery(text string) (*LookupQuery, error) {
	var query LookupQuery

	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	for _, token := range tokens {
		if _, err := strconv.ParseUint(token, 10, 32); err == nil {
			query.IDs = append(query.IDs, token)
		} else {
			query.Logins = append(query.Logins, token)
		}
	}

	if len(query.IDs) == 0 && len(query.Logins) == 0 {
		return nil, ErrNoIdentifiers
	}

	return &query, nil
}

// Values renders the query as Helix request parameters, one id= per numeric
// ID followed by one login= per login name.
func (q *LookupQuery) Values() url.Values {
	values := url.Values{}
	for _, id := range q.IDs {
		values.Add("id", id)
	}
	for _, login := range q.Logins {
		values.Add("login", login)
	}
	return values
}

// Size returns the total number of identifiers in the query
func (q *LookupQuery) Size() int {
	return len(q.IDs) + len(q.Logins)
}

// LogValue returns structured log value
func (q LookupQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ids", q.IDs),
		slog.Any("logins", q.Logins),
	)
}
