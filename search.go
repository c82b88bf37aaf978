package gotable

import (
	"strings"

	"github.com/samber/lo"
)

// EffectiveKeys returns the fields a search runs against: keys when given,
// otherwise the fields of the first record. With no keys and no records the
// result is empty.
func EffectiveKeys(records RecordSet, keys []string) []string {
	if len(keys) == 0 && len(records) > 0 {
		return records[0].Keys()
	}

	return keys
}

// Filter returns the records where at least one effective key holds a value
// containing term, compared case-insensitively. Null and absent values never
// match. The relative order of the input is preserved.
func Filter(records RecordSet, term string, keys []string) RecordSet {
	searchKeys := EffectiveKeys(records, keys)
	needle := strings.ToLower(term)

	return lo.Filter(records, func(r Record, _ int) bool {
		return lo.SomeBy(searchKeys, func(key string) bool {
			v := r.Get(key)
			if v.IsNull() {
				return false
			}

			return strings.Contains(strings.ToLower(v.String()), needle)
		})
	})
}
