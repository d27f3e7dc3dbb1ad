package usecase

import "iter"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// NormalizePage clamps page to >= 1 and limit to [1, MaxPageLimit].
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// collect skips the first skip elements of seq and keeps up to limit of the
// rest (limit <= 0 keeps everything). It stops pulling from seq as soon as it
// knows whether more elements follow.
func collect[T any](seq iter.Seq2[T, error], skip, limit int) ([]T, bool, error) {
	out := make([]T, 0)
	seen := 0
	for v, err := range seq {
		if err != nil {
			return nil, false, err
		}
		seen++
		if seen <= skip {
			continue
		}
		if limit > 0 && len(out) == limit {
			return out, true, nil
		}
		out = append(out, v)
	}
	return out, false, nil
}
