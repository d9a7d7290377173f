package transform

import "userpipe/internal/models"

// DedupeByID retains the first occurrence of each distinct non-null id, in
// original relative order. A record whose id is null or absent is dropped
// without a diagnostic; only a re-seen non-null id is logged. An id whose
// JSON type cannot be used as a set member (array or object) passes through
// untouched and is left for the reshape stage to reject.
func (p *Processor) DedupeByID(users []models.RawUser) []models.RawUser {
	seen := make(map[any]bool)

	var unique []models.RawUser

	for _, user := range users {
		id := user.ID()

		switch id.(type) {
		case nil:
			continue
		case []any, map[string]any:
			unique = append(unique, user)

			continue
		}

		if seen[id] {
			p.log.Warn("duplicate id found and removed", "id", id)

			continue
		}

		seen[id] = true
		unique = append(unique, user)
	}

	return unique
}
