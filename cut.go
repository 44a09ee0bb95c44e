package cohort

import "github.com/ashiwatari/cohort/internal/linkage"

// cut maps the final level's index clusters back to record identities.
// The merge sequence works on indices; callers want names. Cluster and
// member order are preserved, so Group.Index is stable across runs.
func cut(level linkage.Level, records []Record) []Group {
	groups := make([]Group, len(level.Clusters))
	for i, members := range level.Clusters {
		ids := make([]string, len(members))
		for j, idx := range members {
			ids[j] = records[idx].ID
		}
		groups[i] = Group{Index: i, Members: ids}
	}
	return groups
}
