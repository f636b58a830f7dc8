package services

// toggleMember flips id's membership in the set-valued field: removed when
// present, appended when absent. The second result reports whether the id
// was added.
func toggleMember(set []string, id string) ([]string, bool) {
	for i, member := range set {
		if member == id {
			return append(set[:i], set[i+1:]...), false
		}
	}
	return append(set, id), true
}

func hasMember(set []string, id string) bool {
	for _, member := range set {
		if member == id {
			return true
		}
	}
	return false
}
