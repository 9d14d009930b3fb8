package shared

// TargetError is a per-id failure inside a batch submission. These are data,
// not exceptions: the batch response carries both the created records and
// this list, and partial failure is still a 2xx.
type TargetError struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// SplitTargets partitions a submission's target ids into the ones the
// submitter may act for (self or a family member from the token snapshot)
// and per-id authorization errors for the rest. Every input id lands in
// exactly one of the two lists.
func SplitTargets(targetIDs []string, submitterID string, familyMemberIDs []string, denyMessage string) ([]string, []TargetError) {
	family := make(map[string]struct{}, len(familyMemberIDs))
	for _, id := range familyMemberIDs {
		family[id] = struct{}{}
	}

	allowed := make([]string, 0, len(targetIDs))
	errs := []TargetError{}
	for _, id := range targetIDs {
		if id != submitterID {
			if _, ok := family[id]; !ok {
				errs = append(errs, TargetError{UserID: id, Message: denyMessage})
				continue
			}
		}
		allowed = append(allowed, id)
	}
	return allowed, errs
}
