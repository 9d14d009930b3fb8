package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const deny = "not allowed"

func TestSplitTargetsSelfAlwaysAllowed(t *testing.T) {
	allowed, errs := SplitTargets([]string{"self"}, "self", nil, deny)
	assert.Equal(t, []string{"self"}, allowed)
	assert.Empty(t, errs)
}

func TestSplitTargetsFamilyMembersAllowed(t *testing.T) {
	family := []string{"self", "sibling", "parent"}
	allowed, errs := SplitTargets([]string{"sibling", "parent"}, "self", family, deny)
	assert.Equal(t, []string{"sibling", "parent"}, allowed)
	assert.Empty(t, errs)
}

func TestSplitTargetsStrangerRejected(t *testing.T) {
	allowed, errs := SplitTargets([]string{"self", "stranger"}, "self", []string{"self"}, deny)
	assert.Equal(t, []string{"self"}, allowed)
	assert.Len(t, errs, 1)
	assert.Equal(t, "stranger", errs[0].UserID)
	assert.Equal(t, deny, errs[0].Message)
}

func TestSplitTargetsSelfAllowedWithoutFamilySnapshot(t *testing.T) {
	allowed, errs := SplitTargets([]string{"self"}, "self", []string{}, deny)
	assert.Equal(t, []string{"self"}, allowed)
	assert.Empty(t, errs)
}

// Every input id must land in exactly one of the two output lists.
func TestSplitTargetsCoversAllInputs(t *testing.T) {
	input := []string{"a", "b", "c", "d", "self"}
	allowed, errs := SplitTargets(input, "self", []string{"b", "d"}, deny)

	seen := map[string]int{}
	for _, id := range allowed {
		seen[id]++
	}
	for _, e := range errs {
		seen[e.UserID]++
	}
	assert.Len(t, seen, len(input))
	for _, id := range input {
		assert.Equal(t, 1, seen[id], "id %s", id)
	}
}

func TestSplitTargetsPreservesOrder(t *testing.T) {
	allowed, _ := SplitTargets([]string{"c", "a", "b"}, "x", []string{"a", "b", "c"}, deny)
	assert.Equal(t, []string{"c", "a", "b"}, allowed)
}
