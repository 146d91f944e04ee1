package testutils

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goto/gossip/core/feed"
	"github.com/stretchr/testify/assert"
)

// AssertEqualPredicate fails the test when the predicate trees differ
func AssertEqualPredicate(t *testing.T, expected, actual feed.Predicate) {
	t.Helper()

	if diff := cmp.Diff(expected, actual); diff != "" {
		msg := fmt.Sprintf(
			"Not equal:\n"+
				"expected:\n\t'%v'\n"+
				"actual:\n\t'%v'\n"+
				"diff (-expected +actual):\n%s",
			expected, actual, diff,
		)
		assert.Fail(t, msg)
	}
}
