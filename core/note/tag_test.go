package note_test

import (
	"testing"

	"github.com/goto/gossip/core/note"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalTag(t *testing.T) {
	assert.Equal(t, "golang", note.CanonicalTag("#GoLang"))
	assert.Equal(t, "golang", note.CanonicalTag(" golang "))
	assert.Equal(t, "#x", note.CanonicalTag("##x"))
}
