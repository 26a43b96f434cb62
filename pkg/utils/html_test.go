package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Kimchi & rice", CleanText("  Kimchi &amp;   rice \n"))
	assert.Equal(t, "Chef's special", CleanText("Chef&#39;s special"))
}

func TestRemoveHTMLTags(t *testing.T) {
	assert.Equal(t, "쌀밥 김치", RemoveHTMLTags("쌀밥<br>김치"))
	assert.Equal(t, "<중식>", RemoveHTMLTags("<b>&lt;중식&gt;</b>"))
}
