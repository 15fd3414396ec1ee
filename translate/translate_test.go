package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage("en-US")

	assert.Equal("Command 'foo' not found", From("Command '%v' not found", "foo"))
	assert.Equal("A executed 12 steps until stopping.", From("%v executed %d steps until stopping.", "A", 12))
}

func TestSetLanguageFallback(t *testing.T) {
	assert := assert.New(t)

	// No catalog exists for the tag, so the key is used verbatim.
	SetLanguage("xx-YY")
	assert.Equal("Game started.", From("Game started."))

	SetLanguage("en-US")
}
