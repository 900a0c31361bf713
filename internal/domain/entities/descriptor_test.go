package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

func TestSyncDescriptorVersion(t *testing.T) {
	t.Parallel()

	t.Run("should rewrite the first version element", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<plugin>\n  <version>1.1.0</version>\n</plugin>\n"

		// when
		updated, changed := entities.SyncDescriptorVersion(content, "1.2.0")

		// then
		assert.True(t, changed)
		assert.Equal(t, "<plugin>\n  <version>1.2.0</version>\n</plugin>\n", updated)
	})

	t.Run("should leave later version elements untouched", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<version>1.1.0</version><dep><version>9.9.9</version></dep>"

		// when
		updated, changed := entities.SyncDescriptorVersion(content, "2.0.0")

		// then
		assert.True(t, changed)
		assert.Equal(t, "<version>2.0.0</version><dep><version>9.9.9</version></dep>", updated)
	})

	t.Run("should report no change when already in sync", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<version>1.2.0</version>"

		// when
		updated, changed := entities.SyncDescriptorVersion(content, "1.2.0")

		// then
		assert.False(t, changed)
		assert.Equal(t, content, updated)
	})

	t.Run("should return content without a version element unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<plugin><name>acme</name></plugin>"

		// when
		updated, changed := entities.SyncDescriptorVersion(content, "1.2.0")

		// then
		assert.False(t, changed)
		assert.Equal(t, content, updated)
	})
}
