package database

import (
	"testing"

	modelspkg "atrium/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_CoversDomain(t *testing.T) {
	var user, content, comment, like bool
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *modelspkg.User:
			user = true
		case *modelspkg.Content:
			content = true
		case *modelspkg.Comment:
			comment = true
		case *modelspkg.Like:
			like = true
		}
	}
	require.True(t, user, "PersistentModels should include User")
	require.True(t, content, "PersistentModels should include Content")
	require.True(t, comment, "PersistentModels should include Comment")
	require.True(t, like, "PersistentModels should include Like")
}
