package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Sessions_LoginIssuesUniqueTokens(t *testing.T) {
	sessions := NewSessions()

	firstToken, firstUser := sessions.Login("recruiter")
	secondToken, _ := sessions.Login("recruiter")

	assert.NotEmpty(t, firstToken)
	assert.NotEqual(t, firstToken, secondToken)
	assert.Equal(t, "recruiter", firstUser.ID)
	assert.Equal(t, "recruiter", firstUser.Username)
}

func Test_Sessions_TokenResolvesUntilLogout(t *testing.T) {
	sessions := NewSessions()
	token, _ := sessions.Login("recruiter")

	user, ok := sessions.User(token)
	assert.True(t, ok)
	assert.Equal(t, "recruiter", user.Username)

	sessions.Logout(token)

	_, ok = sessions.User(token)
	assert.False(t, ok)
}

func Test_Sessions_UnknownTokenDoesNotResolve(t *testing.T) {
	sessions := NewSessions()

	_, ok := sessions.User("forged-token")

	assert.False(t, ok)
}
