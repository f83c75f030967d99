package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/person-form/internal/personform"
)

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"check"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCheck_Allowed(t *testing.T) {
	out, err := runCheck(t,
		"--firstName=Ann", "--lastName=Lee", "--standing=sr", "--age=22", "--email=a@b.com")
	require.NoError(t, err)

	assert.Contains(t, out, "submission allowed")
	assert.NotContains(t, out, "invalid")
}

func TestCheck_Blocked(t *testing.T) {
	out, err := runCheck(t,
		"--firstName=Ann", "--lastName=  ", "--standing=jr", "--age=20", "--email=a@b.com")
	assert.ErrorIs(t, err, errBlocked)

	assert.Contains(t, out, "lastName   invalid")
	assert.Contains(t, out, "firstName  valid")
	assert.Contains(t, out, personform.ErrorText)
}
