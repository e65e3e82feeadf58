package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowseCmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"browse"})
	assert.NoError(t, err)
	assert.Equal(t, "browse", cmd.Name())
	assert.Contains(t, cmd.Long, "tab")
}

func TestBrowseCmd_NotConfigured(t *testing.T) {
	previous := serviceFactory
	serviceFactory = nil
	defer func() { serviceFactory = previous }()

	_, err := run(t, "browse")
	assert.EqualError(t, err, "services not configured")
}
