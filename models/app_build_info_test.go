package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "2026-10-19", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "2026-10-19", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "lbdash/1.2.0", info.UserAgent())
}

func TestAppBuildInfo_UserAgentWithoutVersion(t *testing.T) {
	assert.Equal(t, "lbdash/dev", NewAppBuildInfo("", "", "").UserAgent())
}
