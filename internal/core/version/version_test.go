package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Defaults(t *testing.T) {
	bi := Info()
	assert.Equal(t, Service, bi.Service)
	assert.Equal(t, "dev", bi.Version)
	assert.Equal(t, "none", bi.Commit)
	assert.Equal(t, "unknown", bi.Date)
}

func TestInfo_LinkerOverrides(t *testing.T) {
	old := version
	version = "v1.2.3"
	defer func() { version = old }()

	assert.Equal(t, "v1.2.3", Info().Version)
}
