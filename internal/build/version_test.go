package build

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevBuild(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	Version = "dev"
	assert.True(t, IsDevBuild())

	Version = "v1.2.3"
	assert.False(t, IsDevBuild())
}

func TestInfo(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	tests := map[string]struct {
		version    string
		wantPrefix string
	}{
		"dev build is marked": {
			version:    "dev",
			wantPrefix: "dev (development build)\n",
		},
		"release build": {
			version:    "v1.2.3",
			wantPrefix: "v1.2.3\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			Version = tt.version

			info := Info()

			assert.True(t, strings.HasPrefix(info, tt.wantPrefix), info)
			assert.Contains(t, info, "Built from commit: "+Commit)
			assert.Contains(t, info, "Go version: "+runtime.Version())
		})
	}
}
