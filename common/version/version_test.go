package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersionString(t *testing.T) {
	t.Parallel()

	s := BuildVersionString("soldeploy")
	assert.Contains(t, s, "soldeploy\n")
	assert.Contains(t, s, runtime.GOOS+"/"+runtime.GOARCH)
	assert.NotEmpty(t, GetGitCommit())
}
