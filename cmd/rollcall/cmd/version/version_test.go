package version_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutthirak/rollcall/cmd/rollcall/cmd/version"
	"github.com/sutthirak/rollcall/internal/appcontext"
)

func TestVersionCommand(t *testing.T) {
	mock := &appcontext.Mock{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc1234" },
	}

	cmd := version.NewCommand(mock)
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "rollcall 1.2.3")
	assert.Contains(t, out.String(), "abc1234")
}

func TestVersionCommandShort(t *testing.T) {
	mock := &appcontext.Mock{VersionFunc: func() string { return "1.2.3" }}

	cmd := version.NewCommand(mock)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--short"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "1.2.3", strings.TrimSpace(out.String()))
}
