package checkins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/cli/clitest"
	apperrors "github.com/julianstephens/enduro/internal/errors"
)

func TestCheckinAddCmd(t *testing.T) {
	env := clitest.New(t)

	require.NoError(t, (&CheckinAddCmd{}).Run(env.Ctx))
	assert.Contains(t, env.Output(), "week of 2026-10-12")

	// Any day folds onto its Monday, and repeats are ignored.
	require.NoError(t, (&CheckinAddCmd{Date: "2026-10-08"}).Run(env.Ctx))
	require.NoError(t, (&CheckinAddCmd{Date: "2026-10-05"}).Run(env.Ctx))

	weeks, err := env.Ctx.Store.GetCheckins()
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-05", "2026-10-12"}, weeks)

	assert.Error(t, (&CheckinAddCmd{Date: "last week"}).Run(env.Ctx))
}

func TestCheckinRemoveCmd(t *testing.T) {
	env := clitest.New(t)
	require.NoError(t, env.Ctx.Store.AddCheckin("2026-10-12"))

	require.NoError(t, (&CheckinRemoveCmd{Date: "2026-10-16"}).Run(env.Ctx))
	weeks, err := env.Ctx.Store.GetCheckins()
	require.NoError(t, err)
	assert.Empty(t, weeks)

	assert.True(t, apperrors.IsNotFound((&CheckinRemoveCmd{Date: "2026-10-16"}).Run(env.Ctx)))
}

func TestCheckinListCmd(t *testing.T) {
	env := clitest.New(t)
	require.NoError(t, (&CheckinListCmd{}).Run(env.Ctx))
	assert.Contains(t, env.Output(), "No check-ins yet")

	require.NoError(t, env.Ctx.Store.AddCheckin("2026-10-12"))
	require.NoError(t, (&CheckinListCmd{OutputFlags: cli.OutputFlags{Format: "yaml"}}).Run(env.Ctx))
	assert.Equal(t, "- \"2026-10-12\"\n", env.Output())
}
