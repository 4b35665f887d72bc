package uistate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Lifecycle(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, View{Status: Idle, TriggerEnabled: true}, m.Snapshot())

	require.NoError(t, m.Start("…", "Converting..."))
	v := m.Snapshot()
	assert.Equal(t, Loading, v.Status)
	assert.False(t, v.TriggerEnabled)
	assert.Equal(t, "…", v.Value)

	assert.ErrorIs(t, m.Start("…", ""), ErrBusy)

	m.Succeed("92.00 EUR", "hint")
	assert.Equal(t, View{Status: Ok, Value: "92.00 EUR", Hint: "hint", TriggerEnabled: true}, m.Snapshot())

	require.NoError(t, m.Start("…", ""))
	m.Fail("Error", "HTTP 502")
	assert.Equal(t, Err, m.Snapshot().Status)
	assert.True(t, m.Snapshot().TriggerEnabled)

	require.NoError(t, m.Start("…", ""))
	assert.Equal(t, Loading, m.Snapshot().Status)
}

func TestMachine_FinishOutsideLoadingIsIgnored(t *testing.T) {
	m := NewMachine()
	m.Succeed("x", "y")
	assert.Equal(t, Idle, m.Snapshot().Status)
	m.Fail("x", "y")
	assert.Equal(t, Idle, m.Snapshot().Status)
}

func TestMachine_ReleaseClosesUnfinishedAction(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Start("…", ""))
	m.Release()

	v := m.Snapshot()
	assert.Equal(t, Err, v.Status)
	assert.Equal(t, "Error", v.Value)
	assert.True(t, v.TriggerEnabled)

	m2 := NewMachine()
	require.NoError(t, m2.Start("…", ""))
	m2.Succeed("1.00", "")
	m2.Release()
	assert.Equal(t, Ok, m2.Snapshot().Status)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "ok", Ok.String())
	assert.Equal(t, "error", Err.String())
	assert.Equal(t, "unknown", Status(42).String())
}
