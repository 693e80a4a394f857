package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cozy-tetris/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Description() string                  { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	t.Cleanup(func() { unregister("zz_stub") })

	require.True(t, Exists("zz_stub"))
	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())

	var found *GameInfo
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = &info
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Stub zz_stub", found.Title)
	assert.Equal(t, "a stub", found.Description)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	t.Cleanup(func() { unregister("zz_dup") })

	assert.Panics(t, func() {
		Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	assert.ErrorContains(t, err, "unknown game")
	assert.False(t, Exists("no_such_game"))
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })
	t.Cleanup(func() {
		unregister("zz_a")
		unregister("zz_b")
	})

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
