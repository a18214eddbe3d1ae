package chain

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-coach/internal/prompt"
)

type recordingGenerator struct {
	prompts []string
	out     string
	err     error
}

func (g *recordingGenerator) Generate(ctx context.Context, p string) (string, error) {
	g.prompts = append(g.prompts, p)
	return g.out, g.err
}

func TestRun(t *testing.T) {
	gen := &recordingGenerator{out: "Keep your head still."}
	c, err := New("putting", "Coach says:\n{input}", gen)
	require.NoError(t, err)

	out, err := c.Run(context.Background(), "How do I stop pulling putts?")
	require.NoError(t, err)

	assert.Equal(t, "Keep your head still.", out)
	assert.Equal(t, []string{"Coach says:\nHow do I stop pulling putts?"}, gen.prompts)
	assert.Equal(t, "putting", c.Name())
}

func TestRunPropagatesError(t *testing.T) {
	boom := errors.New("gateway down")
	c, err := New("putting", "{input}", &recordingGenerator{err: boom})
	require.NoError(t, err)

	_, err = c.Run(context.Background(), "hi")
	assert.ErrorIs(t, err, boom)
}

func TestNewRejectsBadTemplate(t *testing.T) {
	_, err := New("broken", "no placeholder", &recordingGenerator{})
	assert.ErrorIs(t, err, prompt.ErrInvalidTemplate)
}

func TestNewDefault(t *testing.T) {
	gen := &recordingGenerator{out: "Hello!"}
	c := NewDefault(gen)

	out, err := c.Run(context.Background(), "Hello")
	require.NoError(t, err)

	assert.Equal(t, prompt.DefaultDestination, c.Name())
	assert.Equal(t, "Hello!", out)
	assert.Equal(t, []string{"Hello"}, gen.prompts, "default chain sends the input unchanged")
}

func TestBuildDestinationsMatchesRegistry(t *testing.T) {
	r, err := prompt.Golf()
	require.NoError(t, err)

	chains, err := BuildDestinations(r, &recordingGenerator{})
	require.NoError(t, err)

	assert.ElementsMatch(t, r.Names(), keys(chains))
	for name, c := range chains {
		assert.Equal(t, name, c.Name())
	}
}

func TestBuildDestinationsAddedEntry(t *testing.T) {
	specs := append(prompt.GolfSpecs(), prompt.Spec{
		Name:        "equipment",
		Description: "Good for answering equipment questions in golf",
		Template:    "You are a club fitter.\n{input}",
	})
	r, err := prompt.NewRegistry(specs...)
	require.NoError(t, err)

	base, err := prompt.Golf()
	require.NoError(t, err)
	baseChains, err := BuildDestinations(base, &recordingGenerator{})
	require.NoError(t, err)

	chains, err := BuildDestinations(r, &recordingGenerator{})
	require.NoError(t, err)

	added := []string{}
	for name := range chains {
		if _, ok := baseChains[name]; !ok {
			added = append(added, name)
		}
	}
	assert.Equal(t, []string{"equipment"}, added)
	assert.Len(t, chains, len(baseChains)+1)
}

func keys(m map[string]*Chain) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
