package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingResponder struct{}

func (failingResponder) Respond(context.Context, string) (string, error) {
	return "", errors.New("upstream unavailable")
}

type cannedResponder struct{ reply string }

func (r cannedResponder) Respond(context.Context, string) (string, error) {
	return r.reply, nil
}

func TestNewSelectsFallbackWithoutAPIKey(t *testing.T) {
	r := New("", "some-model")

	_, ok := r.(*KeywordResponder)
	assert.True(t, ok)
}

func TestNewSelectsRemoteWithAPIKey(t *testing.T) {
	r := New("sk-test", "some-model")

	d, ok := r.(*degrading)
	require.True(t, ok)
	_, ok = d.primary.(*AnthropicResponder)
	assert.True(t, ok)
}

func TestDegradingUsesPrimaryReply(t *testing.T) {
	d := &degrading{primary: cannedResponder{reply: "from upstream"}, fallback: NewKeywordResponder()}

	reply, err := d.Respond(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "from upstream", reply)
}

func TestDegradingFallsBackOnError(t *testing.T) {
	d := &degrading{primary: failingResponder{}, fallback: NewKeywordResponder()}

	reply, err := d.Respond(context.Background(), "I want to rent")
	require.NoError(t, err)
	assert.Contains(t, reply, "rental listings")
}
