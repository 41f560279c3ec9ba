// Package chat answers visitor questions. A remote text-completion backend
// is used when an API key is configured; otherwise, and whenever the remote
// call fails, a deterministic keyword-matched fallback answers instead. The
// chat surface never returns an error to the visitor.
package chat

import "context"

// SystemPrompt frames the assistant for the remote backend.
const SystemPrompt = `You are a helpful real estate assistant for Kimia Realty. You help users with:
- Property search and recommendations
- Real estate market information
- Buying and selling process guidance
- Rental information
- General real estate questions
Keep responses concise, friendly, and professional. If asked about specific properties, suggest the user browse the listings page.`

// Responder produces a reply to a visitor message.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

// New selects a responder from configuration: the remote backend when an API
// key is present, the keyword fallback otherwise. The remote backend is
// wrapped so its failures degrade to the fallback rather than surfacing.
func New(apiKey, model string) Responder {
	if apiKey == "" {
		return NewKeywordResponder()
	}
	return &degrading{
		primary:  NewAnthropicResponder(apiKey, model),
		fallback: NewKeywordResponder(),
	}
}

type degrading struct {
	primary  Responder
	fallback Responder
}

func (d *degrading) Respond(ctx context.Context, message string) (string, error) {
	reply, err := d.primary.Respond(ctx, message)
	if err != nil {
		return d.fallback.Respond(ctx, message)
	}
	return reply, nil
}
