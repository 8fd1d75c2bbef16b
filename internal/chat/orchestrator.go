package chat

import (
	"context"

	"platechat/internal/domain"
	"platechat/internal/logger"
	"platechat/internal/parser"
)

// historyWindow is how many prior turns travel with each request.
const historyWindow = 10

// Reply is the orchestrator's complete answer for one user turn.
type Reply struct {
	Text   string
	Recipe *domain.Recipe
	Live   bool // false when the demo responder produced the reply
}

// Orchestrator owns the one outbound model call per user turn and the
// fallback policy around it. Its external contract never surfaces an
// error: auth failures, transport failures, and malformed envelopes all
// degrade to the demo responder.
//
// A pending call has no cancellation beyond its context; two overlapping
// calls are independent and the caller may commit both replies. Accepted
// limitation, not masked here.
type Orchestrator struct {
	client   *Client
	fallback domain.Responder
	parser   *parser.Parser
	log      *logger.Logger
}

// NewOrchestrator wires the orchestrator with its client, fallback, and parser.
func NewOrchestrator(client *Client, fallback domain.Responder, p *parser.Parser, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		client:   client,
		fallback: fallback,
		parser:   p,
		log:      log,
	}
}

// Send produces the assistant reply for one user message. With no
// credential it goes straight to the demo responder and performs no I/O.
// On the live path the envelope text runs through the recipe parser; the
// demo path already returns a canonical recipe and skips parsing.
func (o *Orchestrator) Send(ctx context.Context, message string, region domain.RegionFilter, history []domain.Turn, credential string) Reply {
	if credential == "" {
		text, recipe := o.fallback.Respond(message, region)
		return Reply{Text: text, Recipe: recipe, Live: false}
	}

	raw, err := o.client.Chat(ctx, credential, o.buildMessages(message, region, history))
	if err != nil {
		o.log.Warn("orchestrator: live call failed, falling back to demo: %v", err)
		text, recipe := o.fallback.Respond(message, region)
		return Reply{Text: text, Recipe: recipe, Live: false}
	}

	result := o.parser.Parse(raw)
	return Reply{Text: result.Prose, Recipe: result.Recipe, Live: true}
}

// buildMessages assembles the system prompt, the last historyWindow turns,
// and the new user message.
func (o *Orchestrator) buildMessages(message string, region domain.RegionFilter, history []domain.Turn) []Message {
	msgs := []Message{{Role: "system", Content: systemPrompt}}
	if instr := regionInstruction(region); instr != "" {
		msgs = append(msgs, Message{Role: "system", Content: instr})
	}

	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}
	for _, turn := range history[start:] {
		msgs = append(msgs, Message{Role: string(turn.Role), Content: turn.Content})
	}

	msgs = append(msgs, Message{Role: string(domain.RoleUser), Content: message})
	return msgs
}
