package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenerateContent sends one generateContent call. The SDK does not retry;
// retries belong to llmprovider.Manager.
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, buildContents(req.Messages), buildConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: generateContent failed: %w", err)
	}

	out := &Response{Text: resp.Text()}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return out, nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func buildContents(msgs []Content) []*genai.Content {
	contents := make([]*genai.Content, 0, len(msgs))
	for _, msg := range msgs {
		var role genai.Role = genai.RoleUser
		if msg.Role == roleAssistant || msg.Role == string(genai.RoleModel) {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}
	return contents
}

// buildConfig returns nil when nothing needs overriding so the API defaults apply.
func buildConfig(req *Request) *genai.GenerateContentConfig {
	if req.SystemInstruction == "" && req.Temperature <= 0 && req.MaxTokens <= 0 {
		return nil
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	return cfg
}
