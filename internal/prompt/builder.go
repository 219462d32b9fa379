package prompt

import (
	"fmt"
	"strings"

	"github.com/scribeworks/blogsmith-api/internal/llm"
)

// Fixed sampling parameters for blog generation
const (
	blogTemperature = 0.7
	blogTopP        = 0.9
	blogMaxGenLen   = 384
)

// Builder builds llama instruct prompts for blog generation
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build maps a topic to a complete generation request. Pure and total over
// non-empty topics; the topic must be validated by the caller beforehand.
// The topic appears verbatim exactly once in the resulting prompt.
func (b *Builder) Build(topic string) *llm.GenerationRequest {
	var sb strings.Builder
	sb.WriteString("<s>[INST]\n")
	sb.WriteString("You are a professional blog writer.\n\n")
	sb.WriteString(fmt.Sprintf("Write a clear, concise, and well-structured 200-word blog post on the topic: \"%s\".\n", topic))
	sb.WriteString("Format it using:\n")
	sb.WriteString("- A title in heading style\n")
	sb.WriteString("- Subheadings for sections\n")
	sb.WriteString("- Bullet points where applicable\n")
	sb.WriteString("Avoid repeating the prompt or adding instructional tokens. End the blog naturally.\n")
	sb.WriteString("[/INST]")

	return &llm.GenerationRequest{
		Topic:       topic,
		Prompt:      sb.String(),
		Temperature: blogTemperature,
		TopP:        blogTopP,
		MaxGenLen:   blogMaxGenLen,
	}
}
