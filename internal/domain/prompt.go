package domain

import (
	"encoding/json"
	"fmt"
)

// formatInstruction is the output-markup contract shared with the rendering
// client. Every prose-producing kind gets the identical instruction.
const formatInstruction = "Format the output using HTML tags (e.g. <h2>, <p>, <ul>, <li>, <strong>). " +
	"Do NOT use Markdown (#, *). Do NOT include <html> or <body> tags. Output only the body content."

// BuildPrompts maps a validated request to the (system, user) instruction
// pair for the backend. Pure and deterministic; brandVoice is the user's
// stored writing sample, empty when none exists.
func BuildPrompts(req *GenerationRequest, brandVoice string) (systemPrompt, userPrompt string) {
	tone := resolveTone(req.Tone, brandVoice)

	switch req.Kind {
	case KindTitles:
		systemPrompt = "You are an SEO expert. Return ONLY a raw JSON array of 5 catchy, SEO-optimized blog titles. " +
			`Example: ["Title 1", "Title 2"]. Do not output any other text.`
		userPrompt = fmt.Sprintf("Topic: %s. Keywords: %s. %s", req.Topic, req.Keywords, tone)

	case KindOutline:
		systemPrompt = "You are a content strategist. Return ONLY a raw JSON array of 6-8 distinct section headers (H2s). " +
			`Example: ["Intro", "Point 1"]. Do not output any other text.`
		userPrompt = fmt.Sprintf("Title: %s. %s Keywords: %s", req.Title, tone, req.Keywords)

	case KindArticle:
		systemPrompt = fmt.Sprintf("You are an expert writer. Write a comprehensive blog post. %s %s", tone, formatInstruction)
		outline, _ := json.Marshal(req.Outline)
		userPrompt = fmt.Sprintf("Title: %s\n\nOutline Structure:\n%s\n\nWrite the full article now.", req.Title, outline)

	case KindSocial:
		systemPrompt = fmt.Sprintf("You are a social media expert for %s. Write 3 distinct post options. %s %s",
			req.Platform, tone, formatInstruction)
		userPrompt = fmt.Sprintf("Topic: %s\nKeywords: %s", req.Topic, req.Keywords)

	case KindEmail:
		systemPrompt = fmt.Sprintf("You are an expert email copywriter. Write a compelling email. %s %s", tone, formatInstruction)
		userPrompt = fmt.Sprintf("Subject: %s\nRecipient: %s\nGoal/CTA: %s\nKeywords: %s",
			req.Topic, req.Recipient, req.Goal, req.Keywords)

	case KindAds:
		systemPrompt = fmt.Sprintf("You are a PPC expert for %s Ads. Write 3 variations. %s %s",
			req.Platform, tone, formatInstruction)
		userPrompt = fmt.Sprintf("Product: %s\nTarget: %s", req.Topic, req.Keywords)

	case KindCopywriting:
		systemPrompt = fmt.Sprintf("You are a master copywriter using the %s framework. %s %s",
			req.Framework, tone, formatInstruction)
		userPrompt = fmt.Sprintf("Topic: %s\nContext: %s", req.Topic, req.Keywords)

	case KindEdit:
		systemPrompt = "You are a professional editor. You will receive existing content (HTML) and an instruction. " +
			"You must rewrite the ENTIRE content to satisfy the instruction. Output the complete final text, " +
			fmt.Sprintf("never a diff or an excerpt. %s %s", tone, formatInstruction)
		userPrompt = fmt.Sprintf("EXISTING CONTENT:\n%q\n\nINSTRUCTION: %s\n\nREWRITTEN CONTENT:",
			req.CurrentContent, req.Instruction)
	}

	return systemPrompt, userPrompt
}

// resolveTone turns the requested tone into a concrete instruction. The
// brand-voice sentinel is substituted before any template interpolation so a
// missing sample degrades to a neutral instruction, never an empty quote.
func resolveTone(tone, brandVoice string) string {
	if tone != ToneBrandVoice {
		return fmt.Sprintf("Tone: %s.", tone)
	}

	if brandVoice == "" {
		return "Tone: Professional."
	}

	return fmt.Sprintf("Adopt the user's specific brand voice. Here is a sample of their writing style: %q. "+
		"Mimic this style, vocabulary, and sentence structure exactly.", brandVoice)
}
