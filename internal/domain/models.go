package domain

import "fmt"

// Kind selects the prompt template and response mode for a generation request.
type Kind string

const (
	KindTitles      Kind = "titles"
	KindOutline     Kind = "outline"
	KindArticle     Kind = "article"
	KindSocial      Kind = "social"
	KindEmail       Kind = "email"
	KindAds         Kind = "ads"
	KindCopywriting Kind = "copywriting"
	KindEdit        Kind = "edit"
)

// ParseKind validates a wire-level type string. Unknown values are rejected
// rather than treated as an edit request, so a typo in the client never
// silently rewrites a document.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindTitles, KindOutline, KindArticle, KindSocial, KindEmail, KindAds, KindCopywriting, KindEdit:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// IsBlocking reports whether the kind returns a single array-shaped payload
// instead of a stream. Only titles and outlines are short enough to block on.
func (k Kind) IsBlocking() bool {
	return k == KindTitles || k == KindOutline
}

// ToneBrandVoice is the sentinel tone value that requests the user's stored
// writing sample instead of a named tone.
const ToneBrandVoice = "brand-voice"

// GenerationRequest carries one generation call. Which fields are meaningful
// depends on Kind; Validate enforces the per-kind requirements.
type GenerationRequest struct {
	Kind           Kind     `json:"type"`
	Tone           string   `json:"tone"`
	Topic          string   `json:"topic,omitempty"`
	Keywords       string   `json:"keywords,omitempty"`
	Title          string   `json:"title,omitempty"`
	Outline        []string `json:"outline,omitempty"`
	Platform       string   `json:"platform,omitempty"`
	Framework      string   `json:"framework,omitempty"`
	Recipient      string   `json:"recipient,omitempty"`
	Goal           string   `json:"goal,omitempty"`
	CurrentContent string   `json:"currentContent,omitempty"`
	Instruction    string   `json:"prompt,omitempty"`
	DocumentID     string   `json:"documentId,omitempty"`
}

// Validate checks the kind-specific required fields.
func (r *GenerationRequest) Validate() error {
	switch r.Kind {
	case KindTitles, KindSocial, KindAds, KindCopywriting:
		if r.Topic == "" {
			return fmt.Errorf("%w: topic is required for %s", ErrInvalidRequest, r.Kind)
		}
	case KindOutline, KindArticle:
		if r.Title == "" {
			return fmt.Errorf("%w: title is required for %s", ErrInvalidRequest, r.Kind)
		}
	case KindEmail:
		if r.Topic == "" {
			return fmt.Errorf("%w: topic is required for email", ErrInvalidRequest)
		}
	case KindEdit:
		if r.CurrentContent == "" {
			return fmt.Errorf("%w: currentContent is required for edit", ErrInvalidRequest)
		}
		if r.Instruction == "" {
			return fmt.Errorf("%w: prompt is required for edit", ErrInvalidRequest)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
	return nil
}

// Plan is the billing tier attached to a user record.
type Plan string

const (
	PlanNone  Plan = "NONE"
	PlanTrial Plan = "TRIAL"
	PlanPaid  Plan = "PAID"
)

// User is the stored user record. WordsUsed only ever increases, and only
// after a completed generation.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	WordsUsed  int    `json:"wordsUsed"`
	WordLimit  int    `json:"wordLimit"`
	Plan       Plan   `json:"plan"`
	BrandVoice string `json:"brandVoice,omitempty"`
}

// StreamChunk is a single increment of streamed output. A chunk with Done set
// marks clean exhaustion; a chunk with Err set terminates the stream without
// finalization.
type StreamChunk struct {
	Delta string
	Done  bool
	Err   error
}
