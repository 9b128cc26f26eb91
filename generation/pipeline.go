package generation

import (
	"log/slog"

	"github.com/coreybb/storyboard/models"
)

// GenerationPipeline maps a validated Brief to a complete production package.
// It holds no mutable state and is safe for concurrent use.
type GenerationPipeline struct {
	logger *slog.Logger
}

// NewGenerationPipeline creates a pipeline that logs through the default slog logger.
func NewGenerationPipeline() *GenerationPipeline {
	return &GenerationPipeline{logger: slog.Default()}
}

// WithLogger returns a copy of the pipeline that logs through logger.
func (p *GenerationPipeline) WithLogger(logger *slog.Logger) *GenerationPipeline {
	return &GenerationPipeline{logger: logger}
}

// Generate runs every stage in order. The brief must already be validated.
// The only error it returns is an *InternalInconsistencyError, which means a
// derived artifact disagrees with the script and is always a defect.
func (p *GenerationPipeline) Generate(b models.Brief) (*models.GenerationResult, error) {
	d := newDraft(b)

	idea := composeIdea(d)
	outline := buildOutline(d)
	script := composeScript(d, idea, outline)
	voiceover := renderVoiceover(d, script)
	images := generateImages(d, idea, outline, script)
	editing := buildEditing(d, script)
	metadata, err := composeMetadata(d, idea, script, images)
	if err != nil {
		return nil, &InternalInconsistencyError{Check: "chapters", Detail: err.Error()}
	}

	result := &models.GenerationResult{
		Input:     b,
		Idea:      idea,
		Outline:   outline,
		Script:    script,
		Images:    images,
		Voiceover: voiceover,
		Editing:   editing,
		Metadata:  metadata,
	}

	if err := Verify(result); err != nil {
		p.logger.Error("generated package failed verification",
			"topic", d.topic, "durationMinutes", b.DurationMinutes, "error", err)
		return nil, err
	}

	p.logger.Debug("generated package",
		"topic", d.topic,
		"style", b.Style,
		"audience", b.Audience,
		"tone", b.Tone,
		"sections", len(outline),
		"duration", script.Duration)
	return result, nil
}
