package models

// Idea is the concept a production package is built around.
type Idea struct {
	Title      string   `json:"title"`
	Hook       string   `json:"hook"`
	Angle      string   `json:"angle"`
	ValueProps []string `json:"valueProps"`
}

// OutlineSection is one narrative section. The ordered outline is the single
// source of truth for section count and order in every later artifact.
type OutlineSection struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// SegmentType defines the kinds of script segments.
type SegmentType string

const (
	SegmentTypeIntro   SegmentType = "intro"
	SegmentTypeSection SegmentType = "section"
	SegmentTypeOutro   SegmentType = "outro"
)

const (
	IntroSectionIndex = -1
	OutroSectionIndex = 999
)

type ScriptSegment struct {
	ID               string      `json:"id"`
	Type             SegmentType `json:"type"`
	SectionIndex     int         `json:"sectionIndex"`
	Start            string      `json:"start"` // HH:MM:SS.mmm
	End              string      `json:"end"`   // HH:MM:SS.mmm
	OnScreenText     string      `json:"onScreenText"`
	Voiceover        string      `json:"voiceover"`
	BrollSuggestions []string    `json:"brollSuggestions"`
	SoundDesign      []string    `json:"soundDesign"`
}

type Script struct {
	Segments []ScriptSegment `json:"segments"`
	Duration string          `json:"duration"` // HH:MM:SS.mmm
}

// ImagePurpose defines what an image prompt is used for.
type ImagePurpose string

const (
	ImagePurposeThumbnail  ImagePurpose = "thumbnail"
	ImagePurposeScene      ImagePurpose = "scene"
	ImagePurposeBroll      ImagePurpose = "broll"
	ImagePurposeBackground ImagePurpose = "background"
)

type ImagePrompt struct {
	ID        string       `json:"id"`
	Purpose   ImagePurpose `json:"purpose"`
	SegmentID string       `json:"segmentId,omitempty"`
	Prompt    string       `json:"prompt"`
	Alt       string       `json:"alt"`
	// SuggestedSource is a stock-photo search URL, never a concrete asset.
	SuggestedSource string `json:"suggestedSource,omitempty"`
}

// Images holds the single thumbnail prompt and a gallery where gallery[i]
// pairs with script segment i.
type Images struct {
	Thumbnail ImagePrompt   `json:"thumbnail"`
	Gallery   []ImagePrompt `json:"gallery"`
}

type Voiceover struct {
	Language string `json:"language"`
	Plain    string `json:"plain"`
	SSML     string `json:"ssml"`
}

// VideoAction defines the allowed edit actions on the video track.
type VideoAction string

const (
	VideoActionCut     VideoAction = "cut"
	VideoActionBroll   VideoAction = "broll"
	VideoActionHold    VideoAction = "hold"
	VideoActionZoom    VideoAction = "zoom"
	VideoActionPan     VideoAction = "pan"
	VideoActionOverlay VideoAction = "overlay"
)

// AudioAction defines the allowed edit actions on the audio track.
type AudioAction string

const (
	AudioActionVO    AudioAction = "vo"
	AudioActionSFX   AudioAction = "sfx"
	AudioActionMusic AudioAction = "music"
)

type VideoStep struct {
	Action VideoAction `json:"action"`
	Notes  string      `json:"notes"`
}

type AudioStep struct {
	Action AudioAction `json:"action"`
	Notes  string      `json:"notes"`
}

// TimelineEvent is the editing counterpart of one script segment. Start and
// End are copied from that segment, never recomputed.
type TimelineEvent struct {
	SegmentID string      `json:"segmentId"`
	Start     string      `json:"start"`
	End       string      `json:"end"`
	Video     []VideoStep `json:"video"`
	Audio     []AudioStep `json:"audio"`
}

type AspectRatio string

const (
	AspectRatioLandscape AspectRatio = "16:9"
	AspectRatioPortrait  AspectRatio = "9:16"
	AspectRatioSquare    AspectRatio = "1:1"
)

type CaptionPosition string

const (
	CaptionPositionBottom CaptionPosition = "bottom"
	CaptionPositionCenter CaptionPosition = "center"
	CaptionPositionTop    CaptionPosition = "top"
)

type CaptionStyle string

const (
	CaptionStyleBoxed     CaptionStyle = "boxed"
	CaptionStyleHighlight CaptionStyle = "highlight"
	CaptionStyleKaraoke   CaptionStyle = "karaoke"
)

type Captions struct {
	Enabled  bool            `json:"enabled"`
	Position CaptionPosition `json:"position"`
	Style    CaptionStyle    `json:"style"`
}

type Music struct {
	Mood     string `json:"mood"`
	VolumeDB int    `json:"volumeDb"`
}

type EditingInstructions struct {
	FPS         int             `json:"fps"`
	AspectRatio AspectRatio     `json:"aspectRatio"`
	Captions    Captions        `json:"captions"`
	Music       Music           `json:"music"`
	Timeline    []TimelineEvent `json:"timeline"`
}

// Chapter is a navigation marker aligned to a segment start, in m:ss or h:mm:ss.
type Chapter struct {
	Time  string `json:"time"`
	Title string `json:"title"`
}

type Metadata struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Tags            []string  `json:"tags"`
	Keywords        []string  `json:"keywords"`
	Chapters        []Chapter `json:"chapters"`
	ThumbnailText   string    `json:"thumbnailText"`
	ThumbnailPrompt string    `json:"thumbnailPrompt"`
	UploadChecklist []string  `json:"uploadChecklist"`
}

// GenerationResult is the complete production package for one Brief.
type GenerationResult struct {
	Input     Brief               `json:"input"`
	Idea      Idea                `json:"idea"`
	Outline   []OutlineSection    `json:"outline"`
	Script    Script              `json:"script"`
	Images    Images              `json:"images"`
	Voiceover Voiceover           `json:"voiceover"`
	Editing   EditingInstructions `json:"editing"`
	Metadata  Metadata            `json:"metadata"`
}
