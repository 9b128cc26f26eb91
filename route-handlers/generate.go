package routehandlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/coreybb/storyboard/intake"
	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/processing"
	"github.com/coreybb/storyboard/webutil"
)

const defaultMaxBodyBytes = 64 << 10

// GenerateHandler serves brief-to-package generation.
type GenerateHandler struct {
	Processor    *processing.PackageProcessor
	MaxBodyBytes int64
}

// NewGenerateHandler creates a new GenerateHandler. A non-positive
// maxBodyBytes falls back to 64 KiB.
func NewGenerateHandler(processor *processing.PackageProcessor, maxBodyBytes int64) *GenerateHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &GenerateHandler{Processor: processor, MaxBodyBytes: maxBodyBytes}
}

type optionsResponse struct {
	Styles             []models.VideoStyle    `json:"styles"`
	Audiences          []models.AudienceLevel `json:"audiences"`
	Tones              []models.Tone          `json:"tones"`
	MinDurationMinutes int                    `json:"minDurationMinutes"`
	MaxDurationMinutes int                    `json:"maxDurationMinutes"`
	MinTopicLength     int                    `json:"minTopicLength"`
	MaxTopicLength     int                    `json:"maxTopicLength"`
	DefaultLanguage    string                 `json:"defaultLanguage"`
	ExportFormats      []models.ExportFormat  `json:"exportFormats"`
}

// HandleGetOptions lists the values a brief may take.
func (h *GenerateHandler) HandleGetOptions(w http.ResponseWriter, r *http.Request) error {
	webutil.RespondWithJSON(w, http.StatusOK, optionsResponse{
		Styles:             models.VideoStyles,
		Audiences:          models.AudienceLevels,
		Tones:              models.Tones,
		MinDurationMinutes: models.MinDurationMinutes,
		MaxDurationMinutes: models.MaxDurationMinutes,
		MinTopicLength:     models.MinTopicLength,
		MaxTopicLength:     models.MaxTopicLength,
		DefaultLanguage:    models.DefaultLanguage,
		ExportFormats:      models.ExportFormats,
	})
	return nil
}

// HandleGenerate returns the full production package as JSON, tagged with the
// package ID and an ETag over the body.
func (h *GenerateHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) error {
	return h.respond(w, r, models.ExportFormatJSON)
}

// HandleGenerateEPUB returns the package rendered as an EPUB download.
func (h *GenerateHandler) HandleGenerateEPUB(w http.ResponseWriter, r *http.Request) error {
	return h.respond(w, r, models.ExportFormatEPUB)
}

func (h *GenerateHandler) respond(w http.ResponseWriter, r *http.Request, format models.ExportFormat) error {
	brief, err := h.decodeBrief(w, r)
	if err != nil {
		return err
	}

	pkg, err := h.Processor.Generate(r.Context(), brief)
	if err != nil {
		return webutil.ErrInternalServerWrap("failed to generate package", err)
	}
	body, err := h.Processor.Render(pkg, format)
	if err != nil {
		return webutil.ErrInternalServerWrap("failed to render package", err)
	}

	return writePackage(w, r, pkg.ID, format, body)
}

// writePackage sends one rendered package. JSON bodies are deterministic per
// brief, so they carry a strong ETag and honour If-None-Match.
func writePackage(w http.ResponseWriter, r *http.Request, packageID string, format models.ExportFormat, body []byte) error {
	w.Header().Set(webutil.HeaderPackageID, packageID)
	if format == models.ExportFormatEPUB {
		w.Header().Set(webutil.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.epub"`, packageID))
		webutil.RespondWithBytes(w, http.StatusOK, format.ContentType(), body)
		return nil
	}

	etag, err := webutil.StrongETag(body)
	if err != nil {
		return webutil.ErrInternalServerWrap("failed to tag package", err)
	}
	w.Header().Set(webutil.HeaderETag, etag)
	if r.Header.Get(webutil.HeaderIfNoneMatch) == etag {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}
	webutil.RespondWithBytes(w, http.StatusOK, format.ContentType(), body)
	return nil
}

// decodeBrief reads and validates the request body.
func (h *GenerateHandler) decodeBrief(w http.ResponseWriter, r *http.Request) (models.Brief, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	defer r.Body.Close()

	var req intake.BriefRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.Brief{}, webutil.ErrRequestTooLarge(err)
		}
		if errors.Is(err, io.EOF) {
			return models.Brief{}, webutil.ErrBadRequest("Request body is required")
		}
		return models.Brief{}, webutil.ErrBadRequestWrap("Invalid request payload: "+err.Error(), err)
	}

	return ValidateBrief(req)
}

// ValidateBrief runs intake validation and maps failures to a 400 carrying
// every failing field.
func ValidateBrief(req intake.BriefRequest) (models.Brief, error) {
	brief, err := intake.Validate(req)
	if err != nil {
		var ve *intake.ValidationError
		if errors.As(err, &ve) {
			return models.Brief{}, webutil.ErrValidation(err, ve.Issues)
		}
		return models.Brief{}, err
	}
	return brief, nil
}
