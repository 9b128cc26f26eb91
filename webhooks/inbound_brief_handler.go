package webhooks

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jhillyerd/enmime"

	"github.com/coreybb/storyboard/intake"
	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/processing"
	rh "github.com/coreybb/storyboard/route-handlers"
	"github.com/coreybb/storyboard/webutil"
)

const (
	maxMultipartMemory = 32 << 20

	formFieldEmail = "email"
	formFieldFrom  = "from"
)

// InboundBriefHandler turns an emailed brief, delivered by an inbound-parse
// webhook as a raw MIME message, into a production package.
type InboundBriefHandler struct {
	Processor *processing.PackageProcessor
}

func NewInboundBriefHandler(processor *processing.PackageProcessor) *InboundBriefHandler {
	return &InboundBriefHandler{Processor: processor}
}

// inboundBriefResponse echoes who sent the brief alongside the package.
type inboundBriefResponse struct {
	PackageID string                   `json:"packageId"`
	Sender    string                   `json:"sender,omitempty"`
	MessageID string                   `json:"messageId,omitempty"`
	Result    *models.GenerationResult `json:"result"`
}

func (h *InboundBriefHandler) HandleInbound(w http.ResponseWriter, r *http.Request) error {
	log.Printf("INFO (InboundBriefHandler): HandleInbound called. Method: %s, Path: %s, Content-Type: %s", r.Method, r.URL.Path, r.Header.Get(webutil.HeaderContentType))

	rawMIME, formSender, err := parseWebhookRequest(r)
	if err != nil {
		return webutil.ErrBadRequestWrap(err.Error(), err)
	}

	env, err := parseMimeMessage(rawMIME)
	if err != nil {
		return webutil.ErrBadRequestWrap("Failed to parse raw MIME email", err)
	}
	messageID := env.GetHeader("Message-ID")
	sender := senderAddress(env, formSender)

	req, err := intake.FromEnvelope(env)
	if err != nil {
		return webutil.ErrBadRequestWrap("Failed to read brief from email", err)
	}
	brief, err := rh.ValidateBrief(req)
	if err != nil {
		return err
	}

	log.Printf("INFO (InboundBriefHandler): Generating package for Sender: %s, Topic: '%s', Message-ID: '%s'", sender, brief.Topic, messageID)
	logAttachments(messageID, env)

	pkg, err := h.Processor.Generate(r.Context(), brief)
	if err != nil {
		return webutil.ErrInternalServerWrap("failed to generate package from email", err)
	}

	w.Header().Set(webutil.HeaderPackageID, pkg.ID)
	webutil.RespondWithJSON(w, http.StatusOK, inboundBriefResponse{
		PackageID: pkg.ID,
		Sender:    sender,
		MessageID: messageID,
		Result:    pkg.Result,
	})
	return nil
}

func parseWebhookRequest(r *http.Request) (rawMIME, sender string, err error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		if err := r.ParseForm(); err != nil {
			log.Printf("ERROR (InboundBriefHandler): Failed to parse form data: %v", err)
			return "", "", fmt.Errorf("failed to parse form data: %w", err)
		}
	}
	rawMIME = r.FormValue(formFieldEmail)
	if rawMIME == "" {
		log.Printf("WARN (InboundBriefHandler): Raw MIME field ('%s') is empty in webhook.", formFieldEmail)
		return "", "", fmt.Errorf("missing raw email content in webhook payload")
	}
	return rawMIME, r.FormValue(formFieldFrom), nil
}

func parseMimeMessage(rawMimeString string) (*enmime.Envelope, error) {
	log.Printf("INFO (InboundBriefHandler): Received raw MIME. Length: %d bytes. Now parsing with enmime.", len(rawMimeString))
	env, err := enmime.ReadEnvelope(strings.NewReader(rawMimeString))
	if err != nil {
		return nil, fmt.Errorf("enmime.ReadEnvelope failed: %w", err)
	}
	return env, nil
}

// senderAddress prefers the parsed Sender header, then From, then the raw
// webhook field.
func senderAddress(env *enmime.Envelope, formSender string) string {
	for _, header := range []string{"Sender", "From"} {
		list, err := env.AddressList(header)
		if err == nil && len(list) > 0 && list[0].Address != "" {
			return strings.ToLower(list[0].Address)
		}
	}
	raw := strings.TrimSpace(formSender)
	if start, end := strings.LastIndex(raw, "<"), strings.LastIndex(raw, ">"); start != -1 && start < end {
		raw = strings.TrimSpace(raw[start+1 : end])
	}
	if strings.Contains(raw, "@") {
		return strings.ToLower(raw)
	}
	return ""
}

func logAttachments(messageID string, env *enmime.Envelope) {
	if len(env.Attachments) == 0 && len(env.Inlines) == 0 {
		return
	}
	log.Printf("INFO (InboundBriefHandler): Ignoring attachments/inline parts on Message-ID %s:", messageID)
	for _, att := range env.Attachments {
		log.Printf("  Attachment: Name: %s, Type: %s, Size: %d bytes", att.FileName, att.ContentType, len(att.Content))
	}
	for _, inline := range env.Inlines {
		log.Printf("  Inline: Name: %s, Type: %s, Size: %d bytes", inline.FileName, inline.ContentType, len(inline.Content))
	}
}
