package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	rh "github.com/coreybb/storyboard/route-handlers"
	"github.com/coreybb/storyboard/webhooks"
	"github.com/coreybb/storyboard/webutil"
)

const (
	apiBasePath      = "/api"
	generateBasePath = "/generate"
	optionsPath      = "/options"
	packagesBasePath = "/packages"
	webhooksBasePath = "/webhooks"
)

const (
	epubSubPath         = "/epub"
	inboundBriefSubPath = "/inbound-brief"
	packageExportPath   = "/{packageID}/{format}"
)

const defaultRequestTimeout = 30 * time.Second

func SetupRoutes(
	generateHandler *rh.GenerateHandler,
	packageHandler *rh.PackageHandler,
	inboundBriefHandler *webhooks.InboundBriefHandler,
	requestTimeout time.Duration,
) http.Handler {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)                                                 // Log every request
	r.Use(middleware.Recoverer)                                              // Recover from panics
	r.Use(middleware.Timeout(requestTimeout))                                // Set a timeout context for requests
	r.Use(SetHeader(webutil.HeaderContentType, webutil.ContentTypeJSONUTF8)) // Default Content-Type

	r.NotFound(webutil.MakeHandler(handleNotFound))
	r.MethodNotAllowed(webutil.MakeHandler(handleMethodNotAllowed))

	r.Route(apiBasePath, func(r chi.Router) {
		configureGenerateRoutes(r, generateHandler)
		configurePackageRoutes(r, packageHandler)
	})

	r.Route(webhooksBasePath, func(r chi.Router) {
		r.Post(inboundBriefSubPath, webutil.MakeHandler(inboundBriefHandler.HandleInbound)) // POST /webhooks/inbound-brief
	})

	// Health check endpoint
	r.Get("/healthz", handleHealthCheck)

	return r
}

// --- Generation Routes ---
func configureGenerateRoutes(r chi.Router, handler *rh.GenerateHandler) {
	r.Get(optionsPath, webutil.MakeHandler(handler.HandleGetOptions)) // GET /api/options
	r.Route(generateBasePath, func(r chi.Router) {
		// POST /api/generate
		r.Post("/", webutil.MakeHandler(handler.HandleGenerate))
		// POST /api/generate/epub
		r.Post(epubSubPath, webutil.MakeHandler(handler.HandleGenerateEPUB))
	})
}

// --- Package Routes ---
func configurePackageRoutes(r chi.Router, handler *rh.PackageHandler) {
	r.Route(packagesBasePath, func(r chi.Router) {
		// GET /api/packages/{packageID}/{format}
		r.Get(packageExportPath, webutil.MakeHandler(handler.HandleGetPackage))
	})
}

// handleHealthCheck responds to a health check request.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(webutil.HeaderContentType, webutil.ContentTypeTextPlainUTF8)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
