package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantumauth-io/payment-info/internal/httpui"
	"github.com/quantumauth-io/payment-info/internal/logging"
	"github.com/quantumauth-io/payment-info/internal/metrics"
	"github.com/quantumauth-io/payment-info/internal/view"
)

// Options wires the server's collaborators.
type Options struct {
	Title            string
	UIAllowedOrigins []string
	Logger           logging.Logger
	Metrics          *metrics.Metrics
	Gatherer         prometheus.Gatherer
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}

type Server struct {
	views   *view.Registry
	title   string
	logger  logging.Logger
	metrics *metrics.Metrics
	engine  *gin.Engine
}

func NewServer(views *view.Registry, opts Options) (http.Handler, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	s := &Server{
		views:   views,
		title:   opts.Title,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}

	tmpl, err := httpui.Templates()
	if err != nil {
		return nil, err
	}
	assets, err := httpui.Assets()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), withRequestLog(s.logger), withLoopbackOnly(), withCORS(opts.UIAllowedOrigins))
	r.SetHTMLTemplate(tmpl)

	r.GET(PathHealth, s.handleHealth)
	r.GET(PathMetrics, gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	r.StaticFS(PathStatic, assets)

	api := r.Group(PathAPI)
	{
		api.GET(PathMethods, s.handleMethods)
		api.POST(PathViews, s.handleOpenView)
		api.GET(PathView, s.handleGetView)
		api.DELETE(PathView, s.handleCloseView)
		api.POST(PathViewClose, s.handleCloseView)
		api.POST(PathViewCopy, s.handleCopy)
	}

	// page last so it doesn't shadow API routes
	r.GET(PathRoot, s.handlePage)

	s.engine = r
	return s, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
