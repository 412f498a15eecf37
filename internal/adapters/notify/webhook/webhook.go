package webhook

import (
	"context"
	"net/http"
	"time"

	"entaltek-sabueso/internal/platform/httpclient"
	"entaltek-sabueso/internal/platform/logger"
	"entaltek-sabueso/internal/ports/notify"
)

// Notifier postea cada mensaje como JSON a un webhook (Slack-like, n8n,
// lo que sea que tenga recepción la operación).
type Notifier struct {
	client *httpclient.Client
	url    string
	log    logger.Logger
}

func New(url string, log logger.Logger) *Notifier {
	return &Notifier{
		client: httpclient.New(5 * time.Second),
		url:    url,
		log:    log,
	}
}

// NewWithClient permite inyectar el client (para tests).
func NewWithClient(url string, c *httpclient.Client, log logger.Logger) *Notifier {
	return &Notifier{client: c, url: url, log: log}
}

func (n *Notifier) Notify(ctx context.Context, m notify.Message) {
	// best-effort: el caller no espera ni ve el error
	if err := n.client.DoJSON(ctx, http.MethodPost, n.url, nil, m, nil); err != nil {
		n.log.Warn("notify webhook failed", map[string]any{
			"error": err.Error(),
			"title": m.Title,
		})
	}
}
