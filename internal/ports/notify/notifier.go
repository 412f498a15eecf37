package notify

import "context"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

type Message struct {
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
}

// Notifier es el sink de notificaciones que disparan los handlers al
// crear registros y al hacer check-in/check-out. La entrega es best-effort:
// un sink caído nunca afecta la operación.
type Notifier interface {
	Notify(ctx context.Context, m Message)
}

// Nop descarta todo. Default cuando no hay webhook configurado.
type Nop struct{}

func (Nop) Notify(context.Context, Message) {}
