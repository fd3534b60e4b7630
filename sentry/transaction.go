package sentry

import (
	"context"
	"fmt"

	sentry "github.com/getsentry/sentry-go"
)

// contextKey is used to store the cloned hub in context
type contextKey string

const hubContextKey contextKey = "sentry_hub"

// StartChatTransaction creates a transaction with a cloned hub for one chat
// exchange. The cloned hub keeps breadcrumbs and tags isolated per request.
func StartChatTransaction(ctx context.Context, personaID string, sessionID string) (context.Context, *sentry.Span) {
	hub := sentry.CurrentHub().Clone()
	ctx = context.WithValue(ctx, hubContextKey, hub)

	transactionName := fmt.Sprintf("chat.%s", personaID)
	transaction := sentry.StartTransaction(ctx, transactionName,
		sentry.WithOpName("chat.respond"),
		sentry.WithTransactionSource(sentry.SourceRoute),
	)

	transaction.SetTag("persona_id", personaID)
	transaction.SetTag("session_id", sessionID)

	hub.Scope().SetSpan(transaction)

	return transaction.Context(), transaction
}

// HubFromContext retrieves the cloned hub from context, falling back to
// CurrentHub when none is stored.
func HubFromContext(ctx context.Context) *sentry.Hub {
	if ctx == nil {
		return sentry.CurrentHub()
	}
	if hub, ok := ctx.Value(hubContextKey).(*sentry.Hub); ok && hub != nil {
		return hub
	}
	return sentry.CurrentHub()
}

// AddBreadcrumb adds a breadcrumb to the hub in context.
func AddBreadcrumb(ctx context.Context, breadcrumb *sentry.Breadcrumb) {
	HubFromContext(ctx).AddBreadcrumb(breadcrumb, nil)
}

// CaptureException captures an exception on the hub in context.
func CaptureException(ctx context.Context, err error) *sentry.EventID {
	return HubFromContext(ctx).CaptureException(err)
}
