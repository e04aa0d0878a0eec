package console

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// FCMPush sends command payloads through Firebase Cloud Messaging. The
// firebase app handle is initialized once at startup and passed in.
type FCMPush struct {
	client *messaging.Client
}

func NewFCMPush(ctx context.Context, app *firebase.App) (*FCMPush, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &FCMPush{client: client}, nil
}

func (p *FCMPush) Send(ctx context.Context, token string, data map[string]string) error {
	_, err := p.client.Send(ctx, &messaging.Message{
		Token: token,
		Data:  data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	})
	return err
}
