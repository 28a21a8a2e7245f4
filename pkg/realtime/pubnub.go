package realtime

import (
	"fmt"
	"log"

	pubnub "github.com/pubnub/go/v7"
)

const (
	serverUserID = "musiconnect-api"
	// seconds; hints are best effort and a slow PubNub must not pile up goroutines
	publishTimeout = 3
)

// Publisher pushes small hints to per-user PubNub channels so open clients can
// refresh before their next poll. A nil Publisher is valid and does nothing.
type Publisher struct {
	send func(channel string, message map[string]any) error
}

// NewPublisher returns nil when PubNub is not configured.
func NewPublisher(publishKey, subscribeKey string) *Publisher {
	if publishKey == "" || subscribeKey == "" {
		return nil
	}
	cfg := pubnub.NewConfigWithUserId(pubnub.UserId(serverUserID))
	cfg.PublishKey = publishKey
	cfg.SubscribeKey = subscribeKey
	cfg.ConnectTimeout = publishTimeout
	cfg.NonSubscribeRequestTimeout = publishTimeout
	pn := pubnub.NewPubNub(cfg)
	return &Publisher{send: func(channel string, message map[string]any) error {
		_, _, err := pn.Publish().Channel(channel).Message(message).Execute()
		return err
	}}
}

func UserChannel(userID uint) string {
	return fmt.Sprintf("user-%d", userID)
}

// Publish returns immediately; the request to PubNub runs in the background.
func (p *Publisher) Publish(userID uint, kind string, payload any) {
	if p == nil {
		return
	}
	message := map[string]any{
		"type": kind,
		"data": payload,
	}
	go func() {
		if err := p.send(UserChannel(userID), message); err != nil {
			log.Printf("[Realtime] publish %s to user %d failed: %v", kind, userID, err)
		}
	}()
}
