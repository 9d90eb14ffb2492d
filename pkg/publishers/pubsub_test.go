package publishers

import (
	"context"
	"testing"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/Adda-Baaj/sentiment-client/internal/domain"
)

func TestPubSubPublisherPublishes(t *testing.T) {
	// Use the in-memory Pub/Sub emulator.
	server := pstest.NewServer()
	defer server.Close()
	t.Setenv("PUBSUB_EMULATOR_HOST", server.Addr)

	ctx := context.Background()
	admin, err := pubsub.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	defer admin.Close()
	if _, err := admin.CreateTopic(ctx, "analyses"); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	pub, err := newPubSubPublisher(ctx, PublisherConfig{
		ID:     "gcp",
		Type:   TypePubSub,
		PubSub: &PubSubPublisherConfig{ProjectID: "test-project", Topic: "analyses"},
	}, nil)
	if err != nil {
		t.Fatalf("newPubSubPublisher: %v", err)
	}
	defer pub.(*pubSubPublisher).Close()

	err = pub.Publish(ctx, NewEvent(domain.Analysis{
		Text:     "great",
		Response: `{"sentiment":"positive"}`,
		Label:    "positive",
	}))
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	msgs := server.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message on the emulator, got %d", len(msgs))
	}
	if got := msgs[0].Attributes["sentiment_label"]; got != "positive" {
		t.Fatalf("sentiment_label attribute = %q", got)
	}
}
