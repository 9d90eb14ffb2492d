package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Adda-Baaj/sentiment-client/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSNSPublisherSendSuccess(t *testing.T) {
	client := &fakeSNSClient{}
	pub := &snsPublisher{
		id:       "topic",
		typ:      TypeSNS,
		topicARN: "arn:aws:sns:::topic",
		client:   client,
		log:      noopLogger{},
	}

	err := pub.Publish(context.Background(), NewEvent(domain.Analysis{Text: "not json body", Response: "plain"}))
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::topic" {
		t.Fatalf("TopicArn = %s", got)
	}
	if _, ok := client.input.MessageAttributes["sentiment_label"]; ok {
		t.Fatalf("sentiment_label should be omitted when unknown")
	}
	if msg := aws.ToString(client.input.Message); !strings.Contains(msg, `"raw_body":"plain"`) {
		t.Fatalf("Message should carry non-JSON body as raw_body: %s", msg)
	}
}

func TestSNSPublisherSendError(t *testing.T) {
	pub := &snsPublisher{
		id:       "topic",
		topicARN: "arn:aws:sns:::topic",
		client:   &fakeSNSClient{err: errors.New("boom")},
		log:      noopLogger{},
	}

	if err := pub.Publish(context.Background(), NewEvent(domain.Analysis{Text: "a1"})); err == nil {
		t.Fatalf("expected error from Publish")
	}
}
