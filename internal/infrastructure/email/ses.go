package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	sharedConfig "github.com/cragbase/cragbase/internal/shared/config"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type sesClient interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESTransport struct {
	client sesClient
	logger logger.Interface
}

// NewSESTransport uses static credentials when both keys are set and the
// default AWS credential chain otherwise.
func NewSESTransport(ctx context.Context, cfg sharedConfig.SESConfig, log logger.Interface) (*SESTransport, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return newSESTransportWithClient(sesv2.NewFromConfig(awsCfg), log), nil
}

func newSESTransportWithClient(client sesClient, log logger.Interface) *SESTransport {
	return &SESTransport{client: client, logger: log}
}

func (s *SESTransport) Send(ctx context.Context, env *Envelope) error {
	body := &types.Body{}
	if env.HTMLBody != "" {
		body.Html = &types.Content{Data: aws.String(env.HTMLBody), Charset: aws.String("UTF-8")}
	}
	if env.TextBody != "" {
		body.Text = &types.Content{Data: aws.String(env.TextBody), Charset: aws.String("UTF-8")}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(env.From),
		Destination:      &types.Destination{ToAddresses: env.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(env.Subject), Charset: aws.String("UTF-8")},
				Body:    body,
			},
		},
	}
	if env.Mailer != "" {
		input.EmailTags = []types.MessageTag{
			{Name: aws.String("mailer"), Value: aws.String(env.Mailer)},
			{Name: aws.String("action"), Value: aws.String(env.Action)},
		}
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via ses: %w", err)
	}

	s.logger.Debugw("email accepted by ses", "message_id", aws.ToString(out.MessageId), "to", env.To)
	return nil
}
