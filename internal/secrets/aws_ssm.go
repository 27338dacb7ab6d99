package secrets

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/rs/zerolog"
)

// ssmProvider reads the key from a SecureString parameter of AWS SSM Parameter Store.
type ssmProvider struct {
	logger zerolog.Logger

	region    string
	endpoint  string
	parameter string

	accessKeyId     string
	secretAccessKey string
}

func newSsmProvider(cfg *Config, logger zerolog.Logger) (KeyProvider, error) {
	if err := requireParam(cfg.AwsRegion, "aws_region"); err != nil {
		return nil, err
	}
	if err := requireParam(cfg.SsmParameter, "ssm_parameter"); err != nil {
		return nil, err
	}
	return &ssmProvider{
		logger:          logger,
		region:          cfg.AwsRegion,
		endpoint:        cfg.AwsEndpoint,
		parameter:       cfg.SsmParameter,
		accessKeyId:     cfg.AwsAccessKeyId,
		secretAccessKey: cfg.AwsSecretAccessKey,
	}, nil
}

func (p *ssmProvider) Source() Source {
	return SourceAwsSsm
}

func (p *ssmProvider) newClient(ctx context.Context) (*ssm.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(p.region),
	}
	if p.accessKeyId != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(p.accessKeyId, p.secretAccessKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize AWS SSM client: %w", err)
	}

	return ssm.NewFromConfig(cfg, func(o *ssm.Options) {
		if p.endpoint != "" {
			o.EndpointResolver = ssm.EndpointResolverFromURL(p.endpoint)
		}
	}), nil
}

func (p *ssmProvider) PrivateKey(ctx context.Context) (*ecdsa.PrivateKey, error) {
	client, err := p.newClient(ctx)
	if err != nil {
		return nil, err
	}

	param, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(p.parameter),
		WithDecryption: aws.Bool(true),
	})
	var notFound *types.ParameterNotFound
	if errors.As(err, &notFound) {
		return nil, fmt.Errorf("%w: %s", ErrSecretNotFound, p.parameter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get parameter %s: %w", p.parameter, err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return nil, fmt.Errorf("%w: %s has no value", ErrSecretNotFound, p.parameter)
	}

	p.logger.Debug().Str("parameter", p.parameter).Msg("Private key loaded from SSM")
	return ParseHexKey(*param.Parameter.Value)
}
