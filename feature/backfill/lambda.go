package backfill

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"thumbnail-manager/feature/thumbnail"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"golang.org/x/sync/singleflight"
)

// lambdaAPI is the subset of the Lambda client used by LambdaInvoker.
type lambdaAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// LambdaInvoker delegates to a Lambda function with a synchronous
// RequestResponse invocation. The AWS client is built on first use and
// shared by every concurrent caller.
type LambdaInvoker struct {
	functionName string
	region       string
	timeout      time.Duration

	mu  sync.RWMutex
	api lambdaAPI
	sf  singleflight.Group
}

// NewLambdaInvoker creates an invoker for cfg.FunctionName.
func NewLambdaInvoker(cfg DelegateConfig) *LambdaInvoker {
	return &LambdaInvoker{
		functionName: cfg.FunctionName,
		region:       cfg.Region,
		timeout:      cfg.timeout(),
	}
}

func (l *LambdaInvoker) String() string {
	return "lambda:" + l.functionName
}

func (l *LambdaInvoker) client(ctx context.Context) (lambdaAPI, error) {
	l.mu.RLock()
	api := l.api
	l.mu.RUnlock()
	if api != nil {
		return api, nil
	}

	v, err, _ := l.sf.Do("client", func() (interface{}, error) {
		l.mu.RLock()
		api := l.api
		l.mu.RUnlock()
		if api != nil {
			return api, nil
		}

		var opts []func(*awsconfig.LoadOptions) error
		if l.region != "" {
			opts = append(opts, awsconfig.WithRegion(l.region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}

		client := lambda.NewFromConfig(cfg)
		l.mu.Lock()
		l.api = client
		l.mu.Unlock()
		return client, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(lambdaAPI), nil
}

// Invoke sends n to the function and decodes its response.
func (l *LambdaInvoker) Invoke(ctx context.Context, n thumbnail.Notification) (thumbnail.EventSummary, error) {
	api, err := l.client(ctx)
	if err != nil {
		return thumbnail.EventSummary{}, err
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return thumbnail.EventSummary{}, fmt.Errorf("failed to encode notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	out, err := api.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(l.functionName),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return thumbnail.EventSummary{}, fmt.Errorf("failed to invoke %s: %w", l.functionName, err)
	}
	if out.FunctionError != nil {
		return thumbnail.EventSummary{}, fmt.Errorf("%s returned %s: %s", l.functionName, aws.ToString(out.FunctionError), out.Payload)
	}
	if out.StatusCode != 200 {
		return thumbnail.EventSummary{}, fmt.Errorf("%s returned status %d", l.functionName, out.StatusCode)
	}

	return decodeResponse(out.Payload)
}
