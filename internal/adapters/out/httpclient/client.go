// Package httpclient contains outbound HTTP adapters for the collaborator
// ports. Each client wraps one remote service endpoint and translates
// transport failures into DownstreamUnavailable errors; business outcomes
// (a declined payment, say) travel in the response body and are not errors.
//
// Clients constructed with a call timeout bound every call to it; a zero
// timeout leaves the caller's context in charge. The placement saga uses
// bounded clients, the status update path uses an unbounded notification
// client.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"foodorder/internal/pkg/errs"
)

// DefaultCallTimeout bounds collaborator calls made from the placement saga.
const DefaultCallTimeout = 5 * time.Second

// doJSON performs one JSON request/response cycle against a collaborator.
// out may be nil when the response body is not needed. Transport errors and
// non-2xx statuses become DownstreamUnavailable errors tagged with the
// service name.
func doJSON(
	ctx context.Context,
	client *http.Client,
	serviceName, method, url string,
	in, out any,
) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errs.NewDownstreamUnavailableErrorWithCause(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errs.NewDownstreamUnavailableErrorWithCause(
			serviceName,
			fmt.Errorf("unexpected status %d", resp.StatusCode),
		)
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewDownstreamUnavailableErrorWithCause(serviceName, err)
	}

	return nil
}

// boundContext applies the client's call timeout when one is configured.
func boundContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}
