package testaide

import (
	"context"
	"net"
	"net/url"
	"time"
)

// WaitForEndpoint blocks until a TCP connection to the endpoint host succeeds.
func WaitForEndpoint(ctx context.Context, endpoint string) error {
	host := endpoint
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		host = u.Host
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			conn, err := net.Dial("tcp", host)
			if err == nil {
				_ = conn.Close()
				return nil
			}
			time.Sleep(100 * time.Millisecond)
		}
	}
}
