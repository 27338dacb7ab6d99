package rpc

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/NilFoundation/soldeploy/client"
)

// Messages the common dev nodes (geth, anvil, ganache, hardhat) use to reject a reused nonce.
var nonceConflictMessages = []string{
	"nonce too low",
	"already known",
	"replacement transaction underpriced",
	"invalid nonce",
	"nonce has already been used",
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	var urlErr *url.Error
	var dnsErr *net.DNSError
	return errors.As(err, &opErr) ||
		errors.As(err, &urlErr) ||
		errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET)
}

func isNonceConflict(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, m := range nonceConflictMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// classifyError maps transport and node errors onto the client sentinels.
// The node error stays in the chain.
func classifyError(err error) error {
	switch {
	case err == nil:
		return nil
	case isConnectionError(err):
		return fmt.Errorf("%w: %w", client.ErrConnection, err)
	case isNonceConflict(err):
		return fmt.Errorf("%w: %w", client.ErrNonceConflict, err)
	default:
		return err
	}
}
