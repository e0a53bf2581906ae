package router

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-routeros/routeros/v3"

	"ispdesk/internal/domain/gate"
)

const defaultDialTimeout = 10 * time.Second

// apiSession is the part of the RouterOS API client used here.
type apiSession interface {
	Run(sentence ...string) (*routeros.Reply, error)
}

type dialFunc func(ctx context.Context, address, username, password string) (apiSession, func(), error)

func dialRouterOS(ctx context.Context, address, username, password string) (apiSession, func(), error) {
	timeout := defaultDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, nil, context.DeadlineExceeded
		}
	}

	client, err := routeros.DialTimeout(address, username, password, timeout)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { client.Close() }, nil
}

// RouterOSConnector logs in through the RouterOS API and reads the device
// identity and board to confirm the session.
type RouterOSConnector struct {
	dial dialFunc
}

func NewRouterOSConnector() *RouterOSConnector {
	return &RouterOSConnector{dial: dialRouterOS}
}

func (c *RouterOSConnector) Connect(ctx context.Context, method gate.AuthMethod, creds gate.Credentials) (*gate.DeviceSession, error) {
	api, closeFn, err := c.dial(ctx, creds.Address(), creds.Username, creds.Password)
	if err != nil {
		return nil, classifyAPIError(ctx, err)
	}
	defer closeFn()

	session := &gate.DeviceSession{}

	identity, err := firstRow(api, "/system/identity/print")
	if err != nil {
		return nil, classifyAPIError(ctx, err)
	}
	session.Identity = identity["name"]

	resource, err := firstRow(api, "/system/resource/print")
	if err != nil {
		return nil, classifyAPIError(ctx, err)
	}
	session.Board = resource["board-name"]
	session.Version = resource["version"]

	return session, nil
}

// firstRow runs a print command and returns the attributes of its first reply.
func firstRow(api apiSession, command string) (map[string]string, error) {
	reply, err := api.Run(command)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", command, err)
	}
	if reply == nil || len(reply.Re) == 0 {
		return nil, fmt.Errorf("%s: empty reply", command)
	}
	return reply.Re[0].Map, nil
}

// classifyAPIError treats a trap from the device (including a rejected
// login) as an auth failure and everything else like a dial failure.
func classifyAPIError(ctx context.Context, err error) error {
	var deviceErr *routeros.DeviceError
	if errors.As(err, &deviceErr) {
		return gate.NewAuthError(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return gate.NewTimeoutError(err)
	}
	return classifyDialError(ctx, err)
}
