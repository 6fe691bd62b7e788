/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"context"
	"errors"
	"time"

	"github.com/nimiq-community/nimiq-go/pkg/config"
	"github.com/nimiq-community/nimiq-go/pkg/rpcclient"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultTimeout is the default timeout used for RPC requests.
const DefaultTimeout = 10 * time.Second

// RPCEndpointFlag is a long flag name for an RPC endpoint. It can be used to
// check for flag presence in the context.
const RPCEndpointFlag = "rpc-endpoint"

// RPC is a set of flags used for RPC connections (endpoint, credentials and
// timeout).
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:  RPCEndpointFlag + ", r",
		Usage: "RPC node address",
	},
	cli.StringFlag{
		Name:  "user, u",
		Usage: "username for HTTP Basic auth (if the node requires it)",
	},
	cli.StringFlag{
		Name:  "pass, p",
		Usage: "password for HTTP Basic auth",
	},
	cli.StringFlag{
		Name:  "config-file, c",
		Usage: "path to a YAML config file with the node connection settings (flags take precedence)",
	},
	cli.DurationFlag{
		Name:  "timeout, s",
		Value: DefaultTimeout,
		Usage: "Timeout for the operation",
	},
}

// Verbose is a flag enabling debug logging of performed requests.
var Verbose = cli.BoolFlag{
	Name:  "verbose, v",
	Usage: "enable debug logging (per-request records)",
}

var errNoEndpoint = errors.New("no RPC endpoint specified, use option '--" + RPCEndpointFlag + "' or '-r', or a config file")

// GetTimeoutContext returns a context constructed from the '--timeout' flag.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	dur := ctx.Duration("timeout")
	if dur <= 0 {
		dur = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), dur)
}

// GetRPCClient builds a client from the RPC flags (and the config file when
// one is given). Flags take precedence over config file values.
func GetRPCClient(gctx context.Context, ctx *cli.Context) (*rpcclient.Client, cli.ExitCoder) {
	var cfg config.Config
	if path := ctx.String("config-file"); path != "" {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, cli.NewExitError(err, 1)
		}
	}
	if endpoint := ctx.String(RPCEndpointFlag); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if user := ctx.String("user"); user != "" {
		cfg.Username = user
		cfg.Password = ctx.String("pass")
	}
	if cfg.Endpoint == "" {
		return nil, cli.NewExitError(errNoEndpoint, 1)
	}

	opts := cfg.Options()
	logger, err := Logger(ctx)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	opts.Logger = logger

	c, err := rpcclient.New(gctx, cfg.Endpoint, opts)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}

// Logger returns a console logger honoring the '--verbose' flag.
func Logger(ctx *cli.Context) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if ctx.Bool("verbose") || ctx.GlobalBool("verbose") {
		level = zapcore.DebugLevel
	}
	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	return cc.Build()
}
