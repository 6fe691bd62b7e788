// Package query implements read-only commands against a remote Nimiq node.
package query

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/nimiq-community/nimiq-go/cli/options"
	"github.com/nimiq-community/nimiq-go/pkg/nimrpc/result"
	"github.com/urfave/cli"
)

// NewCommands returns the 'query' command.
func NewCommands() []cli.Command {
	queryFlags := append([]cli.Flag{options.Verbose}, options.RPC...)
	return []cli.Command{{
		Name:  "query",
		Usage: "query remote node state",
		Subcommands: []cli.Command{
			{
				Name:   "status",
				Usage:  "query node status (consensus, height, peers, sync state)",
				Action: queryStatus,
				Flags:  queryFlags,
			},
			{
				Name:      "block",
				Usage:     "query block by height or hash",
				ArgsUsage: "<height or hash>",
				Action:    queryBlock,
				Flags: append([]cli.Flag{cli.BoolFlag{
					Name:  "full, f",
					Usage: "fetch full transaction objects instead of hashes",
				}}, queryFlags...),
			},
			{
				Name:      "account",
				Usage:     "query account details",
				ArgsUsage: "<address>",
				Action:    queryAccount,
				Flags:     queryFlags,
			},
			{
				Name:      "balance",
				Usage:     "query account balance",
				ArgsUsage: "<address>",
				Action:    queryBalance,
				Flags:     queryFlags,
			},
			{
				Name:      "tx",
				Usage:     "query transaction by hash",
				ArgsUsage: "<hash>",
				Action:    queryTx,
				Flags:     queryFlags,
			},
			{
				Name:      "receipt",
				Usage:     "query transaction receipt by hash",
				ArgsUsage: "<hash>",
				Action:    queryReceipt,
				Flags:     queryFlags,
			},
			{
				Name:   "mempool",
				Usage:  "query mempool content",
				Action: queryMempool,
				Flags:  queryFlags,
			},
		},
	}}
}

func queryStatus(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}

	consensus, err := c.Consensus()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	height, err := c.BlockNumber()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	peers, err := c.PeerCount()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	sync, err := c.Syncing()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "Consensus:\t%s\n", consensus)
	fmt.Fprintf(tw, "Height:\t%d\n", height)
	fmt.Fprintf(tw, "Peers:\t%d\n", peers)
	if sync.Progress != nil {
		fmt.Fprintf(tw, "Syncing:\t%d/%d (started at %d)\n",
			sync.Progress.CurrentBlock, sync.Progress.HighestBlock, sync.Progress.StartingBlock)
	} else {
		fmt.Fprintf(tw, "Syncing:\t%t\n", sync.Syncing)
	}
	return tw.Flush()
}

func queryBlock(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("block height or hash is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}

	var (
		block *result.Block
		err   error
	)
	if height, perr := strconv.ParseUint(args[0], 10, 32); perr == nil {
		block, err = c.GetBlockByNumber(uint32(height), ctx.Bool("full"))
	} else {
		block, err = c.GetBlockByHash(strings.ToLower(args[0]), ctx.Bool("full"))
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "Number:\t%d\n", block.Number)
	fmt.Fprintf(tw, "Hash:\t%s\n", block.Hash)
	fmt.Fprintf(tw, "Parent:\t%s\n", block.ParentHash)
	fmt.Fprintf(tw, "Miner:\t%s\n", block.MinerAddress)
	fmt.Fprintf(tw, "Difficulty:\t%s\n", block.Difficulty)
	fmt.Fprintf(tw, "Timestamp:\t%d\n", block.Timestamp)
	fmt.Fprintf(tw, "Size:\t%d\n", block.Size)
	fmt.Fprintf(tw, "Transactions:\t%d\n", block.Transactions.Len())
	for _, h := range block.Transactions.Hashes {
		fmt.Fprintf(tw, "\t%s\n", h)
	}
	for _, tx := range block.Transactions.Transactions {
		fmt.Fprintf(tw, "\t%s (%s -> %s, %d)\n", tx.Hash, tx.FromAddress, tx.ToAddress, tx.Value)
	}
	return tw.Flush()
}

func queryAccount(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("account address is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}

	acc, err := c.GetAccount(args[0])
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	common := acc.Common()
	fmt.Fprintf(tw, "Address:\t%s\n", common.Address)
	fmt.Fprintf(tw, "Balance:\t%d\n", common.Balance)
	switch {
	case acc.Vesting != nil:
		fmt.Fprintf(tw, "Type:\tvesting\n")
		fmt.Fprintf(tw, "Owner:\t%s\n", acc.Vesting.OwnerAddress)
		fmt.Fprintf(tw, "Step:\t%d every %d blocks from %d\n",
			acc.Vesting.VestingStepAmount, acc.Vesting.VestingStepBlocks, acc.Vesting.VestingStart)
		fmt.Fprintf(tw, "Total:\t%d\n", acc.Vesting.VestingTotalAmount)
	case acc.HTLC != nil:
		fmt.Fprintf(tw, "Type:\thtlc\n")
		fmt.Fprintf(tw, "Sender:\t%s\n", acc.HTLC.SenderAddress)
		fmt.Fprintf(tw, "Recipient:\t%s\n", acc.HTLC.RecipientAddress)
		fmt.Fprintf(tw, "Hash root:\t%s\n", acc.HTLC.HashRoot)
		fmt.Fprintf(tw, "Timeout:\t%d\n", acc.HTLC.Timeout)
	default:
		fmt.Fprintf(tw, "Type:\tbasic\n")
	}
	return tw.Flush()
}

func queryBalance(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("account address is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}

	balance, err := c.GetBalance(args[0])
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, balance)
	return nil
}

func queryTx(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("transaction hash is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}

	tx, err := c.GetTransactionByHash(strings.ToLower(args[0]))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "Hash:\t%s\n", tx.Hash)
	fmt.Fprintf(tw, "Block:\t%d (%s)\n", tx.BlockNumber, tx.BlockHash)
	fmt.Fprintf(tw, "From:\t%s\n", tx.FromAddress)
	fmt.Fprintf(tw, "To:\t%s\n", tx.ToAddress)
	fmt.Fprintf(tw, "Value:\t%d\n", tx.Value)
	fmt.Fprintf(tw, "Fee:\t%d\n", tx.Fee)
	fmt.Fprintf(tw, "Confirmations:\t%d\n", tx.Confirmations)
	if tx.Data != nil {
		fmt.Fprintf(tw, "Data:\t%s\n", *tx.Data)
	}
	return tw.Flush()
}

func queryReceipt(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("transaction hash is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}

	r, err := c.GetTransactionReceipt(strings.ToLower(args[0]))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "Hash:\t%s\n", r.TransactionHash)
	fmt.Fprintf(tw, "Index:\t%d\n", r.TransactionIndex)
	fmt.Fprintf(tw, "Block:\t%d (%s)\n", r.BlockNumber, r.BlockHash)
	fmt.Fprintf(tw, "Confirmations:\t%d\n", r.Confirmations)
	fmt.Fprintf(tw, "Timestamp:\t%d\n", r.Timestamp)
	return tw.Flush()
}

func queryMempool(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}

	hashes, err := c.MempoolContent()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	for _, h := range hashes {
		fmt.Fprintln(ctx.App.Writer, h)
	}
	fmt.Fprintf(ctx.App.Writer, "%d transaction(s) in mempool\n", len(hashes))
	return nil
}
