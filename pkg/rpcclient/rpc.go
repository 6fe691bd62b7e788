package rpcclient

import (
	"github.com/nimiq-community/nimiq-go/pkg/nimrpc"
	"github.com/nimiq-community/nimiq-go/pkg/nimrpc/result"
)

// Accounts returns all accounts whose keys are held by the node.
func (c *Client) Accounts() ([]result.Account, error) {
	var resp []result.Account
	if err := c.performCall(OpAccounts, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BlockNumber returns the height of the most recent block.
func (c *Client) BlockNumber() (uint32, error) {
	var resp uint32
	if err := c.performCall(OpBlockNumber, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// Consensus returns the node's consensus state. "established" is the value
// for a good state, other values indicate bad state.
func (c *Client) Consensus() (string, error) {
	var resp string
	if err := c.performCall(OpConsensus, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// CreateAccount creates a new account and stores its private key in the
// node's store.
func (c *Client) CreateAccount() (*result.Wallet, error) {
	var resp = new(result.Wallet)
	if err := c.performCall(OpCreateAccount, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateRawTransaction creates and signs a transaction without sending it.
// The result can then be sent via SendRawTransaction without accidentally
// replaying it.
func (c *Client) CreateRawTransaction(tx *nimrpc.OutgoingTransaction) (string, error) {
	var resp string
	if err := c.performCall(OpCreateRawTransaction, []any{tx}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// GetAccount returns details for the account of the given address. The
// node answers with the default empty basic account for non-existing
// accounts.
func (c *Client) GetAccount(address string) (*result.Account, error) {
	var resp = new(result.Account)
	if err := c.performCall(OpGetAccount, []any{address}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBalance returns the balance of the account of the given address in
// the smallest unit.
func (c *Client) GetBalance(address string) (uint64, error) {
	var resp uint64
	if err := c.performCall(OpGetBalance, []any{address}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// GetBlockByHash returns information about a block by hash. With fullTx
// the block carries full transaction objects, otherwise only their hashes.
func (c *Client) GetBlockByHash(hash string, fullTx bool) (*result.Block, error) {
	var resp = new(result.Block)
	if err := c.performCall(OpGetBlockByHash, []any{hash, fullTx}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBlockByNumber returns information about a block by height. With
// fullTx the block carries full transaction objects, otherwise only their
// hashes.
func (c *Client) GetBlockByNumber(height uint32, fullTx bool) (*result.Block, error) {
	var resp = new(result.Block)
	if err := c.performCall(OpGetBlockByNumber, []any{height, fullTx}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBlockTemplate returns a template to build the next block for mining.
// This will consider pool instructions when connected to a pool.
func (c *Client) GetBlockTemplate() (*result.BlockTemplate, error) {
	var resp = new(result.BlockTemplate)
	if err := c.performCall(OpGetBlockTemplate, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBlockTransactionCountByHash returns the number of transactions in the
// block with the given hash.
func (c *Client) GetBlockTransactionCountByHash(hash string) (uint16, error) {
	var resp uint16
	if err := c.performCall(OpGetBlockTransactionCountByHash, []any{hash}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// GetBlockTransactionCountByNumber returns the number of transactions in
// the block at the given height.
func (c *Client) GetBlockTransactionCountByNumber(height uint32) (uint16, error) {
	var resp uint16
	if err := c.performCall(OpGetBlockTransactionCountByNumber, []any{height}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// GetConstant returns the current value of the named node constant.
func (c *Client) GetConstant(name string) (uint64, error) {
	var resp uint64
	if err := c.performCall(OpGetConstant, []any{name}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// SetConstant overrides the named node constant and returns the value now
// in effect.
func (c *Client) SetConstant(name string, value uint64) (uint64, error) {
	var resp uint64
	if err := c.performCall(OpSetConstant, []any{name, value}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// ResetConstant restores the named node constant to its default and
// returns the value now in effect.
func (c *Client) ResetConstant(name string) (uint64, error) {
	var resp uint64
	if err := c.performCall(OpResetConstant, []any{name}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// GetTransactionByBlockHashAndIndex returns information about the
// transaction at the given index of the block with the given hash.
func (c *Client) GetTransactionByBlockHashAndIndex(hash string, index uint16) (*result.Transaction, error) {
	var resp = new(result.Transaction)
	if err := c.performCall(OpGetTransactionByBlockHashAndIndex, []any{hash, index}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTransactionByBlockNumberAndIndex returns information about the
// transaction at the given index of the block at the given height.
func (c *Client) GetTransactionByBlockNumberAndIndex(height uint32, index uint16) (*result.Transaction, error) {
	var resp = new(result.Transaction)
	if err := c.performCall(OpGetTransactionByBlockNumberAndIndex, []any{height, index}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTransactionByHash returns information about the transaction with the
// given hash.
func (c *Client) GetTransactionByHash(hash string) (*result.TransactionDetails, error) {
	var resp = new(result.TransactionDetails)
	if err := c.performCall(OpGetTransactionByHash, []any{hash}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTransactionReceipt returns the receipt of the transaction with the
// given hash. The receipt is not available for pending transactions.
func (c *Client) GetTransactionReceipt(hash string) (*result.TransactionReceipt, error) {
	var resp = new(result.TransactionReceipt)
	if err := c.performCall(OpGetTransactionReceipt, []any{hash}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTransactionsByAddress returns the latest transactions successfully
// performed by or for the given address. The node returns at most limit
// transactions, possibly fewer even when more happened; this information
// can change when blocks are rewound on the local state due to forks.
func (c *Client) GetTransactionsByAddress(address string, limit uint16) ([]result.TransactionDetails, error) {
	var resp []result.TransactionDetails
	if err := c.performCall(OpGetTransactionsByAddress, []any{address, limit}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetWork returns instructions to mine the next block. This will consider
// pool instructions when connected to a pool.
func (c *Client) GetWork() (*result.Work, error) {
	var resp = new(result.Work)
	if err := c.performCall(OpGetWork, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Hashrate returns the number of hashes per second the node is mining
// with.
func (c *Client) Hashrate() (float64, error) {
	var resp float64
	if err := c.performCall(OpHashrate, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// Log sets the log level of the node. With tag "*" the level is set
// globally, otherwise it applies only to the given tag.
func (c *Client) Log(tag string, level string) (bool, error) {
	var resp bool
	if err := c.performCall(OpLog, []any{tag, level}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// MempoolContent returns the hashes of transactions currently in the
// mempool.
func (c *Client) MempoolContent() ([]string, error) {
	var resp []string
	if err := c.performCall(OpMempoolContent, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// MinerAddress returns the address the miner credits rewards to.
func (c *Client) MinerAddress() (string, error) {
	var resp string
	if err := c.performCall(OpMinerAddress, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// MinerThreads returns the number of CPU threads the miner uses.
func (c *Client) MinerThreads() (uint16, error) {
	var resp uint16
	if err := c.performCall(OpMinerThreads, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// SetMinerThreads sets the number of CPU threads the miner uses and
// returns the value now in effect. It shares the wire method with
// MinerThreads, the overloads differ only in parameter count.
func (c *Client) SetMinerThreads(threads uint16) (uint16, error) {
	var resp uint16
	if err := c.performCall(OpSetMinerThreads, []any{threads}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// MinFeePerByte returns the minimal fee per byte the node accepts into its
// mempool.
func (c *Client) MinFeePerByte() (uint32, error) {
	var resp uint32
	if err := c.performCall(OpMinFeePerByte, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// SetMinFeePerByte sets the minimal fee per byte the node accepts into its
// mempool and returns the value now in effect.
func (c *Client) SetMinFeePerByte(fee uint32) (uint32, error) {
	var resp uint32
	if err := c.performCall(OpSetMinFeePerByte, []any{fee}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// Mining reports whether the node is actively mining new blocks.
func (c *Client) Mining() (bool, error) {
	var resp bool
	if err := c.performCall(OpMining, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// PeerCount returns the number of peers currently connected to the node.
func (c *Client) PeerCount() (int, error) {
	var resp int
	if err := c.performCall(OpPeerCount, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// PeerList returns the peers the node knows about.
func (c *Client) PeerList() ([]result.Peer, error) {
	var resp []result.Peer
	if err := c.performCall(OpPeerList, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// PeerState returns the state of the peer with the given address.
func (c *Client) PeerState(address string) (*result.PeerState, error) {
	var resp = new(result.PeerState)
	if err := c.performCall(OpPeerState, []any{address}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SetPeerState applies a state command ("connect", "disconnect", "ban",
// "unban") to the peer with the given address and returns its new state.
// It shares the wire method with PeerState, the overloads differ only in
// parameter count.
func (c *Client) SetPeerState(address string, command string) (*result.PeerState, error) {
	var resp = new(result.PeerState)
	if err := c.performCall(OpSetPeerState, []any{address, command}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// PoolConfirmedBalance returns the miner's confirmed balance at the
// connected pool in the smallest unit.
func (c *Client) PoolConfirmedBalance() (uint64, error) {
	var resp uint64
	if err := c.performCall(OpPoolConfirmedBalance, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// PoolConnectionState returns the state of the pool connection (0
// connected, 1 connecting, 2 closed).
func (c *Client) PoolConnectionState() (uint8, error) {
	var resp uint8
	if err := c.performCall(OpPoolConnectionState, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// SendRawTransaction sends a signed, hex-encoded transaction and returns
// its hash.
func (c *Client) SendRawTransaction(rawTx string) (string, error) {
	var resp string
	if err := c.performCall(OpSendRawTransaction, []any{rawTx}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// SendTransaction creates, signs and sends a transaction in one call and
// returns its hash.
func (c *Client) SendTransaction(tx *nimrpc.OutgoingTransaction) (string, error) {
	var resp string
	if err := c.performCall(OpSendTransaction, []any{tx}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// SubmitBlock submits a hex-encoded full block (header, interlink and
// body; when submitting work from GetWork, the suffix included) to the
// node. A valid block is forwarded to other nodes in the network.
func (c *Client) SubmitBlock(fullBlock string) error {
	return c.performCall(OpSubmitBlock, []any{fullBlock}, nil)
}

// Syncing returns the sync progress when the node is syncing, or the bare
// "not syncing" status otherwise.
func (c *Client) Syncing() (*result.SyncStatus, error) {
	var resp = new(result.SyncStatus)
	if err := c.performCall(OpSyncing, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
