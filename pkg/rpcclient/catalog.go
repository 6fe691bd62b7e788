package rpcclient

// Op identifies one typed client operation. Every operation maps to
// exactly one catalog entry; a few operations share a wire method and
// differ only in parameter count (the read and read-with-update overloads
// of minerThreads, minFeePerByte and peerState).
type Op int

// The full set of supported operations.
const (
	OpAccounts Op = iota
	OpBlockNumber
	OpConsensus
	OpCreateAccount
	OpCreateRawTransaction
	OpGetAccount
	OpGetBalance
	OpGetBlockByHash
	OpGetBlockByNumber
	OpGetBlockTemplate
	OpGetBlockTransactionCountByHash
	OpGetBlockTransactionCountByNumber
	OpGetConstant
	OpGetTransactionByBlockHashAndIndex
	OpGetTransactionByBlockNumberAndIndex
	OpGetTransactionByHash
	OpGetTransactionReceipt
	OpGetTransactionsByAddress
	OpGetWork
	OpHashrate
	OpLog
	OpMempoolContent
	OpMinerAddress
	OpMinerThreads
	OpMinFeePerByte
	OpMining
	OpPeerCount
	OpPeerList
	OpPeerState
	OpPoolConfirmedBalance
	OpPoolConnectionState
	OpResetConstant
	OpSendRawTransaction
	OpSendTransaction
	OpSetConstant
	OpSetMinerThreads
	OpSetMinFeePerByte
	OpSetPeerState
	OpSubmitBlock
	OpSyncing
)

// paramType is the semantic type of one positional wire parameter.
// Numeric types carry their width, the encoder rejects values that don't
// fit instead of truncating them.
type paramType int

const (
	paramString paramType = iota
	paramBool
	paramUint16
	paramUint32
	paramUint64
	paramTransaction
)

// methodSpec is one catalog entry: the exact wire method name and the
// ordered list of parameter types the method expects.
type methodSpec struct {
	method string
	params []paramType
}

// catalog is the single source of truth for the wire surface. It is built
// once and read-only afterwards; client methods never spell wire method
// names inline.
var catalog = map[Op]methodSpec{
	OpAccounts:                            {method: "accounts"},
	OpBlockNumber:                         {method: "blockNumber"},
	OpConsensus:                           {method: "consensus"},
	OpCreateAccount:                       {method: "createAccount"},
	OpCreateRawTransaction:                {method: "createRawTransaction", params: []paramType{paramTransaction}},
	OpGetAccount:                          {method: "getAccount", params: []paramType{paramString}},
	OpGetBalance:                          {method: "getBalance", params: []paramType{paramString}},
	OpGetBlockByHash:                      {method: "getBlockByHash", params: []paramType{paramString, paramBool}},
	OpGetBlockByNumber:                    {method: "getBlockByNumber", params: []paramType{paramUint32, paramBool}},
	OpGetBlockTemplate:                    {method: "getBlockTemplate"},
	OpGetBlockTransactionCountByHash:      {method: "getBlockTransactionCountByHash", params: []paramType{paramString}},
	OpGetBlockTransactionCountByNumber:    {method: "getBlockTransactionCountByNumber", params: []paramType{paramUint32}},
	OpGetConstant:                         {method: "getConstant", params: []paramType{paramString}},
	OpGetTransactionByBlockHashAndIndex:   {method: "getTransactionByBlockHashAndIndex", params: []paramType{paramString, paramUint16}},
	OpGetTransactionByBlockNumberAndIndex: {method: "getTransactionByBlockNumberAndIndex", params: []paramType{paramUint32, paramUint16}},
	OpGetTransactionByHash:                {method: "getTransactionByHash", params: []paramType{paramString}},
	OpGetTransactionReceipt:               {method: "getTransactionReceipt", params: []paramType{paramString}},
	OpGetTransactionsByAddress:            {method: "getTransactionsByAddress", params: []paramType{paramString, paramUint16}},
	OpGetWork:                             {method: "getWork"},
	OpHashrate:                            {method: "hashrate"},
	OpLog:                                 {method: "log", params: []paramType{paramString, paramString}},
	OpMempoolContent:                      {method: "mempoolContent"},
	OpMinerAddress:                        {method: "minerAddress"},
	OpMinerThreads:                        {method: "minerThreads"},
	OpMinFeePerByte:                       {method: "minFeePerByte"},
	OpMining:                              {method: "mining"},
	OpPeerCount:                           {method: "peerCount"},
	OpPeerList:                            {method: "peerList"},
	OpPeerState:                           {method: "peerState", params: []paramType{paramString}},
	OpPoolConfirmedBalance:                {method: "poolConfirmedBalance"},
	OpPoolConnectionState:                 {method: "poolConnectionState"},
	OpResetConstant:                       {method: "resetConstant", params: []paramType{paramString}},
	OpSendRawTransaction:                  {method: "sendRawTransaction", params: []paramType{paramString}},
	OpSendTransaction:                     {method: "sendTransaction", params: []paramType{paramTransaction}},
	OpSetConstant:                         {method: "setConstant", params: []paramType{paramString, paramUint64}},
	OpSetMinerThreads:                     {method: "minerThreads", params: []paramType{paramUint16}},
	OpSetMinFeePerByte:                    {method: "minFeePerByte", params: []paramType{paramUint32}},
	OpSetPeerState:                        {method: "peerState", params: []paramType{paramString, paramString}},
	OpSubmitBlock:                         {method: "submitBlock", params: []paramType{paramString}},
	OpSyncing:                             {method: "syncing"},
}

// Method returns the wire method name of the operation or an empty string
// for an unknown one.
func (op Op) Method() string {
	return catalog[op].method
}

// Arity returns the number of wire parameters the operation expects.
func (op Op) Arity() int {
	return len(catalog[op].params)
}

// Operations returns every operation in the catalog. The order is
// unspecified.
func Operations() []Op {
	ops := make([]Op, 0, len(catalog))
	for op := range catalog {
		ops = append(ops, op)
	}
	return ops
}
