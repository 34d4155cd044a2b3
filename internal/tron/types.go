// internal/tron/types.go
package tron

import "encoding/json"

// triggerRequest is the shared request body of
// wallet/triggersmartcontract and wallet/triggerconstantcontract.
type triggerRequest struct {
	OwnerAddress     string `json:"owner_address"`
	ContractAddress  string `json:"contract_address"`
	FunctionSelector string `json:"function_selector"`
	Parameter        string `json:"parameter,omitempty"`
	FeeLimit         int64  `json:"fee_limit,omitempty"`
	CallValue        int64  `json:"call_value"`
}

// callResult is the nested status object in trigger responses. Message
// is hex-encoded by the node.
type callResult struct {
	Result  bool   `json:"result"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type constantCallResponse struct {
	Result         callResult `json:"result"`
	ConstantResult []string   `json:"constant_result"`
}

type triggerResponse struct {
	Result      callResult     `json:"result"`
	Transaction rawTransaction `json:"transaction"`
}

// rawTransaction is an unsigned or signed transaction as the node
// serializes it. RawData is kept opaque: it is round-tripped to the
// broadcast endpoint untouched, and the signature covers RawDataHex.
type rawTransaction struct {
	Visible    bool            `json:"visible,omitempty"`
	TxID       string          `json:"txID"`
	RawData    json.RawMessage `json:"raw_data,omitempty"`
	RawDataHex string          `json:"raw_data_hex"`
	Signature  []string        `json:"signature,omitempty"`
	Error      string          `json:"Error,omitempty"`
}

type broadcastResponse struct {
	Result  bool   `json:"result"`
	TxID    string `json:"txid"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type validateAddressResponse struct {
	Result  bool   `json:"result"`
	Message string `json:"message"`
}

type contractResponse struct {
	ContractAddress string `json:"contract_address"`
	Name            string `json:"name"`
}

// transactionInfo is the subset of wallet/gettransactioninfobyid used
// for confirmation. An empty ID means the transaction is not yet
// included in a block.
type transactionInfo struct {
	ID      string `json:"id"`
	Receipt struct {
		Result string `json:"result"`
	} `json:"receipt"`
}
