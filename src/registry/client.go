package registry

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/eth"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/logger"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/monitoring"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/task"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"
)

// Ledger is the read/write surface of the TheaterRegistry contract.
// GetUserApplications is documented to return stale statuses relative to
// GetApplication; callers that need current state must re-fetch by id.
type Ledger interface {
	SubmitApplication(ctx context.Context, ownerIdentity string, ownerWallet common.Address, documentHash string) (*SubmitResult, error)
	GetApplication(ctx context.Context, id string) (*Application, error)
	GetUserApplications(ctx context.Context, ownerIdentity string) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, status uint8, reviewNotes string) (txID string, err error)
	GetTotalApplications(ctx context.Context) (int64, error)
	FindSubmissionTx(ctx context.Context, documentHash string, window uint64) (txID string, err error)
}

// Client talks to the TheaterRegistry contract over JSON-RPC
type Client struct {
	log    *logrus.Entry
	config *config.Registry

	client   *ethclient.Client
	abi      *abi.ABI
	contract common.Address

	// Signing key, nil for a read-only client
	key     *ecdsa.PrivateKey
	from    common.Address
	chainId *big.Int

	monitor monitoring.Monitor
}

func NewClient(cfg *config.Registry) (self *Client, err error) {
	self = new(Client)
	self.log = logger.NewSublogger("registry")
	self.config = cfg
	self.contract = common.HexToAddress(cfg.ContractAddress)
	self.chainId = big.NewInt(cfg.ChainId)

	self.abi, err = TheaterRegistryABI()
	if err != nil {
		self.log.WithError(err).Error("Failed to parse contract ABI")
		return
	}

	self.client, err = eth.GetEthClient(self.log, cfg.RpcUrl)
	if err != nil {
		return
	}

	if cfg.PrivateKey != "" {
		self.key, err = crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			self.log.WithError(err).Error("Failed to parse signing key")
			err = errors.Join(ErrRejectedBySigner, err)
			return
		}
		self.from = crypto.PubkeyToAddress(self.key.PublicKey)
	}

	return
}

func (self *Client) WithMonitor(v monitoring.Monitor) *Client {
	self.monitor = v
	return self
}

// call performs a read-only contract call with retries and unpacks the
// positional outputs
func (self *Client) call(ctx context.Context, method string, args ...interface{}) (values []interface{}, err error) {
	calldata, err := self.abi.Pack(method, args...)
	if err != nil {
		return
	}

	msg := ethereum.CallMsg{
		To:   &self.contract,
		Data: calldata,
	}

	var output []byte
	err = task.NewRetry().
		WithContext(ctx).
		WithMaxElapsedTime(self.config.CallMaxElapsedTime).
		WithMaxInterval(self.config.CallMaxInterval).
		WithOnError(func(err error, isDurationAcceptable bool) error {
			if isRevert(err) || errors.Is(err, context.Canceled) {
				// Reverts are the contract's answer, not a transport problem
				return task.Permanent(err)
			}
			self.log.WithError(err).WithField("method", method).Warn("Contract call failed, retrying...")
			return err
		}).
		Run(func() (err error) {
			output, err = self.client.CallContract(ctx, msg, nil)
			return
		})
	if err != nil {
		if self.monitor != nil {
			self.monitor.GetReport().Registry.Errors.CallFailures.Inc()
		}
		return
	}

	return self.abi.Unpack(method, output)
}

func (self *Client) GetApplication(ctx context.Context, id string) (out *Application, err error) {
	values, err := self.call(ctx, MethodGetApplication, id)
	if err != nil {
		if isRevert(err) {
			err = errors.Join(ErrNotFound, err)
		}
		return
	}

	application, err := decodeApplicationTuple(id, values)
	if err != nil {
		return
	}

	return &application, nil
}

func (self *Client) GetUserApplications(ctx context.Context, ownerIdentity string) (out []Application, err error) {
	values, err := self.call(ctx, MethodGetUserApplications, ownerIdentity)
	if err != nil {
		return
	}
	if len(values) != 1 {
		err = errors.New("unexpected getUserApplications output size")
		return
	}

	raw := *abi.ConvertType(values[0], new([]rawApplication)).(*[]rawApplication)

	out = make([]Application, len(raw))
	for i := range raw {
		out[i] = raw[i].toApplication()
	}
	return
}

func (self *Client) GetTotalApplications(ctx context.Context) (total int64, err error) {
	values, err := self.call(ctx, MethodGetTotalApplications)
	if err != nil {
		return
	}
	if len(values) != 1 {
		err = errors.New("unexpected getTotalApplications output size")
		return
	}

	counter, ok := values[0].(*big.Int)
	if !ok || !counter.IsInt64() {
		err = errors.New("failed to decode total applications counter")
		return
	}
	return counter.Int64(), nil
}

func (self *Client) SubmitApplication(ctx context.Context, ownerIdentity string, ownerWallet common.Address, documentHash string) (result *SubmitResult, err error) {
	receipt, txHash, err := self.write(ctx, MethodSubmitApplication, ownerIdentity, ownerWallet, documentHash)
	if err != nil {
		return
	}

	eventMap, err := eth.GetTransactionLog(receipt, self.abi, EventApplicationSubmitted)
	if err != nil {
		self.log.WithError(err).WithField("tx", txHash).Error("Confirmed submission is missing its creation event")
		return
	}

	applicationId, ok := eventMap["appId"].(string)
	if !ok || applicationId == "" {
		err = errors.New("creation event carries no application id")
		return
	}

	if self.monitor != nil {
		self.monitor.GetReport().Registry.State.SubmissionsConfirmed.Inc()
	}

	return &SubmitResult{
		ApplicationID: applicationId,
		TxID:          txHash,
	}, nil
}

func (self *Client) UpdateApplicationStatus(ctx context.Context, id string, status uint8, reviewNotes string) (txID string, err error) {
	_, txID, err = self.write(ctx, MethodUpdateApplicationStatus, id, status, reviewNotes)
	if err == nil && self.monitor != nil {
		self.monitor.GetReport().Registry.State.StatusUpdatesConfirmed.Inc()
	}
	return
}

// FindSubmissionTx scans creation events over the most recent window of
// blocks and matches on the document hash. A miss is ErrTxNotFound, which
// callers treat as "transaction id unavailable", not a failure.
func (self *Client) FindSubmissionTx(ctx context.Context, documentHash string, window uint64) (txID string, err error) {
	head, err := self.client.BlockNumber(ctx)
	if err != nil {
		return
	}

	var fromBlock uint64
	if head > window {
		fromBlock = head - window
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{self.contract},
		Topics:    [][]common.Hash{{self.abi.Events[EventApplicationSubmitted].ID}},
	}

	logs, err := self.client.FilterLogs(ctx, query)
	if err != nil {
		return
	}

	// Newest match wins
	for i := len(logs) - 1; i >= 0; i-- {
		eventMap, decodeErr := eth.DecodeEventLog(&logs[i], self.abi, EventApplicationSubmitted)
		if decodeErr != nil {
			self.log.WithError(decodeErr).WithField("tx", logs[i].TxHash.Hex()).Warn("Skipping undecodable creation event")
			continue
		}

		if hash, ok := eventMap["ipfsHash"].(string); ok && hash == documentHash {
			return logs[i].TxHash.Hex(), nil
		}
	}

	err = ErrTxNotFound
	return
}

// write signs, sends and waits for the transaction to be mined. Once the
// transaction is broadcast it cannot be retracted; a confirmation timeout only
// stops the wait.
func (self *Client) write(ctx context.Context, method string, args ...interface{}) (receipt *types.Receipt, txHash string, err error) {
	if self.key == nil {
		err = errors.Join(ErrRejectedBySigner, errors.New("client has no signing key"))
		return
	}

	calldata, err := self.abi.Pack(method, args...)
	if err != nil {
		return
	}

	nonce, err := self.client.PendingNonceAt(ctx, self.from)
	if err != nil {
		err = classifyWriteError(err)
		return
	}

	gasPrice, err := self.client.SuggestGasPrice(ctx)
	if err != nil {
		err = classifyWriteError(err)
		return
	}

	gasLimit, err := self.client.EstimateGas(ctx, ethereum.CallMsg{
		From: self.from,
		To:   &self.contract,
		Data: calldata,
	})
	if err != nil {
		err = classifyWriteError(err)
		return
	}

	// Headroom for estimation drift, capped by config
	gasLimit += gasLimit / 5
	if gasLimit > self.config.GasLimitCap {
		err = ErrGasExhausted
		return
	}

	tx := types.NewTransaction(nonce, self.contract, big.NewInt(0), gasLimit, gasPrice, calldata)

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(self.chainId), self.key)
	if err != nil {
		err = errors.Join(ErrRejectedBySigner, err)
		return
	}
	txHash = signed.Hash().Hex()

	err = self.client.SendTransaction(ctx, signed)
	if err != nil {
		err = classifyWriteError(err)
		return
	}

	self.log.WithField("method", method).WithField("tx", txHash).Debug("Transaction sent, waiting for confirmation")

	receipt, err = self.waitMined(ctx, signed.Hash())
	if err != nil {
		if self.monitor != nil {
			if errors.Is(err, ErrConfirmationTimeout) {
				self.monitor.GetReport().Registry.Errors.ConfirmationTimeouts.Inc()
			} else {
				self.monitor.GetReport().Registry.Errors.WriteFailures.Inc()
			}
		}
		return
	}

	if receipt.Status == types.ReceiptStatusFailed {
		err = ErrExecutionReverted
		if self.monitor != nil {
			self.monitor.GetReport().Registry.Errors.WriteFailures.Inc()
		}
		return
	}

	return
}

func (self *Client) waitMined(ctx context.Context, hash common.Hash) (receipt *types.Receipt, err error) {
	ctx, cancel := context.WithTimeout(ctx, self.config.ConfirmationTimeout)
	defer cancel()

	ticker := time.NewTicker(self.config.ConfirmationPollInterval)
	defer ticker.Stop()

	for {
		receipt, err = self.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return
		}
		if !errors.Is(err, ethereum.NotFound) && !isTransient(err) {
			return
		}

		select {
		case <-ctx.Done():
			err = errors.Join(ErrConfirmationTimeout, ctx.Err())
			return
		case <-ticker.C:
			// poll again
		}
	}
}

func isRevert(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "revert")
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection") || strings.Contains(msg, "timeout") || strings.Contains(msg, "eof")
}
