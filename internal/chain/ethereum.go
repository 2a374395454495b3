package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/certichain/certichain/internal/pkg/apperrors"
	"github.com/certichain/certichain/internal/pkg/logger"
)

// registryABI covers the two registry methods this service calls.
const registryABI = `[
	{
		"inputs": [
			{"internalType": "string", "name": "certHash", "type": "string"},
			{"internalType": "string", "name": "studentId", "type": "string"}
		],
		"name": "issueCertificate",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "string", "name": "certHash", "type": "string"}
		],
		"name": "getCertificateDetails",
		"outputs": [
			{"internalType": "address", "name": "issuer", "type": "address"},
			{"internalType": "uint256", "name": "timestamp", "type": "uint256"},
			{"internalType": "bool", "name": "isValid", "type": "bool"},
			{"internalType": "string", "name": "studentId", "type": "string"}
		],
		"stateMutability": "view",
		"type": "function"
	}
]`

// EthereumRegistry talks to the registry contract over JSON-RPC.
type EthereumRegistry struct {
	client         *ethclient.Client
	contract       common.Address
	parsedABI      abi.ABI
	privateKey     *ecdsa.PrivateKey
	issuer         common.Address
	chainID        *big.Int
	confirmTimeout time.Duration
}

// EthereumConfig carries the connection settings for the registry contract.
type EthereumConfig struct {
	RPCURL          string
	ContractAddress string
	PrivateKey      string
	ChainID         int64
	ConfirmTimeout  time.Duration
}

// NewEthereumRegistry dials the node and prepares the issuer credential.
func NewEthereumRegistry(cfg EthereumConfig) (*EthereumRegistry, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain node at %s: %w", cfg.RPCURL, err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry ABI: %w", err)
	}

	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid registry contract address: %s", cfg.ContractAddress)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse issuer private key: %w", err)
	}

	issuer := crypto.PubkeyToAddress(privateKey.PublicKey)
	logger.Info().Str("issuer", issuer.Hex()).Str("contract", cfg.ContractAddress).Msg("Registry contract client initialized")

	return &EthereumRegistry{
		client:         client,
		contract:       common.HexToAddress(cfg.ContractAddress),
		parsedABI:      parsedABI,
		privateKey:     privateKey,
		issuer:         issuer,
		chainID:        big.NewInt(cfg.ChainID),
		confirmTimeout: cfg.ConfirmTimeout,
	}, nil
}

// IssueCertificate packs, signs and broadcasts the registration call, then
// waits for it to be mined.
func (r *EthereumRegistry) IssueCertificate(ctx context.Context, certHash, studentID string) (string, error) {
	data, err := r.parsedABI.Pack("issueCertificate", certHash, studentID)
	if err != nil {
		return "", fmt.Errorf("failed to encode issueCertificate call: %w", err)
	}

	gasLimit, err := r.client.EstimateGas(ctx, ethereum.CallMsg{
		From: r.issuer,
		To:   &r.contract,
		Data: data,
	})
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrChainUnavailable,
			fmt.Sprintf("gas estimation failed: %v", err))
	}

	gasPrice, err := r.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrChainUnavailable,
			fmt.Sprintf("gas price suggestion failed: %v", err))
	}

	nonce, err := r.client.PendingNonceAt(ctx, r.issuer)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrChainUnavailable,
			fmt.Sprintf("failed to fetch issuer nonce: %v", err))
	}

	tx := types.NewTransaction(nonce, r.contract, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(r.chainID), r.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := r.client.SendTransaction(ctx, signedTx); err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrChainUnavailable,
			fmt.Sprintf("failed to broadcast transaction: %v", err))
	}

	txHash := signedTx.Hash().Hex()
	logger.Info().Str("txHash", txHash).Str("studentId", studentID).Msg("Registry transaction broadcast, awaiting confirmation")

	waitCtx := ctx
	if r.confirmTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, r.confirmTimeout)
		defer cancel()
	}

	receipt, err := bind.WaitMined(waitCtx, r.client, signedTx)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrChainUnavailable,
			fmt.Sprintf("failed waiting for confirmation of transaction %s: %v", txHash, err))
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", apperrors.NewCustomError(apperrors.ErrChainRejected,
			fmt.Sprintf("registry transaction %s reverted", txHash))
	}

	logger.Info().Str("txHash", txHash).Uint64("block", receipt.BlockNumber.Uint64()).Msg("Registry transaction confirmed")
	return txHash, nil
}

// GetCertificateDetails performs a read-only call against the registry.
func (r *EthereumRegistry) GetCertificateDetails(ctx context.Context, certHash string) (*CertificateDetails, error) {
	data, err := r.parsedABI.Pack("getCertificateDetails", certHash)
	if err != nil {
		return nil, fmt.Errorf("failed to encode getCertificateDetails call: %w", err)
	}

	out, err := r.client.CallContract(ctx, ethereum.CallMsg{
		To:   &r.contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrChainUnavailable,
			fmt.Sprintf("registry call failed: %v", err))
	}

	values, err := r.parsedABI.Unpack("getCertificateDetails", out)
	if err != nil {
		return nil, fmt.Errorf("failed to decode registry response: %w", err)
	}
	if len(values) != 4 {
		return nil, fmt.Errorf("unexpected registry response arity: %d", len(values))
	}

	issuer, ok := values[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected issuer type in registry response")
	}
	timestamp, ok := values[1].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected timestamp type in registry response")
	}
	isValid, ok := values[2].(bool)
	if !ok {
		return nil, fmt.Errorf("unexpected validity type in registry response")
	}
	studentID, ok := values[3].(string)
	if !ok {
		return nil, fmt.Errorf("unexpected student id type in registry response")
	}

	return &CertificateDetails{
		Issuer:    issuer.Hex(),
		Timestamp: timestamp.Uint64(),
		IsValid:   isValid,
		StudentID: studentID,
	}, nil
}
