/*
Package deploy provides deployment procedure of the CipherScore ScoreOption
contract. The procedure is idempotent: it detects an already deployed contract
by its predictable address and does nothing in this case, so it is safe to
re-run after partial failures.
*/
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services of a particular Neo blockchain network required
// for the contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown
	// contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups parameters of the ScoreOption contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It is the deployer, so the resulting contract address depends on it.
	LocalAccount *wallet.Account

	// Compiled contract artifacts.
	NEF      nef.File
	Manifest manifest.Manifest

	// Contract owner. If zero, the local account is used.
	Owner util.Uint160

	// Address of the FHE co-processor / decryption oracle contract the
	// deployed contract delegates ciphertext operations to.
	DecryptionOracle util.Uint160

	// Initial per-actor cooldown for submissions and decryption requests.
	CooldownSeconds int64
}

// Deploy deploys the ScoreOption contract to the given blockchain and returns
// its address. If the contract is already on the chain, Deploy logs this and
// returns the address without sending any transaction.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	switch {
	case prm.Logger == nil:
		return util.Uint160{}, errors.New("missing logger")
	case prm.Blockchain == nil:
		return util.Uint160{}, errors.New("missing blockchain client")
	case prm.LocalAccount == nil:
		return util.Uint160{}, errors.New("missing local account")
	case prm.DecryptionOracle.Equals(util.Uint160{}):
		return util.Uint160{}, errors.New("missing decryption oracle address")
	case prm.CooldownSeconds < 0:
		return util.Uint160{}, errors.New("negative cooldown")
	}

	owner := prm.Owner
	if owner.Equals(util.Uint160{}) {
		owner = prm.LocalAccount.ScriptHash()
	}

	addr := state.CreateContractHash(prm.LocalAccount.ScriptHash(), prm.NEF.Checksum, prm.Manifest.Name)

	alreadyDeployed, err := isDeployed(prm.Blockchain, addr)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("check contract state on the chain: %w", err)
	}
	if alreadyDeployed {
		prm.Logger.Info("contract is already on the chain, skip deployment",
			zap.Stringer("address", addr))
		return addr, nil
	}

	if err := ctx.Err(); err != nil {
		return util.Uint160{}, fmt.Errorf("deployment interrupted: %w", err)
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender: %w", err)
	}

	prm.Logger.Info("deploying contract...",
		zap.Stringer("address", addr),
		zap.Stringer("owner", owner),
		zap.Stringer("oracle", prm.DecryptionOracle),
		zap.Int64("cooldown_seconds", prm.CooldownSeconds))

	txHash, vub, err := management.New(act).Deploy(&prm.NEF, &prm.Manifest,
		[]any{owner, prm.DecryptionOracle, prm.CooldownSeconds})
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send deployment transaction: %w", err)
	}

	aer, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deployment transaction %s: %w", txHash.StringLE(), err)
	}
	if aer.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deployment transaction %s failed: %s", txHash.StringLE(), aer.FaultException)
	}

	prm.Logger.Info("contract successfully deployed", zap.Stringer("address", addr))

	return addr, nil
}

func isDeployed(b Blockchain, addr util.Uint160) (bool, error) {
	_, err := b.GetContractStateByHash(addr)
	if err == nil {
		return true, nil
	}
	if strings.Contains(err.Error(), "Unknown contract") {
		return false, nil
	}
	return false, err
}
