package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cipherscore/cipherscore-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the deployer NEP-6 wallet")
	walletPassword := flag.String("password", "", "Password of the deployer wallet account")
	nefPath := flag.String("nef", "", "Path to the compiled contract NEF file")
	manifestPath := flag.String("manifest", "", "Path to the contract manifest.json")
	oracleHash := flag.String("oracle", "", "Address (LE script hash) of the FHE co-processor contract")
	ownerHash := flag.String("owner", "", "Address (LE script hash) of the contract owner, deployer by default")
	cooldown := flag.Int64("cooldown", 0, "Initial per-actor cooldown in seconds")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing wallet path")
	case *nefPath == "":
		log.Fatal("missing NEF path")
	case *manifestPath == "":
		log.Fatal("missing manifest path")
	case *oracleHash == "":
		log.Fatal("missing FHE co-processor address")
	}

	addr, err := _deploy(*neoRPCEndpoint, *walletPath, *walletPassword,
		*nefPath, *manifestPath, *oracleHash, *ownerHash, *cooldown)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("ScoreOption contract is on the chain at %s\n", addr.StringLE())
}

func _deploy(endpoint, walletPath, password, nefPath, manifestPath, oracleHash, ownerHash string, cooldown int64) (util.Uint160, error) {
	ctx := context.Background()

	prm := deploy.Prm{CooldownSeconds: cooldown}

	var err error
	prm.Logger, err = zap.NewProduction()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init logger: %w", err)
	}

	prm.NEF, prm.Manifest, err = readContractArtifacts(nefPath, manifestPath)
	if err != nil {
		return util.Uint160{}, err
	}

	prm.DecryptionOracle, err = parseAddress(oracleHash)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("parse FHE co-processor address: %w", err)
	}
	if ownerHash != "" {
		prm.Owner, err = parseAddress(ownerHash)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("parse owner address: %w", err)
		}
	}

	prm.LocalAccount, err = unlockWallet(walletPath, password)
	if err != nil {
		return util.Uint160{}, err
	}

	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{})
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init Neo RPC client: %w", err)
	}
	defer c.Close()

	prm.Blockchain = c

	return deploy.Deploy(ctx, prm)
}

func readContractArtifacts(nefPath, manifestPath string) (nef.File, manifest.Manifest, error) {
	var m manifest.Manifest

	nefBytes, err := os.ReadFile(nefPath)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("read NEF file: %w", err)
	}
	nefFile, err := nef.FileFromBytes(nefBytes)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("parse NEF file: %w", err)
	}

	manifestBytes, err := os.ReadFile(manifestPath)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(manifestBytes, &m); err != nil {
		return nef.File{}, m, fmt.Errorf("parse manifest: %w", err)
	}

	return nefFile, m, nil
}

func unlockWallet(walletPath, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil && len(w.Accounts) > 0 {
		acc = w.Accounts[0]
	}
	if acc == nil {
		return nil, fmt.Errorf("no accounts in wallet '%s'", walletPath)
	}

	if err := acc.Decrypt(password, w.Scrypt); err != nil {
		return nil, fmt.Errorf("unlock wallet account: %w", err)
	}

	return acc, nil
}

func parseAddress(s string) (util.Uint160, error) {
	return util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
}
