// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	solanago "github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/unifiedusdc/gateway-client/cache"
	"github.com/unifiedusdc/gateway-client/chains/evm"
	"github.com/unifiedusdc/gateway-client/chains/evm/calls/contracts"
	"github.com/unifiedusdc/gateway-client/chains/evm/signature"
	"github.com/unifiedusdc/gateway-client/chains/solana"
	"github.com/unifiedusdc/gateway-client/config"
	"github.com/unifiedusdc/gateway-client/config/chain"
	"github.com/unifiedusdc/gateway-client/metrics"
	"github.com/unifiedusdc/gateway-client/protocol/gateway"
	"github.com/unifiedusdc/gateway-client/transfer"
)

var Version string

// RunTransfer executes one end-to-end transfer with the parameters bound to
// viper flags.
func RunTransfer() error {
	ctx := context.Background()

	configuration, rawChains, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := buildRegistry(configuration)
	if err != nil {
		return err
	}

	source := viper.GetUint32(config.SourceFlagName)
	destination := viper.GetUint32(config.DestinationFlagName)
	amount := viper.GetString(config.AmountFlagName)
	recipient := viper.GetString(config.RecipientFlagName)

	src, err := registry.Get(source)
	if err != nil {
		return err
	}
	dst, err := registry.Get(destination)
	if err != nil {
		return err
	}
	if src.Family != chain.FamilyEVM {
		return fmt.Errorf("deposits are only supported from EVM chains, got '%s'", src.Family)
	}

	signer, err := signature.NewLocalSigner(strings.TrimPrefix(viper.GetString(config.KeyFlagName), "0x"))
	if err != nil {
		return err
	}

	client := gateway.NewClient(configuration.GatewayConfig.URL)
	builder := gateway.NewIntentBuilder(registry, client)
	coordinator := transfer.NewDepositCoordinator(client, 0, 0)
	attestations := cache.NewAttestationCache()
	defer attestations.Stop()

	mp, err := metrics.InitMetricProvider(ctx, configuration.GatewayConfig.OpenTelemetryCollectorURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	transferMetrics, err := metrics.NewTransferMetrics(
		mp.Meter("gateway-client"),
		configuration.GatewayConfig.Env,
	)
	if err != nil {
		return err
	}

	depositor, err := buildEVMDepositor(ctx, src, signer)
	if err != nil {
		return err
	}

	executors := make(map[chain.Family]transfer.MintExecutor)
	switch dst.Family {
	case chain.FamilyEVM:
		executor, err := buildEVMMintExecutor(ctx, dst, signer)
		if err != nil {
			return err
		}
		executors[chain.FamilyEVM] = executor
	case chain.FamilySolana:
		executor, err := buildSolanaMintExecutor(dst, rawChains[dst.DomainID], recipient)
		if err != nil {
			return err
		}
		executors[chain.FamilySolana] = executor
	}

	orchestrator := transfer.NewOrchestrator(
		registry,
		client,
		builder,
		signer,
		coordinator,
		executors,
		attestations,
		transferMetrics,
	)

	log.Info().Msgf("Starting transfer of %s USDC from domain %d to domain %d. Version: v%s", amount, source, destination, Version)
	outcome, err := orchestrator.Transfer(ctx, transfer.Request{
		Source:      source,
		Destination: destination,
		Amount:      amount,
		Depositor:   depositor,
		Recipient:   recipient,
	})
	if err != nil {
		return err
	}

	switch outcome.State {
	case transfer.Minted:
		log.Info().Msgf("Transfer %s minted on domain %d", outcome.TransferID, destination)
	case transfer.MintFailedAwaitingRelayer:
		log.Warn().Msgf("Transfer %s attested, mint deferred to the service relayer", outcome.TransferID)
	case transfer.DepositPending:
		log.Warn().Msgf("Deposit %s submitted but not yet recognized, retry once finalized", outcome.Deposit.TxHash)
	}
	return nil
}

// RunBalances prints the escrowed Gateway balances of a depositor across
// every configured domain.
func RunBalances() error {
	ctx := context.Background()

	configuration, _, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := buildRegistry(configuration)
	if err != nil {
		return err
	}

	depositor := viper.GetString(config.DepositorFlagName)
	client := gateway.NewClient(configuration.GatewayConfig.URL)

	sources := make([]gateway.DepositSource, 0)
	for _, domain := range registry.Domains() {
		c, err := registry.Get(domain)
		if err != nil {
			return err
		}

		canonical, err := gateway.ToCanonical(depositor, c.Family)
		if err != nil {
			// the depositor address only parses on its own family
			continue
		}
		sources = append(sources, gateway.DepositSource{Domain: domain, Depositor: canonical})
	}

	balances, err := client.Balances(ctx, transfer.USDC_TOKEN, sources)
	if err != nil {
		return err
	}

	for _, b := range balances {
		log.Info().Msgf("Domain %d: %s base units", b.Domain, b.Balance)
	}
	return nil
}

func loadConfig() (*config.Config, map[uint32]map[string]interface{}, error) {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)
	configURL := viper.GetString(config.ConfigURLFlagName)

	var configuration *config.Config
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL)
		if err != nil {
			return nil, nil, err
		}
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
	}
	if err != nil {
		return nil, nil, err
	}

	configureLogger(configuration.GatewayConfig.LogLevel)
	log.Info().Msg("Successfully loaded configuration")

	rawChains := make(map[uint32]map[string]interface{})
	for _, rawChain := range configuration.ChainConfigs {
		c, err := chain.NewChainConfig(rawChain)
		if err != nil {
			return nil, nil, err
		}
		rawChains[c.DomainID] = rawChain
	}

	return configuration, rawChains, nil
}

func buildRegistry(configuration *config.Config) (*config.Registry, error) {
	chains := make([]*chain.ChainConfig, 0, len(configuration.ChainConfigs))
	for _, rawChain := range configuration.ChainConfigs {
		c, err := chain.NewChainConfig(rawChain)
		if err != nil {
			return nil, err
		}

		log.Info().Uint32("domain", c.DomainID).Msgf("Registering %s chain %s", c.Family, c.Name)
		chains = append(chains, c)
	}

	return config.NewRegistry(chains), nil
}

func buildEVMDepositor(ctx context.Context, src *chain.ChainConfig, signer *signature.LocalSigner) (*evm.Depositor, error) {
	client, err := ethclient.Dial(src.Endpoint)
	if err != nil {
		return nil, err
	}

	transactor, err := evm.NewTransactor(ctx, client, signer.PrivateKey())
	if err != nil {
		return nil, err
	}

	tokenAddr := common.HexToAddress(src.Token)
	token, err := contracts.NewERC20Contract(client, transactor, tokenAddr)
	if err != nil {
		return nil, err
	}
	wallet, err := contracts.NewGatewayWalletContract(transactor, common.HexToAddress(src.GatewayWallet))
	if err != nil {
		return nil, err
	}

	return evm.NewDepositor(src.DomainID, transactor.From(), token, wallet, tokenAddr), nil
}

func buildEVMMintExecutor(ctx context.Context, dst *chain.ChainConfig, signer *signature.LocalSigner) (*evm.MintExecutor, error) {
	client, err := ethclient.Dial(dst.Endpoint)
	if err != nil {
		return nil, err
	}

	transactor, err := evm.NewTransactor(ctx, client, signer.PrivateKey())
	if err != nil {
		return nil, err
	}

	minter, err := contracts.NewGatewayMinterContract(transactor, common.HexToAddress(dst.GatewayMinter))
	if err != nil {
		return nil, err
	}

	return evm.NewMintExecutor(dst.DomainID, minter), nil
}

func buildSolanaMintExecutor(dst *chain.ChainConfig, rawChain map[string]interface{}, recipient string) (*solana.MintExecutor, error) {
	payer, err := solanago.PrivateKeyFromBase58(viper.GetString(config.SolanaKeyFlagName))
	if err != nil {
		return nil, fmt.Errorf("invalid solana key: %w", err)
	}

	program, err := solanago.PublicKeyFromBase58(dst.GatewayMinter)
	if err != nil {
		return nil, err
	}
	mint, err := solanago.PublicKeyFromBase58(dst.Token)
	if err != nil {
		return nil, err
	}
	recipientKey, err := solanago.PublicKeyFromBase58(recipient)
	if err != nil {
		return nil, err
	}

	accounts, err := solana.NewMinterAccountsConfig(rawChain)
	if err != nil {
		return nil, err
	}

	return solana.NewMintExecutor(
		dst.DomainID,
		solanarpc.New(dst.Endpoint),
		payer,
		program,
		mint,
		recipientKey,
		accounts,
	), nil
}

func configureLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}
