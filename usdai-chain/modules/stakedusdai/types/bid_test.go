package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

const bidTestChainID = "usdai-test-1"

func testBid(controller sdk.AccAddress) types.Bid {
	return types.Bid{
		AuctionId:        1,
		RedemptionId:     42,
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_500,
		Nonce:            7,
		Timestamp:        1_700_000_000,
		Controller:       controller.String(),
	}
}

func TestBidSignRoundTrip(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	controller := sdk.AccAddress(ethcrypto.PubkeyToAddress(key.PublicKey).Bytes())

	bid := testBid(controller)
	require.NoError(t, bid.Sign(bidTestChainID, key))
	require.Len(t, bid.Signature, types.BidSignatureLength)

	require.NoError(t, bid.VerifySignature(bidTestChainID, controller))
}

func TestBidVerifyAcceptsLegacyRecoveryID(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	controller := sdk.AccAddress(ethcrypto.PubkeyToAddress(key.PublicKey).Bytes())

	bid := testBid(controller)
	require.NoError(t, bid.Sign(bidTestChainID, key))

	// wallets commonly emit v as 27/28 instead of 0/1
	bid.Signature[64] += 27
	require.NoError(t, bid.VerifySignature(bidTestChainID, controller))
}

func TestBidVerifyRejectsWrongSigner(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	other, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	controller := sdk.AccAddress(ethcrypto.PubkeyToAddress(key.PublicKey).Bytes())

	bid := testBid(controller)
	require.NoError(t, bid.Sign(bidTestChainID, other))

	err = bid.VerifySignature(bidTestChainID, controller)
	require.ErrorIs(t, err, types.ErrInvalidSignature)
}

func TestBidVerifyRejectsTamperedPayload(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	controller := sdk.AccAddress(ethcrypto.PubkeyToAddress(key.PublicKey).Bytes())

	bid := testBid(controller)
	require.NoError(t, bid.Sign(bidTestChainID, key))

	bid.BasisPoint = 9_999
	err = bid.VerifySignature(bidTestChainID, controller)
	require.ErrorIs(t, err, types.ErrInvalidSignature)
}

func TestBidSignatureBoundToChainID(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	controller := sdk.AccAddress(ethcrypto.PubkeyToAddress(key.PublicKey).Bytes())

	bid := testBid(controller)
	require.NoError(t, bid.Sign(bidTestChainID, key))

	err = bid.VerifySignature("usdai-other-9", controller)
	require.ErrorIs(t, err, types.ErrInvalidSignature)

	assert.NotEqual(t,
		types.BidDomainSeparator(bidTestChainID),
		types.BidDomainSeparator("usdai-other-9"))
}

func TestBidVerifyRejectsShortSignature(t *testing.T) {
	controller := sdk.AccAddress("controller__________")

	bid := testBid(controller)
	bid.Signature = []byte{0x01, 0x02}

	err := bid.VerifySignature(bidTestChainID, controller)
	require.ErrorIs(t, err, types.ErrInvalidSignature)
}

func TestBidDigestCoversEveryField(t *testing.T) {
	controller := sdk.AccAddress("controller__________")
	base := testBid(controller)

	mutations := []func(*types.Bid){
		func(b *types.Bid) { b.AuctionId++ },
		func(b *types.Bid) { b.RedemptionId++ },
		func(b *types.Bid) { b.RedemptionShares = b.RedemptionShares.AddRaw(1) },
		func(b *types.Bid) { b.BasisPoint++ },
		func(b *types.Bid) { b.Nonce++ },
		func(b *types.Bid) { b.Timestamp++ },
	}

	for _, mutate := range mutations {
		mutated := base
		mutate(&mutated)
		assert.NotEqual(t, base.Digest(bidTestChainID), mutated.Digest(bidTestChainID))
	}
}

func TestBidValidate(t *testing.T) {
	controller := sdk.AccAddress("controller__________")

	require.NoError(t, testBid(controller).Validate())

	zeroID := testBid(controller)
	zeroID.RedemptionId = types.NullRedemptionID
	require.ErrorIs(t, zeroID.Validate(), types.ErrInvalidAmount)

	zeroShares := testBid(controller)
	zeroShares.RedemptionShares = math.ZeroInt()
	require.ErrorIs(t, zeroShares.Validate(), types.ErrInvalidAmount)

	overCap := testBid(controller)
	overCap.BasisPoint = types.MaxBasisPoints + 1
	require.ErrorIs(t, overCap.Validate(), types.ErrInvalidAmount)

	badController := testBid(controller)
	badController.Controller = "not-an-address"
	require.ErrorIs(t, badController.Validate(), types.ErrInvalidAddress)
}
