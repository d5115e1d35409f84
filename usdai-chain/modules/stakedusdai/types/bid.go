package types

import (
	"crypto/ecdsa"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// BidSignatureLength is the expected length of a bid signature (r || s || v).
const BidSignatureLength = 65

var (
	bidDomainPrefix = []byte("StakedUSDai QEV Bid")

	bidTypeHash = crypto.Keccak256Hash([]byte(
		"Bid(uint64 auctionId,uint64 redemptionId,uint256 redemptionShares,uint32 basisPoint,uint64 nonce,int64 timestamp)",
	))

	ethSignedMessagePrefix = []byte("\x19Ethereum Signed Message:\n32")
)

// BidDomainSeparator binds bid signatures to one chain and this module so a
// signature can never be replayed across deployments.
func BidDomainSeparator(chainID string) common.Hash {
	return crypto.Keccak256Hash(bidDomainPrefix, []byte(chainID), []byte(ModuleName))
}

func encodeBidWord(v uint64) []byte {
	word := make([]byte, 32)
	copy(word[24:], sdk.Uint64ToBigEndian(v))
	return word
}

// Digest returns the domain-separated structured hash of the bid payload. The
// signature field is not part of the digest.
func (b Bid) Digest(chainID string) common.Hash {
	shares := make([]byte, 32)
	if !b.RedemptionShares.IsNil() && b.RedemptionShares.IsPositive() {
		b.RedemptionShares.BigInt().FillBytes(shares)
	}

	return crypto.Keccak256Hash(
		BidDomainSeparator(chainID).Bytes(),
		bidTypeHash.Bytes(),
		encodeBidWord(b.AuctionId),
		encodeBidWord(b.RedemptionId),
		shares,
		encodeBidWord(uint64(b.BasisPoint)),
		encodeBidWord(b.Nonce),
		encodeBidWord(uint64(b.Timestamp)),
	)
}

// SigningHash returns the EIP-191 personal-sign hash of the bid digest, the
// exact message controllers sign off-chain.
func (b Bid) SigningHash(chainID string) common.Hash {
	digest := b.Digest(chainID)
	return crypto.Keccak256Hash(ethSignedMessagePrefix, digest.Bytes())
}

// Sign populates the bid's signature using the controller's secp256k1 key.
func (b *Bid) Sign(chainID string, priv *ecdsa.PrivateKey) error {
	hash := b.SigningHash(chainID)

	sig, err := crypto.Sign(hash.Bytes(), priv)
	if err != nil {
		return errors.Wrap(ErrInvalidSignature, err.Error())
	}

	b.Signature = sig
	return nil
}

// VerifySignature recovers the signer from the bid signature and checks it
// against the controller's 20-byte account address.
func (b Bid) VerifySignature(chainID string, controller sdk.AccAddress) error {
	if len(b.Signature) != BidSignatureLength {
		return errors.Wrapf(ErrInvalidSignature, "expected %d byte signature, got %d", BidSignatureLength, len(b.Signature))
	}

	if len(controller.Bytes()) != common.AddressLength {
		return errors.Wrapf(ErrInvalidSignature, "controller %s is not a %d byte account", controller.String(), common.AddressLength)
	}

	sig := make([]byte, BidSignatureLength)
	copy(sig, b.Signature)

	// accept both 0/1 and 27/28 recovery identifiers
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	hash := b.SigningHash(chainID)

	pubKey, err := crypto.SigToPub(hash.Bytes(), sig)
	if err != nil {
		return errors.Wrap(ErrInvalidSignature, err.Error())
	}

	signer := crypto.PubkeyToAddress(*pubKey)
	if signer != common.BytesToAddress(controller.Bytes()) {
		return errors.Wrapf(ErrInvalidSignature, "recovered signer %s is not redemption controller %s", signer.Hex(), controller.String())
	}

	return nil
}

// Validate performs stateless bid validation.
func (b Bid) Validate() error {
	if b.RedemptionId == NullRedemptionID {
		return errors.Wrap(ErrInvalidAmount, "bid redemption id cannot be zero")
	}

	if b.RedemptionShares.IsNil() || !b.RedemptionShares.IsPositive() {
		return errors.Wrap(ErrInvalidAmount, "bid redemption shares must be positive")
	}

	if b.BasisPoint == 0 || b.BasisPoint > MaxBasisPoints {
		return errors.Wrapf(ErrInvalidAmount, "bid basis point must be in (0, %d], got %d", MaxBasisPoints, b.BasisPoint)
	}

	if _, err := sdk.AccAddressFromBech32(b.Controller); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "bid controller: %s", err.Error())
	}

	return nil
}
