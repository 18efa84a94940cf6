package txs

import (
	"github.com/ledgerkit/txcodec/pkg/txerr"
	"github.com/ledgerkit/txcodec/pkg/wire"
)

func readTag(b []byte, offset int) (uint32, int, error) {
	return wire.ReadUint32(b, offset)
}

// Each registry maps a closed set of type ids to a decode function for
// that category (spec.md §4.5, §9's "SelectXClass" factory, reimagined as
// a tagged-variant lookup table instead of class dispatch).

type outputDecoder func(b []byte, offset int) (Output, int, error)
type inputDecoder func(b []byte, offset int) (Input, int, error)
type operationDecoder func(b []byte, offset int) (Operation, int, error)

var outputRegistry = map[uint32]outputDecoder{
	OutputTypeSECP256K1Transfer: decodeSECP256K1TransferOutputTagged,
	OutputTypeNFTTransfer:       decodeNFTTransferOutputTagged,
}

var inputRegistry = map[uint32]inputDecoder{
	InputTypeSECP256K1Transfer: decodeSECP256K1TransferInputTagged,
}

var operationRegistry = map[uint32]operationDecoder{
	OperationTypeNFTTransfer: decodeNFTTransferOperationTagged,
}

// credentialRegistry only needs to know the type id is valid; every
// credential shares one payload shape (a signature count plus that many
// fixed-width signatures), decoded by DecodeCredential.
var credentialRegistry = map[uint32]bool{
	CredentialTypeSECP256K1: true,
	CredentialTypeNFT:       true,
}

// DecodeOutput reads a u32 type id then dispatches to that output kind's
// decoder.
func DecodeOutput(b []byte, offset int) (Output, int, error) {
	id, offset, err := readTag(b, offset)
	if err != nil {
		return nil, offset, err
	}
	dec, ok := outputRegistry[id]
	if !ok {
		return nil, offset, &txerr.UnknownTypeID{Domain: "output", ID: id}
	}
	return dec(b, offset)
}

// DecodeInput reads a u32 type id then dispatches to that input kind's
// decoder.
func DecodeInput(b []byte, offset int) (Input, int, error) {
	id, offset, err := readTag(b, offset)
	if err != nil {
		return nil, offset, err
	}
	dec, ok := inputRegistry[id]
	if !ok {
		return nil, offset, &txerr.UnknownTypeID{Domain: "input", ID: id}
	}
	return dec(b, offset)
}

// DecodeOperation reads a u32 type id then dispatches to that operation
// kind's decoder.
func DecodeOperation(b []byte, offset int) (Operation, int, error) {
	id, offset, err := readTag(b, offset)
	if err != nil {
		return nil, offset, err
	}
	dec, ok := operationRegistry[id]
	if !ok {
		return nil, offset, &txerr.UnknownTypeID{Domain: "operation", ID: id}
	}
	return dec(b, offset)
}

// DecodeCredentialTagged reads a u32 type id then decodes the credential
// payload that follows it.
func DecodeCredentialTagged(b []byte, offset int) (Credential, int, error) {
	id, offset, err := readTag(b, offset)
	if err != nil {
		return Credential{}, offset, err
	}
	if !credentialRegistry[id] {
		return Credential{}, offset, &txerr.UnknownTypeID{Domain: "credential", ID: id}
	}
	return DecodeCredential(id, b, offset)
}
